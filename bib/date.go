// SPDX-License-Identifier: MIT
// Package: lvbib/bib
//
// date.go — Date record and its builder.
//
// Contract:
//   • YEAR is required; MONTH and DAY are optional.
//   • A day needs a month, and must exist in that month of that year;
//     both are checked by the factory at Finalize (ErrConstructFailed).
//   • Date is a comparable value type; the zero Date means "no date".

package bib

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvbib/builder"
	"github.com/katalvlaran/lvbib/core"
)

// Date field flags.
const (
	DateYear core.Mask = 1 << iota
	DateMonth
	DateDay
)

var dateKind = core.NewKind("date", DateYear, "year", "month", "day")

const (
	minYear = 1
	maxYear = 9999
)

// Date is a possibly partial calendar date: year, year-month, or
// year-month-day. Month and Day are 0 when unspecified.
type Date struct {
	year, month, day int
}

// NewDate builds a Date directly. month and day may be 0 (unspecified);
// a non-zero day requires a non-zero month.
// Returns core.ErrInvalidArgument on out-of-range or non-existent dates.
func NewDate(year, month, day int) (Date, error) {
	const method = "NewDate"
	if err := requireRange(method, "year", year, minYear, maxYear); err != nil {
		return Date{}, err
	}
	if err := requireRange(method, "month", month, 0, 12); err != nil {
		return Date{}, err
	}
	if day != 0 {
		if month == 0 {
			return Date{}, invalidArgf(method, "day %d given without a month", day)
		}
		if err := requireRange(method, "day", day, 1, daysIn(year, month)); err != nil {
			return Date{}, err
		}
	}

	return Date{year: year, month: month, day: day}, nil
}

// daysIn returns the number of days of month in year.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month (1..12), or 0 if unspecified.
func (d Date) Month() int { return d.month }

// Day returns the day of month, or 0 if unspecified.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// String renders "2006", "2006-01" or "2006-01-02".
func (d Date) String() string {
	switch {
	case d.IsZero():
		return ""
	case d.month == 0:
		return fmt.Sprintf("%04d", d.year)
	case d.day == 0:
		return fmt.Sprintf("%04d-%02d", d.year, d.month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
	}
}

// DateBuilder accumulates the parts of a Date.
type DateBuilder struct {
	b *builder.Builder[Date]

	year, month, day int
}

// NewDateBuilder returns a root DateBuilder.
func NewDateBuilder(opts ...builder.Option) *DateBuilder {
	d, _ := newDateBuilder(nil, nil, opts...)
	return d
}

// newDateBuilder creates a root builder when parent is nil, otherwise a
// child of parent whose result is delivered to writeBack.
func newDateBuilder(parent builder.Parent, writeBack func(Date) error, opts ...builder.Option) (*DateBuilder, error) {
	d := &DateBuilder{}
	if parent == nil {
		d.b = builder.New(dateKind, d.compile, opts...)
		return d, nil
	}
	b, err := builder.Open(parent, dateKind, d.compile, writeBack, opts...)
	if err != nil {
		return nil, err
	}
	d.b = b

	return d, nil
}

// compile is the Factory; it runs under the builder lock.
func (d *DateBuilder) compile() (Date, error) {
	return NewDate(d.year, d.month, d.day)
}

// Year sets the year (1..9999).
func (d *DateBuilder) Year(y int) error {
	return setValue(d.b, DateYear,
		func() (int, error) { return y, requireRange("DateBuilder.Year", "year", y, minYear, maxYear) },
		func(v int) { d.year = v })
}

// Month sets the month (1..12).
func (d *DateBuilder) Month(m int) error {
	return setValue(d.b, DateMonth,
		func() (int, error) { return m, requireRange("DateBuilder.Month", "month", m, 1, 12) },
		func(v int) { d.month = v })
}

// Day sets the day of month (1..31). Whether the day exists in the chosen
// month is checked at Finalize.
func (d *DateBuilder) Day(day int) error {
	return setValue(d.b, DateDay,
		func() (int, error) { return day, requireRange("DateBuilder.Day", "day", day, 1, 31) },
		func(v int) { d.day = v })
}

// Finalize builds the Date, hands it to the parent if any, and closes the
// builder.
func (d *DateBuilder) Finalize() (Date, error) { return d.b.Finalize() }

// Result returns the finalized Date.
func (d *DateBuilder) Result() (Date, error) { return d.b.Result() }

// Abandon closes the builder without producing a Date.
func (d *DateBuilder) Abandon() error { return d.b.Abandon() }

// Missing lists required fields not yet supplied.
func (d *DateBuilder) Missing() []string { return d.b.Missing() }

// Has reports whether every field in flags was supplied.
func (d *DateBuilder) Has(flags core.Mask) bool { return d.b.Has(flags) }

// Path returns the builder's node path.
func (d *DateBuilder) Path() string { return d.b.Path() }
