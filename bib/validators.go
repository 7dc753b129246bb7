// SPDX-License-Identifier: MIT
// Package: lvbib/bib
//
// validators.go — argument checks shared by the concrete setters.
//
// Every helper returns an error wrapping core.ErrInvalidArgument with
// "<Method>: <reason>" context, or nil. Setters run them through setValue,
// after the lifecycle check and before any state is touched, so a rejected
// value never sets a flag bit.

package bib

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvbib/builder"
	"github.com/katalvlaran/lvbib/core"
)

// setValue validates and stores one field through b.SetChecked, so the
// lifecycle check always comes first and validate only runs on a mutable
// builder.
func setValue[R, V any](b *builder.Builder[R], flag core.Mask, validate func() (V, error), store func(V)) error {
	var v V
	return b.SetChecked(flag,
		func() (err error) {
			v, err = validate()
			return err
		},
		func() { store(v) })
}

// invalidArgf returns "<method>: <message>: core: invalid argument".
func invalidArgf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), core.ErrInvalidArgument)
}

// requireText rejects empty or whitespace-only strings and returns the
// trimmed value.
func requireText(method, field, s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", invalidArgf(method, "%s must not be empty", field)
	}

	return t, nil
}

// requireRange enforces lo ≤ v ≤ hi.
func requireRange(method, field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return invalidArgf(method, "%s must be in [%d,%d], got %d", field, lo, hi, v)
	}

	return nil
}

// checkDate rejects the zero Date.
func checkDate(method string, d Date) (Date, error) {
	if d.IsZero() {
		return Date{}, invalidArgf(method, "zero date")
	}

	return d, nil
}

// checkPerson rejects a Person without a family name.
func checkPerson(method string, p Person) (Person, error) {
	if p.family == "" {
		return Person{}, invalidArgf(method, "person without family name")
	}

	return p, nil
}

// normalizeISBN strips hyphens and spaces and checks the ISBN-10 / ISBN-13
// check digit. ISBN-10 may end in 'X'.
func normalizeISBN(method, raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r == '-' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	s := strings.ToUpper(b.String())

	switch len(s) {
	case 10:
		sum := 0
		for i := 0; i < 10; i++ {
			var d int
			switch {
			case s[i] >= '0' && s[i] <= '9':
				d = int(s[i] - '0')
			case s[i] == 'X' && i == 9:
				d = 10
			default:
				return "", invalidArgf(method, "isbn %q has a non-digit at %d", raw, i)
			}
			sum += (10 - i) * d
		}
		if sum%11 != 0 {
			return "", invalidArgf(method, "isbn %q fails the ISBN-10 checksum", raw)
		}
	case 13:
		sum := 0
		for i := 0; i < 13; i++ {
			if s[i] < '0' || s[i] > '9' {
				return "", invalidArgf(method, "isbn %q has a non-digit at %d", raw, i)
			}
			w := 1
			if i%2 == 1 {
				w = 3
			}
			sum += w * int(s[i]-'0')
		}
		if sum%10 != 0 {
			return "", invalidArgf(method, "isbn %q fails the ISBN-13 checksum", raw)
		}
	default:
		return "", invalidArgf(method, "isbn %q must have 10 or 13 digits", raw)
	}

	return s, nil
}
