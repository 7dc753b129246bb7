// SPDX-License-Identifier: MIT
// Package: lvbib/core
//
// types.go — flag masks and record-kind descriptors.
//
// Policy:
//   • Every builder kind declares its own closed set of named bits
//     (1 << iota); there is no global flag namespace.
//   • A Kind is immutable after NewKind and safe to share.
//
// AI-Hints:
//   • Declare flags in the same order as the field names given to NewKind;
//     bit i is named fields[i].

package core

import (
	"fmt"
	"math/bits"
)

// Mask is a set of field flags. Bit i stands for field i of a Kind.
type Mask uint64

// maxFields is the number of distinct bits a Mask can hold.
const maxFields = 64

// Has reports whether every bit of m is present in s.
func (s Mask) Has(m Mask) bool { return s&m == m }

// Count returns the number of set bits.
func (s Mask) Count() int { return bits.OnesCount64(uint64(s)) }

// Kind describes one record kind: its name, the symbolic names of its
// field bits, and the subset of bits that must be supplied before finalize.
type Kind struct {
	name     string
	required Mask
	all      Mask
	fields   []string // fields[i] names bit 1<<i
}

// NewKind declares a record kind. fields[i] is the symbolic name of bit i.
//
// Panics (programmer errors, caught at package init):
//   - empty kind name or empty field name;
//   - more than 64 fields;
//   - a required bit with no declared field.
//
// Complexity: O(len(fields)).
func NewKind(name string, required Mask, fields ...string) *Kind {
	if name == "" {
		panic("core: NewKind with empty name")
	}
	if len(fields) > maxFields {
		panic(fmt.Sprintf("core: NewKind(%s): %d fields exceed %d", name, len(fields), maxFields))
	}
	var all Mask
	for i, f := range fields {
		if f == "" {
			panic(fmt.Sprintf("core: NewKind(%s): field %d has empty name", name, i))
		}
		all |= 1 << uint(i)
	}
	if required&^all != 0 {
		panic(fmt.Sprintf("core: NewKind(%s): required mask %#x has undeclared bits", name, uint64(required)))
	}

	names := make([]string, len(fields))
	copy(names, fields)

	return &Kind{name: name, required: required, all: all, fields: names}
}

// Name returns the kind name, e.g. "book".
func (k *Kind) Name() string { return k.name }

// Required returns the mask of mandatory fields.
func (k *Kind) Required() Mask { return k.required }

// All returns the mask of every declared field.
func (k *Kind) All() Mask { return k.all }

// Declares reports whether every bit of m is a declared field of k.
func (k *Kind) Declares(m Mask) bool { return k.all.Has(m) }

// FieldName returns the symbolic name of the lowest bit set in m, or ""
// when m is empty or names no declared field.
func (k *Kind) FieldName(m Mask) string {
	if m == 0 {
		return ""
	}
	i := bits.TrailingZeros64(uint64(m))
	if i >= len(k.fields) {
		return ""
	}

	return k.fields[i]
}

// Names returns the symbolic names of the declared bits in m, in ascending
// bit order. Undeclared bits are ignored.
// Complexity: O(popcount(m)).
func (k *Kind) Names(m Mask) []string {
	m &= k.all
	out := make([]string, 0, m.Count())
	for m != 0 {
		i := bits.TrailingZeros64(uint64(m))
		out = append(out, k.fields[i])
		m &^= 1 << uint(i)
	}

	return out
}

// String returns the kind name.
func (k *Kind) String() string { return k.name }
