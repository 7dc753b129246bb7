// SPDX-License-Identifier: MIT
// Package: lvbib/core
//
// state.go — supplied flags plus the compiled tag of one builder.
//
// Invariants:
//   • Supplied bits only accumulate.
//   • compiled flips false → true once, and only while every required
//     bit is supplied.
//
// Concurrency:
//   • State has no lock of its own; the owning builder guards it.

package core

import "fmt"

// State tracks which fields of a Kind have been supplied and whether the
// owning builder has been compiled.
//
// Supplied bits only accumulate: supplying a field twice keeps its bit set.
// compiled goes from false to true exactly once, and only after
// AssertSatisfied succeeded.
type State struct {
	kind     *Kind
	supplied Mask
	compiled bool
}

// NewState returns an empty State for kind. Panics on a nil kind.
func NewState(kind *Kind) State {
	if kind == nil {
		panic("core: NewState(nil)")
	}

	return State{kind: kind}
}

// Kind returns the kind this State validates against.
func (s *State) Kind() *Kind { return s.kind }

// Supply marks the bits of m as supplied. Bits outside the kind's declared
// fields are rejected with ErrInvalidArgument and nothing is recorded.
func (s *State) Supply(m Mask) error {
	if !s.kind.Declares(m) {
		return fmt.Errorf("State.Supply(%s): mask %#x has undeclared bits: %w",
			s.kind.name, uint64(m), ErrInvalidArgument)
	}
	s.supplied |= m

	return nil
}

// Supplied returns the accumulated mask.
func (s *State) Supplied() Mask { return s.supplied }

// Has reports whether every bit of m has been supplied.
func (s *State) Has(m Mask) bool { return s.supplied.Has(m) }

// Missing returns the required bits not yet supplied.
func (s *State) Missing() Mask { return s.kind.required &^ s.supplied }

// AssertSatisfied returns a *ValidationError naming every required field
// that has not been supplied, or nil when all are present.
func (s *State) AssertSatisfied() error {
	missing := s.Missing()
	if missing == 0 {
		return nil
	}

	return &ValidationError{Kind: s.kind.name, Missing: s.kind.Names(missing)}
}

// MarkCompiled sets the compiled tag. The tag only ever flips once, and
// only when every required field has been supplied.
//
// Errors:
//   - ErrIllegalState if the tag is already set.
//   - *ValidationError (errors.Is ErrValidation) if required fields are
//     missing; the tag stays unset.
func (s *State) MarkCompiled() error {
	if s.compiled {
		return fmt.Errorf("State.MarkCompiled(%s): already compiled: %w", s.kind.name, ErrIllegalState)
	}
	if err := s.AssertSatisfied(); err != nil {
		return err
	}
	s.compiled = true // terminal

	return nil
}

// Compiled reports whether MarkCompiled succeeded.
func (s *State) Compiled() bool { return s.compiled }
