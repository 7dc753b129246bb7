// SPDX-License-Identifier: MIT
// Package: lvbib/core
//
// errors.go — sentinel errors and the structured ValidationError.
//
// Error policy:
//   • Lifecycle misuse (closed node, second child, double finalize, early read)
//     is ErrIllegalState. It is a programmer error and is never retried.
//   • Missing required fields surface as *ValidationError, which matches
//     ErrValidation under errors.Is and carries the symbolic field names.
//   • Setters reject structurally invalid values with ErrInvalidArgument.
//   • Context is attached with fmt.Errorf("Op: ...: %w", ErrX); callers branch
//     with errors.Is and never compare strings.

package core

import (
	"errors"
	"strings"
)

var (
	// ErrIllegalState indicates an operation was attempted in a lifecycle
	// state that does not permit it.
	ErrIllegalState = errors.New("core: illegal state")

	// ErrValidation indicates a finalize attempt with required fields unset.
	// The concrete error is always a *ValidationError.
	ErrValidation = errors.New("core: required fields missing")

	// ErrInvalidArgument indicates a setter rejected a structurally invalid
	// value. The flag bit of the field is left untouched.
	ErrInvalidArgument = errors.New("core: invalid argument")
)

// ValidationError lists the required fields of a record kind that were not
// supplied when finalize was attempted.
type ValidationError struct {
	// Kind is the record kind name, e.g. "book".
	Kind string

	// Missing holds the symbolic field names in ascending bit order.
	Missing []string
}

// Error renders "core: book: required fields missing: publisher, title".
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("core: ")
	if e.Kind != "" {
		b.WriteString(e.Kind)
		b.WriteString(": ")
	}
	b.WriteString("required fields missing: ")
	b.WriteString(strings.Join(e.Missing, ", "))

	return b.String()
}

// Is makes errors.Is(err, ErrValidation) hold for every *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AsValidation extracts a *ValidationError from err using errors.As.
func AsValidation(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}

	return nil, false
}
