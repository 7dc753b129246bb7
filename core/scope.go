// SPDX-License-Identifier: MIT
// Package: lvbib/core
//
// scope.go — the primitive open/close lifecycle unit.
//
// Policy:
//   • A Scope opens at most once and closes at most once.
//   • Close never fails and never panics; repeated calls are no-ops.
//   • A closed Scope never reopens.

package core

import (
	"fmt"
	"sync"
)

// scopeState is the lifecycle tag of a Scope.
type scopeState uint8

const (
	scopeNew scopeState = iota // zero value: never opened
	scopeOpen
	scopeClosed
)

// String returns the state name used in error messages.
func (s scopeState) String() string {
	switch s {
	case scopeOpen:
		return "open"
	case scopeClosed:
		return "closed"
	default:
		return "new"
	}
}

// Scope is an object with an explicit open/close lifecycle.
//
// The zero value is a Scope that has not been opened yet. Open moves it to
// the open state; Close moves it to the closed state for good.
// All methods are safe for concurrent use.
type Scope struct {
	mu    sync.Mutex
	state scopeState
}

// NewScope returns a Scope that is already open.
// Complexity: O(1).
func NewScope() *Scope {
	return &Scope{state: scopeOpen}
}

// Open transitions the Scope to the open state.
// Returns ErrIllegalState if the Scope is already open or was closed before.
// Complexity: O(1).
func (s *Scope) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != scopeNew {
		return fmt.Errorf("Scope.Open: scope is %s: %w", s.state, ErrIllegalState)
	}
	s.state = scopeOpen

	return nil
}

// Close transitions the Scope to the closed state. It is safe to call any
// number of times and from any state; it never fails.
// Complexity: O(1).
func (s *Scope) Close() {
	s.mu.Lock()
	s.state = scopeClosed
	s.mu.Unlock()
}

// IsOpen reports whether the Scope is currently open.
func (s *Scope) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == scopeOpen
}

// IsClosed reports whether Close has been called.
func (s *Scope) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == scopeClosed
}
