// SPDX-License-Identifier: MIT
// Package: lvbib/builder
//
// options.go — functional options for record builders.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builder operations themselves never panic.
//   • A child builder inherits its parent's logger unless WithLogger is given.

package builder

import "github.com/katalvlaran/lvbib/core"

// Option customizes a Builder before its node is opened.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithName overrides the node name shown in error paths and logs
// (defaults to the kind name). Panics on an empty name.
// Complexity: O(1) time, O(1) space.
func WithName(name string) Option {
	if name == "" {
		// Fail fast: option constructors validate and panic.
		panic("builder: WithName(\"\")")
	}
	return func(c *builderConfig) {
		// Forwarded to core.WithName when the node is opened.
		c.name = name
	}
}

// WithLogger sets the lifecycle logger for this builder and the children it
// opens. Panics on nil; use core.DiscardLogger() to silence explicitly.
// Complexity: O(1) time, O(1) space.
func WithLogger(l core.SLogger) Option {
	if l == nil {
		// Fail fast; a nil logger would only fail later, at the first event.
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		// Forwarded to core.WithLogger; children inherit it through the node.
		c.logger = l
	}
}
