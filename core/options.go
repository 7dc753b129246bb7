// SPDX-License-Identifier: MIT
// Package: lvbib/core
//
// options.go — functional options for Node construction.
//
// Contract:
//   • Options are functional (type NodeOption func(*nodeConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     node operations themselves never panic.
//   • Children inherit the logger of their parent unless overridden.

package core

// NodeOption customizes a Node before it is opened.
// Complexity: applying N options costs O(N) time, O(1) space.
type NodeOption func(*nodeConfig)

// nodeConfig is resolved once per node and then read-only.
type nodeConfig struct {
	name   string  // path segment used in diagnostics
	logger SLogger // lifecycle event sink
}

const (
	defaultRootName  = "root"
	defaultChildName = "child"
)

// newNodeConfig applies opts over the given defaults; last option wins.
func newNodeConfig(name string, logger SLogger, opts ...NodeOption) nodeConfig {
	cfg := nodeConfig{name: name, logger: logger}
	for _, opt := range opts {
		opt(&cfg) // later options override earlier ones
	}
	if cfg.logger == nil {
		// Roots without WithLogger stay silent.
		cfg.logger = DiscardLogger()
	}

	return cfg
}

// WithName sets the path segment used for this node in diagnostics.
// Panics on an empty name.
// Complexity: O(1) time, O(1) space.
func WithName(name string) NodeOption {
	if name == "" {
		// Fail fast: an empty segment would produce paths like "bib//date".
		panic("core: WithName(\"\")")
	}
	return func(c *nodeConfig) {
		// Segment only; the full path is derived from the parent.
		c.name = name
	}
}

// WithLogger routes lifecycle events of this node (and, by inheritance, its
// descendants) to l. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithLogger(l SLogger) NodeOption {
	if l == nil {
		// Fail fast; silence explicitly with DiscardLogger().
		panic("core: WithLogger(nil)")
	}
	return func(c *nodeConfig) {
		// Replaces the inherited logger for this node and its subtree.
		c.logger = l
	}
}
