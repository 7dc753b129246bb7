// SPDX-License-Identifier: MIT
// Package: lvbib/builder
//
// config.go — internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//   • Defaults: name = kind name, logger = inherited (root: discard).

package builder

import "github.com/katalvlaran/lvbib/core"

// builderConfig aggregates all knobs of one builder instance.
type builderConfig struct {
	name   string       // node path segment
	logger core.SLogger // nil means "inherit from parent node"
}

// newBuilderConfig resolves opts over the kind-derived defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(kind *core.Kind, opts ...Option) builderConfig {
	cfg := builderConfig{name: kind.Name()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nodeOptions translates the resolved config into core node options.
func (c builderConfig) nodeOptions() []core.NodeOption {
	opts := []core.NodeOption{core.WithName(c.name)}
	if c.logger != nil {
		opts = append(opts, core.WithLogger(c.logger))
	}

	return opts
}
