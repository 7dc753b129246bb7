// SPDX-License-Identifier: MIT
// Package: lvbib/builder
//
// api.go — public entry points: Builder[R], New (root) and Open (child).
//
// Design contract (strict):
//   • A Builder[R] is a core.Node plus a core.State plus the injected
//     Factory[R] that turns accumulated fields into an immutable R.
//   • Open is the only way to create a child; it locks the parent builder
//     and opens a child node under it.
//   • Lock order: child builder → parent builder → child node → parent node.
//     No path acquires them in the opposite direction.
//   • Safety: never panic at runtime; return wrapped core sentinels.
//
// AI-Hints:
//   • writeBack usually calls a setter of the parent's concrete builder, so
//     the parent's own argument checks apply to the child's result too.

package builder

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvbib/core"
)

// Factory builds the immutable record from the fields accumulated by a
// concrete builder. It runs exactly once per successful Finalize, under
// the builder's lock, after the required flags were verified.
type Factory[R any] func() (R, error)

// Builder is the generic record builder: a hierarchical node that produces
// one immutable R on Finalize.
//
// Concrete builders embed or wrap a *Builder[R], keep their field storage
// next to it, and mutate that storage only inside Set callbacks so that the
// builder's lock guards it.
type Builder[R any] struct {
	mu sync.Mutex

	node      *core.Node
	state     core.State
	build     Factory[R]
	writeBack func(R) error // nil for roots
	result    R
}

// Parent is implemented by every *Builder[R]. It lets a builder of one
// record type host a child builder of another (see Open).
type Parent interface {
	hostNode() *core.Node
	hostLock() *sync.Mutex
	hostCompiledLocked() bool
}

var _ Parent = (*Builder[struct{}])(nil)

// New creates a root builder for kind. build is invoked by Finalize.
//
// Panics on a nil kind or nil build (programmer errors at wiring time).
// Complexity: O(len(opts)).
func New[R any](kind *core.Kind, build Factory[R], opts ...Option) *Builder[R] {
	if kind == nil || build == nil {
		panic("builder: New with nil kind or factory")
	}
	cfg := newBuilderConfig(kind, opts...)

	return &Builder[R]{
		node:  core.NewRoot(cfg.nodeOptions()...),
		state: core.NewState(kind),
		build: build,
	}
}

// Open creates a child builder under parent. This is the sub-builder
// accessor behind methods such as BookBuilder.DateBuilder.
//
// writeBack receives the child's result during the child's Finalize, before
// the parent is notified that the child closed. It is expected to store the
// value into the parent's fields through the parent's Set, which also sets
// the parent's flag bit. A writeBack error aborts the child's Finalize and
// leaves both builders unchanged.
//
// Errors:
//   - core.ErrInvalidArgument on nil parent, kind or build.
//   - core.ErrIllegalState if the parent is finalized, closed, or already
//     has an open child.
//
// Complexity: O(len(opts)).
func Open[C any](parent Parent, kind *core.Kind, build Factory[C], writeBack func(C) error, opts ...Option) (*Builder[C], error) {
	if parent == nil || kind == nil || build == nil {
		return nil, fmt.Errorf("Open: nil parent, kind or factory: %w", core.ErrInvalidArgument)
	}

	mu := parent.hostLock()
	mu.Lock()
	defer mu.Unlock()

	pn := parent.hostNode()
	if parent.hostCompiledLocked() {
		return nil, builderErrorf("Open", pn.Path(), "parent already finalized: %w", core.ErrIllegalState)
	}

	cfg := newBuilderConfig(kind, opts...)
	n, err := pn.OpenChild(cfg.nodeOptions()...)
	if err != nil {
		return nil, fmt.Errorf("Open(%s): %w", kind.Name(), err)
	}

	return &Builder[C]{
		node:      n,
		state:     core.NewState(kind),
		build:     build,
		writeBack: writeBack,
	}, nil
}

func (b *Builder[R]) hostNode() *core.Node    { return b.node }
func (b *Builder[R]) hostLock() *sync.Mutex   { return &b.mu }
func (b *Builder[R]) hostCompiledLocked() bool { return b.state.Compiled() }

// Node returns the underlying hierarchical node.
func (b *Builder[R]) Node() *core.Node { return b.node }

// Kind returns the record kind this builder validates against.
func (b *Builder[R]) Kind() *core.Kind { return b.state.Kind() }

// Path returns the node path, e.g. "bibliography/book/date".
func (b *Builder[R]) Path() string { return b.node.Path() }
