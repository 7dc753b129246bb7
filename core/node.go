// SPDX-License-Identifier: MIT
// Package: lvbib/core
//
// node.go — Node: a Scope with a parent back-reference and at most one
// active child.
//
// Invariants:
//   • child is non-nil only while that child is open.
//   • A node cannot close while child is non-nil.
//   • A child is only created under an open parent with no active child.
//
// Concurrency:
//   • One mutex per node. When two nodes are locked, the child is locked
//     first and the parent second.
//
// AI-Hints:
//   • The parent link is weak: a Node never keeps its parent alive.
//   • Path() is the cheapest way to tell nodes apart in logs and errors.

package core

import (
	"fmt"
	"sync"
	"weak"
)

// Node is a hierarchical lifecycle unit. Nodes form a tree whose edges are
// parent→activeChild; siblings never overlap in time.
//
// The parent reference is non-owning: a child never keeps its parent alive
// and never resurrects it. The parent owns its active child until the child
// closes.
type Node struct {
	mu    sync.Mutex
	scope Scope

	parent weak.Pointer[Node] // zero for roots
	child  *Node              // active child, nil when none

	name   string
	path   string
	depth  int
	logger SLogger
}

// NewRoot creates an open Node without a parent.
// Complexity: O(len(opts)).
func NewRoot(opts ...NodeOption) *Node {
	cfg := newNodeConfig(defaultRootName, nil, opts...)
	n := &Node{
		name:   cfg.name,
		path:   cfg.name,
		logger: cfg.logger,
	}
	n.scope.state = scopeOpen
	n.logger.Debug(EventNodeOpen, "path", n.path)

	return n
}

// OpenChild creates an open child of n and records it as n's active child.
//
// Errors:
//   - ErrIllegalState if n is not open ("node is not open").
//   - ErrIllegalState if n already has an open child.
//
// Complexity: O(len(opts)).
func (n *Node) OpenChild(opts ...NodeOption) (*Node, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// 1. Only an open node may host a child.
	if !n.scope.IsOpen() {
		return nil, fmt.Errorf("Node.OpenChild(%s): node is not open: %w", n.path, ErrIllegalState)
	}
	// 2. Strict nesting: one open child at a time.
	if n.child != nil {
		return nil, fmt.Errorf("Node.OpenChild(%s): node already has an open child %q: %w",
			n.path, n.child.name, ErrIllegalState)
	}

	// 3. Build the child; it inherits n's logger unless overridden.
	cfg := newNodeConfig(defaultChildName, n.logger, opts...)
	c := &Node{
		parent: weak.Make(n),
		name:   cfg.name,
		path:   n.path + "/" + cfg.name,
		depth:  n.depth + 1,
		logger: cfg.logger,
	}
	c.scope.state = scopeOpen // born open; no separate Open call
	n.child = c
	n.logger.Debug(EventChildOpen, "path", c.path, "depth", c.depth)

	return c, nil
}

// Close closes n. If n has a reachable parent, the parent is notified so it
// may open another child or close itself. Closing a closed node is a no-op.
//
// Errors:
//   - ErrIllegalState if n still has an open child.
//
// Complexity: O(1).
func (n *Node) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.scope.IsClosed() {
		return nil // Scope semantics: closing twice is a no-op
	}
	if n.child != nil {
		return fmt.Errorf("Node.Close(%s): cannot close node with an open child %q: %w",
			n.path, n.child.name, ErrIllegalState)
	}

	// Commit the close under the parent's lock so the parent never sees a
	// closed active child.
	if p := n.parent.Value(); p != nil {
		if err := p.notifyChildClosed(n, n.scope.Close); err != nil {
			return err
		}
	} else {
		n.scope.Close()
	}
	n.logger.Debug(EventNodeClose, "path", n.path)

	return nil
}

// notifyChildClosed clears child as n's active child. commit runs under n's
// lock right before the pointer is cleared, so no observer ever sees an
// active child that is already closed.
func (n *Node) notifyChildClosed(child *Node, commit func()) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.child != child {
		return fmt.Errorf("Node.notifyChildClosed(%s): %q is not the active child: %w",
			n.path, child.name, ErrIllegalState)
	}
	commit()
	n.child = nil
	n.logger.Debug(EventChildClosed, "path", child.path)

	return nil
}

// Parent returns the parent node, or nil for roots and for parents that are
// no longer referenced anywhere.
func (n *Node) Parent() *Node {
	return n.parent.Value()
}

// ActiveChild returns the currently open child, or nil.
func (n *Node) ActiveChild() *Node {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.child
}

// IsOpen reports whether n is open.
func (n *Node) IsOpen() bool { return n.scope.IsOpen() }

// Name returns the node's own path segment.
func (n *Node) Name() string { return n.name }

// Path returns the slash-joined names from the root down to n.
func (n *Node) Path() string { return n.path }

// Depth returns 0 for roots and parent depth + 1 otherwise.
func (n *Node) Depth() int { return n.depth }

// Logger returns the lifecycle logger resolved for n.
func (n *Node) Logger() SLogger { return n.logger }
