// SPDX-License-Identifier: MIT
// Package core_test verifies Node nesting discipline:
//   - at most one active child;
//   - no close with an open child;
//   - parent notified on child close;
//   - lifecycle events reach the configured logger.

package core_test

import (
	"bytes"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lvbib/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_RootDefaults(t *testing.T) {
	root := core.NewRoot()
	require.True(t, root.IsOpen())
	require.Nil(t, root.Parent())
	require.Nil(t, root.ActiveChild())
	assert.Equal(t, "root", root.Name())
	assert.Equal(t, "root", root.Path())
	assert.Equal(t, 0, root.Depth())
}

func TestNode_OpenChildTracksActiveChild(t *testing.T) {
	root := core.NewRoot(core.WithName("bib"))
	c, err := root.OpenChild(core.WithName("book"))
	require.NoError(t, err)

	require.Same(t, c, root.ActiveChild())
	require.Same(t, root, c.Parent())
	assert.Equal(t, "bib/book", c.Path())
	assert.Equal(t, 1, c.Depth())
}

func TestNode_SecondChildRejected(t *testing.T) {
	root := core.NewRoot()
	first, err := root.OpenChild()
	require.NoError(t, err)

	_, err = root.OpenChild()
	require.ErrorIs(t, err, core.ErrIllegalState)
	require.Contains(t, err.Error(), "already has an open child")

	// The rejected attempt left the first child in place.
	require.Same(t, first, root.ActiveChild())
}

func TestNode_CloseWithOpenChildRejected(t *testing.T) {
	root := core.NewRoot()
	c, err := root.OpenChild()
	require.NoError(t, err)

	err = root.Close()
	require.ErrorIs(t, err, core.ErrIllegalState)
	require.Contains(t, err.Error(), "cannot close node with an open child")
	require.True(t, root.IsOpen())

	require.NoError(t, c.Close())
	require.Nil(t, root.ActiveChild())
	require.NoError(t, root.Close())
	require.False(t, root.IsOpen())
}

func TestNode_ChildCloseReenablesParent(t *testing.T) {
	root := core.NewRoot()
	for i := 0; i < 3; i++ {
		c, err := root.OpenChild()
		require.NoError(t, err, "sibling %d", i)
		require.NoError(t, c.Close())
		require.False(t, c.IsOpen())
	}
	require.Nil(t, root.ActiveChild())
}

func TestNode_OpenChildOnClosedNode(t *testing.T) {
	root := core.NewRoot()
	require.NoError(t, root.Close())

	_, err := root.OpenChild()
	require.ErrorIs(t, err, core.ErrIllegalState)
	require.Contains(t, err.Error(), "node is not open")
}

func TestNode_CloseTwiceIsNoop(t *testing.T) {
	root := core.NewRoot()
	c, err := root.OpenChild()
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	// The second close must not disturb a newer sibling.
	c2, err := root.OpenChild()
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.Same(t, c2, root.ActiveChild())
}

func TestNode_DeepNesting(t *testing.T) {
	root := core.NewRoot()
	nodes := []*core.Node{root}
	for i := 0; i < 5; i++ {
		c, err := nodes[len(nodes)-1].OpenChild()
		require.NoError(t, err)
		nodes = append(nodes, c)
	}
	assert.Equal(t, 5, nodes[5].Depth())

	// Only innermost-first closing succeeds.
	for i := 0; i < 5; i++ {
		require.ErrorIs(t, nodes[i].Close(), core.ErrIllegalState)
	}
	for i := 5; i >= 0; i-- {
		require.NoError(t, nodes[i].Close())
	}
}

func TestNode_LifecycleLogging(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	root := core.NewRoot(core.WithName("bib"), core.WithLogger(l))
	c, err := root.OpenChild(core.WithName("book"))
	require.NoError(t, err)
	require.Same(t, l, c.Logger(), "children inherit the parent logger")
	require.NoError(t, c.Close())
	require.NoError(t, root.Close())

	out := buf.String()
	for _, ev := range []string{core.EventNodeOpen, core.EventChildOpen, core.EventChildClosed, core.EventNodeClose} {
		assert.Contains(t, out, ev)
	}
	assert.Contains(t, out, "path=bib/book")
}

func TestNode_OptionPanics(t *testing.T) {
	require.Panics(t, func() { core.WithName("") })
	require.Panics(t, func() { core.WithLogger(nil) })
}

// TestNode_ConcurrentOpenChild races many goroutines to open a child; exactly
// one must win while the winner stays open.
func TestNode_ConcurrentOpenChild(t *testing.T) {
	root := core.NewRoot()
	const n = 100
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := root.OpenChild(); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	require.EqualValues(t, 1, wins.Load())
	require.NotNil(t, root.ActiveChild())
}
