// SPDX-License-Identifier: MIT
// Package builder_test verifies the finalize protocol of Builder[R]:
// required flags, exactly-once finalize, nesting, write-back, abandon and
// per-instance locking.
package builder_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lvbib/builder"
	"github.com/katalvlaran/lvbib/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// note is a minimal record: required text, optional tags.
type note struct {
	Text string
	Tags []string
}

const (
	noteText core.Mask = 1 << iota
	noteTags
)

var noteKind = core.NewKind("note", noteText, "text", "tags")

const tagName core.Mask = 1

var tagKind = core.NewKind("tag", tagName, "name")

// noteBuilder is a hand-written concrete builder, shaped like the ones in
// package bib.
type noteBuilder struct {
	b    *builder.Builder[note]
	text string
	tags []string
}

func newNoteBuilder(opts ...builder.Option) *noteBuilder {
	nb := &noteBuilder{}
	nb.b = builder.New(noteKind, func() (note, error) {
		return note{Text: nb.text, Tags: append([]string(nil), nb.tags...)}, nil
	}, opts...)
	return nb
}

func (nb *noteBuilder) Text(s string) error {
	return nb.b.SetChecked(noteText,
		func() error {
			if s == "" {
				return fmt.Errorf("Text: %w", core.ErrInvalidArgument)
			}
			return nil
		},
		func() { nb.text = s })
}

func (nb *noteBuilder) AddTag(s string) error {
	return nb.b.Set(noteTags, func() { nb.tags = append(nb.tags, s) })
}

// openTag opens a child builder whose result is appended to the note tags.
func (nb *noteBuilder) openTag() (*builder.Builder[string], *string, error) {
	name := new(string)
	tb, err := builder.Open(nb.b, tagKind, func() (string, error) { return *name, nil }, nb.AddTag)
	return tb, name, err
}

func TestBuilder_MissingRequiredThenRetry(t *testing.T) {
	nb := newNoteBuilder()
	require.Equal(t, []string{"text"}, nb.b.Missing())

	_, err := nb.b.Finalize()
	require.ErrorIs(t, err, core.ErrValidation)
	ve, ok := core.AsValidation(err)
	require.True(t, ok)
	require.Equal(t, []string{"text"}, ve.Missing)
	require.False(t, nb.b.Compiled())
	require.True(t, nb.b.IsOpen())

	require.NoError(t, nb.Text("hello"))
	n, err := nb.b.Finalize()
	require.NoError(t, err)
	require.Equal(t, "hello", n.Text)
	require.True(t, nb.b.Compiled())
	require.False(t, nb.b.IsOpen())
}

func TestBuilder_ExactlyOnceFinalize(t *testing.T) {
	nb := newNoteBuilder()
	require.NoError(t, nb.Text("once"))
	require.NoError(t, nb.AddTag("a"))

	first, err := nb.b.Finalize()
	require.NoError(t, err)

	got, err := nb.b.Result()
	require.NoError(t, err)
	require.Equal(t, first, got)

	_, err = nb.b.Finalize()
	require.ErrorIs(t, err, core.ErrIllegalState)

	again, err := nb.b.Result()
	require.NoError(t, err)
	require.Equal(t, first, again)

	// Setters are inert after finalize.
	require.ErrorIs(t, nb.Text("twice"), core.ErrIllegalState)
	require.ErrorIs(t, nb.AddTag("b"), core.ErrIllegalState)
	require.ErrorIs(t, nb.b.Abandon(), core.ErrIllegalState)
}

func TestBuilder_ResultBeforeFinalize(t *testing.T) {
	nb := newNoteBuilder()
	_, err := nb.b.Result()
	require.ErrorIs(t, err, core.ErrIllegalState)
	require.Contains(t, err.Error(), "not finalized")
}

func TestBuilder_InvalidArgumentKeepsBitUnset(t *testing.T) {
	nb := newNoteBuilder()
	require.ErrorIs(t, nb.Text(""), core.ErrInvalidArgument)
	require.False(t, nb.b.Has(noteText))
	require.Zero(t, nb.b.Supplied())

	require.ErrorIs(t, nb.b.Set(1<<5, nil), core.ErrInvalidArgument)
	require.Zero(t, nb.b.Supplied())
}

// TestBuilder_SetCheckedLifecycleFirst: on a finalized builder the
// lifecycle error wins over any argument error and check never runs.
func TestBuilder_SetCheckedLifecycleFirst(t *testing.T) {
	nb := newNoteBuilder()
	require.NoError(t, nb.Text("done"))
	_, err := nb.b.Finalize()
	require.NoError(t, err)

	err = nb.Text("")
	require.ErrorIs(t, err, core.ErrIllegalState)
	require.NotErrorIs(t, err, core.ErrInvalidArgument)

	ran := false
	err = nb.b.SetChecked(noteTags, func() error { ran = true; return nil }, nil)
	require.ErrorIs(t, err, core.ErrIllegalState)
	require.False(t, ran)
}

func TestBuilder_SetCheckedRejects(t *testing.T) {
	nb := newNoteBuilder()
	boom := errors.New("boom")
	assigned := false
	err := nb.b.SetChecked(noteTags, func() error { return boom }, func() { assigned = true })
	require.ErrorIs(t, err, boom)
	require.False(t, assigned)
	require.False(t, nb.b.Has(noteTags))
	require.True(t, nb.b.IsOpen())
}

func TestBuilder_SetTwiceLastWriteWins(t *testing.T) {
	nb := newNoteBuilder()
	require.NoError(t, nb.Text("a"))
	require.NoError(t, nb.Text("b"))
	require.True(t, nb.b.Has(noteText))
	n, err := nb.b.Finalize()
	require.NoError(t, err)
	require.Equal(t, "b", n.Text)
}

func TestBuilder_FactoryErrorLeavesBuilderUsable(t *testing.T) {
	fail := true
	var text string
	b := builder.New(noteKind, func() (note, error) {
		if fail {
			return note{}, errors.New("not yet")
		}
		return note{Text: text}, nil
	})
	require.NoError(t, b.Set(noteText, func() { text = "x" }))

	_, err := b.Finalize()
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.False(t, b.Compiled())
	require.True(t, b.IsOpen())

	fail = false
	n, err := b.Finalize()
	require.NoError(t, err)
	require.Equal(t, "x", n.Text)
}

func TestBuilder_ChildWritesBackAndReenablesParent(t *testing.T) {
	nb := newNoteBuilder(builder.WithName("n"))
	require.NoError(t, nb.Text("parent"))

	tb, name, err := nb.openTag()
	require.NoError(t, err)
	require.Equal(t, "n/tag", tb.Path())

	// Parent cannot finalize with an open child.
	_, err = nb.b.Finalize()
	require.ErrorIs(t, err, core.ErrIllegalState)
	require.Contains(t, err.Error(), "an inner builder is still open")

	// Nor open a second child.
	_, _, err = nb.openTag()
	require.ErrorIs(t, err, core.ErrIllegalState)

	require.NoError(t, tb.Set(tagName, func() { *name = "go" }))
	v, err := tb.Finalize()
	require.NoError(t, err)
	require.Equal(t, "go", v)
	require.True(t, nb.b.Has(noteTags))
	require.Nil(t, nb.b.Node().ActiveChild())

	// A new child may open now.
	tb2, name2, err := nb.openTag()
	require.NoError(t, err)
	require.NoError(t, tb2.Set(tagName, func() { *name2 = "fmt" }))
	_, err = tb2.Finalize()
	require.NoError(t, err)

	n, err := nb.b.Finalize()
	require.NoError(t, err)
	require.Equal(t, note{Text: "parent", Tags: []string{"go", "fmt"}}, n)
}

func TestBuilder_WriteBackErrorAbortsChildFinalize(t *testing.T) {
	nb := newNoteBuilder()
	calls := 0
	tb, err := builder.Open(nb.b, tagKind, func() (string, error) { return "t", nil }, func(string) error {
		calls++
		if calls == 1 {
			return core.ErrInvalidArgument
		}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, tb.Set(tagName, nil))

	_, err = tb.Finalize()
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	require.False(t, tb.Compiled())
	require.True(t, tb.IsOpen())
	require.NotNil(t, nb.b.Node().ActiveChild())

	_, err = tb.Finalize()
	require.NoError(t, err)
	require.Nil(t, nb.b.Node().ActiveChild())
}

func TestBuilder_AbandonChild(t *testing.T) {
	nb := newNoteBuilder()
	tb, _, err := nb.openTag()
	require.NoError(t, err)

	require.NoError(t, tb.Abandon())
	require.False(t, tb.IsOpen())
	require.False(t, nb.b.Has(noteTags), "abandon writes nothing back")
	require.ErrorIs(t, tb.Set(tagName, nil), core.ErrIllegalState)
	_, err = tb.Finalize()
	require.ErrorIs(t, err, core.ErrIllegalState)
	require.ErrorIs(t, tb.Abandon(), core.ErrIllegalState)

	_, _, err = nb.openTag()
	require.NoError(t, err)
}

func TestBuilder_AbandonWithOpenChildFails(t *testing.T) {
	nb := newNoteBuilder()
	_, _, err := nb.openTag()
	require.NoError(t, err)
	require.ErrorIs(t, nb.b.Abandon(), core.ErrIllegalState)
	require.True(t, nb.b.IsOpen())
}

func TestBuilder_OpenArguments(t *testing.T) {
	nb := newNoteBuilder()
	_, err := builder.Open[string](nil, tagKind, func() (string, error) { return "", nil }, nil)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = builder.Open[string](nb.b, nil, func() (string, error) { return "", nil }, nil)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = builder.Open[string](nb.b, tagKind, nil, nil)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	require.Panics(t, func() { builder.New[note](nil, func() (note, error) { return note{}, nil }) })
	require.Panics(t, func() { builder.New[note](noteKind, nil) })
}

func TestBuilder_OpenUnderFinalizedParent(t *testing.T) {
	nb := newNoteBuilder()
	require.NoError(t, nb.Text("x"))
	_, err := nb.b.Finalize()
	require.NoError(t, err)

	_, _, err = nb.openTag()
	require.ErrorIs(t, err, core.ErrIllegalState)
}

func TestBuilder_LogsFinalizeEvents(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	nb := newNoteBuilder(builder.WithLogger(l))

	_, err := nb.b.Finalize()
	require.Error(t, err)
	require.NoError(t, nb.Text("x"))
	_, err = nb.b.Finalize()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, core.EventFinalizeRejected)
	assert.Contains(t, out, "missing=[text]")
	assert.Contains(t, out, "msg="+core.EventFinalize+" ")
}

// TestBuilder_ConcurrentSetters appends from many goroutines; the lock must
// serialize them so no tag is lost.
func TestBuilder_ConcurrentSetters(t *testing.T) {
	nb := newNoteBuilder()
	require.NoError(t, nb.Text("x"))

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			require.NoError(t, nb.AddTag(fmt.Sprint(i)))
		}(i)
	}
	wg.Wait()

	got, err := nb.b.Finalize()
	require.NoError(t, err)
	require.Len(t, got.Tags, n)
}

// TestBuilder_ConcurrentFinalize races Finalize; exactly one call wins and
// every caller then observes the same Result.
func TestBuilder_ConcurrentFinalize(t *testing.T) {
	nb := newNoteBuilder()
	require.NoError(t, nb.Text("race"))

	const n = 50
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := nb.b.Finalize()
			if err == nil {
				wins.Add(1)
				return
			}
			assert.ErrorIs(t, err, core.ErrIllegalState)
		}()
	}
	wg.Wait()
	require.EqualValues(t, 1, wins.Load())

	r, err := nb.b.Result()
	require.NoError(t, err)
	require.Equal(t, "race", r.Text)
}
