// SPDX-License-Identifier: MIT
// Package: lvbib/builder
//
// impl_record.go — field mutation and the finalize protocol of Builder[R].
//
// Mutation contract:
//   • Set/SetChecked check the lifecycle first, then flag bits, then the
//     argument; only then does assign run and the bit get set.
//
// Finalize contract (all steps under the builder lock):
//   1. node open, else ErrIllegalState
//   2. no active child, else ErrIllegalState
//   3. required flags supplied, else *core.ValidationError
//   4. Factory builds R (failure: ErrConstructFailed)
//   5. writeBack delivers R to the parent (child builders only)
//   6. State.MarkCompiled
//   7. node.Close, which notifies the parent
// A failure in steps 1-5 leaves the builder exactly as it was.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbib/core"
)

// Set runs assign under the builder lock and then marks flag as supplied.
// assign may be nil when only the bit matters. Setting a field twice is
// legal; the last write wins and the bit stays set.
//
// Errors:
//   - core.ErrIllegalState if the builder was finalized or abandoned.
//   - core.ErrInvalidArgument if flag has bits the kind does not declare;
//     assign is not run in that case.
//
// Complexity: O(1) plus the cost of assign.
func (b *Builder[R]) Set(flag core.Mask, assign func()) error {
	return b.SetChecked(flag, nil, assign)
}

// SetChecked is Set with an argument check. check runs under the builder
// lock after the lifecycle check, so a finalized builder reports
// core.ErrIllegalState whatever the argument. A non-nil error from check is
// returned unchanged; assign does not run and the bit stays unset.
//
// Complexity: O(1) plus the cost of check and assign.
func (b *Builder[R]) SetChecked(flag core.Mask, check func() error, assign func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// 1. Lifecycle first: inert builders reject every write.
	if err := b.checkMutableLocked("Set"); err != nil {
		return err
	}
	// 2. Undeclared bits never reach assign.
	if !b.state.Kind().Declares(flag) {
		return builderErrorf("Set", b.node.Path(), "flag %#x: %w", uint64(flag), core.ErrInvalidArgument)
	}
	// 3. Argument check.
	if check != nil {
		if err := check(); err != nil {
			return err
		}
	}
	// 4. Store, then record the bit.
	if assign != nil {
		assign()
	}
	if err := b.state.Supply(flag); err != nil {
		return err
	}

	return nil
}

// Update runs assign under the builder lock without touching any flag bit.
// It is meant for storage that is not tied to a single field flag.
func (b *Builder[R]) Update(assign func()) error {
	return b.Set(0, assign)
}

// View runs read under the builder lock. It is the safe way for concrete
// builders to inspect their storage while the builder may be shared.
func (b *Builder[R]) View(read func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	read()
}

// Finalize validates the accumulated fields, builds the immutable result,
// marks the builder compiled and closes its node. See the file header for
// the exact step order.
//
// Errors:
//   - core.ErrIllegalState: already finalized, abandoned, or a child is open.
//   - *core.ValidationError (errors.Is core.ErrValidation): required fields
//     missing; supply them and call Finalize again.
//   - ErrConstructFailed: the Factory rejected the fields.
//   - any error returned by the parent write-back.
func (b *Builder[R]) Finalize() (R, error) {
	var zero R

	b.mu.Lock()
	defer b.mu.Unlock()

	path := b.node.Path()
	log := b.node.Logger()

	// 1. Node open and not yet compiled.
	if err := b.checkMutableLocked("Finalize"); err != nil {
		return zero, err
	}
	// 2. Strict nesting: every inner builder has finished.
	if c := b.node.ActiveChild(); c != nil {
		return zero, builderErrorf("Finalize", path, "an inner builder is still open (%s): %w",
			c.Path(), core.ErrIllegalState)
	}
	// 3. Required flags.
	if err := b.state.AssertSatisfied(); err != nil {
		log.Debug(core.EventFinalizeRejected, "path", path, "kind", b.state.Kind().Name(),
			"missing", b.state.Kind().Names(b.state.Missing()))
		return zero, builderErrorf("Finalize", path, "%w", err)
	}

	// 4. Domain construction.
	r, err := b.build()
	if err != nil {
		return zero, builderErrorf("Finalize", path, "%w: %w", ErrConstructFailed, err)
	}
	// 5. Hand the value to the parent; a failure here still leaves b open.
	if b.writeBack != nil {
		if err = b.writeBack(r); err != nil {
			return zero, builderErrorf("Finalize", path, "write-back to parent: %w", err)
		}
	}

	// 6. Point of no return.
	if err = b.state.MarkCompiled(); err != nil {
		return zero, err
	}
	// 7. Close. The active-child check above ran under b.mu, and opening a child of b
	// also takes b.mu, so Close cannot see an open child here.
	if err = b.node.Close(); err != nil {
		return zero, err
	}
	b.result = r
	log.Debug(core.EventFinalize, "path", path, "kind", b.state.Kind().Name())

	return r, nil
}

// Result returns the record produced by a successful Finalize. It may be
// called any number of times and always returns the same value.
// Returns core.ErrIllegalState before Finalize succeeded.
func (b *Builder[R]) Result() (R, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.state.Compiled() {
		var zero R
		return zero, builderErrorf("Result", b.node.Path(), "not finalized: %w", core.ErrIllegalState)
	}

	return b.result, nil
}

// Abandon closes an unfinished builder without producing a result. Nothing
// is written back, so a parent may open another child afterwards.
//
// Errors:
//   - core.ErrIllegalState if the builder was already finalized or
//     abandoned, or if it still has an open child.
func (b *Builder[R]) Abandon() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkMutableLocked("Abandon"); err != nil {
		return err
	}
	if err := b.node.Close(); err != nil {
		return fmt.Errorf("Abandon: %w", err)
	}

	return nil
}

// Supplied returns the mask of fields supplied so far.
func (b *Builder[R]) Supplied() core.Mask {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state.Supplied()
}

// Has reports whether every bit of flag has been supplied.
func (b *Builder[R]) Has(flag core.Mask) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state.Has(flag)
}

// Missing returns the symbolic names of required fields not yet supplied.
func (b *Builder[R]) Missing() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state.Kind().Names(b.state.Missing())
}

// Compiled reports whether Finalize succeeded.
func (b *Builder[R]) Compiled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state.Compiled()
}

// IsOpen reports whether the builder still accepts mutations.
func (b *Builder[R]) IsOpen() bool { return b.node.IsOpen() }

// checkMutableLocked rejects operations on finalized or closed builders.
// Caller holds b.mu.
func (b *Builder[R]) checkMutableLocked(method string) error {
	if b.state.Compiled() {
		return builderErrorf(method, b.node.Path(), "builder already finalized: %w", core.ErrIllegalState)
	}
	if !b.node.IsOpen() {
		return builderErrorf(method, b.node.Path(), "builder is closed: %w", core.ErrIllegalState)
	}

	return nil
}
