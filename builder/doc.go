// Package builder provides the generic record builder Builder[R]: a
// core.Node that accumulates fields, enforces a per-kind required-flag
// contract, and produces exactly one immutable R on Finalize.
//
// The package offers the following key components:
//
//   - Construction:
//     – New[R](kind, factory, opts...):  root builder (no parent).
//     – Open[C](parent, kind, factory, writeBack, opts...): child builder
//     opened under any *Builder[P]; the sub-builder accessor pattern.
//   - Mutation:
//     – Set(flag, assign):  store a field under the lock, then set its bit.
//     – SetChecked(flag, check, assign): as Set, with an argument check
//     that runs after the lifecycle check.
//     – Update(assign):     store without touching any bit.
//   - Finalization:
//     – Finalize():  validate, build, write back, mark compiled, close.
//     – Result():    the cached R, any number of times after Finalize.
//     – Abandon():   close an unfinished builder without a result.
//   - Options: WithName, WithLogger.
//
// Guarantees:
//
//   - Exactly-once finalize: a second Finalize fails with core.ErrIllegalState
//     and Result keeps returning the first value.
//   - All-or-nothing: a failed Finalize leaves the builder untouched, so the
//     caller may supply missing fields and retry.
//   - Nesting discipline: a parent cannot finalize or open a second child
//     while a child is open; a child's result reaches the parent's storage
//     before the parent regains control.
//   - Per-instance locking; no global state; no blocking I/O.
//
// Example (a record kind with one required field):
//
//	const nameFlag core.Mask = 1
//	kind := core.NewKind("tag", nameFlag, "name")
//	var name string
//	b := builder.New(kind, func() (string, error) { return name, nil })
//	_ = b.Set(nameFlag, func() { name = "go" })
//	tag, _ := b.Finalize() // "go"
package builder
