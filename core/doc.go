// Package core provides the lifecycle primitives every lvbib builder is made of.
//
// Components, leaves first:
//
//   - Scope: opened once, closed once; Close never fails.
//   - Node: a Scope with a non-owning parent reference and at most one
//     active child. Children close before their parent; siblings never
//     overlap in time.
//   - Mask / Kind: per-record-kind named flag bits and the required subset.
//   - State: the accumulated supplied mask plus the compiled tag.
//
// Node lifecycle:
//
//	root := core.NewRoot(core.WithName("bib"))
//	c, _ := root.OpenChild(core.WithName("book"))  // root.ActiveChild() == c
//	_, err := root.OpenChild()                     // ErrIllegalState: already has an open child
//	err = root.Close()                             // ErrIllegalState: cannot close with an open child
//	_ = c.Close()                                  // root is notified; ActiveChild() == nil
//	_ = root.Close()
//
// Flag contract:
//
//	const (
//	    Title core.Mask = 1 << iota
//	    Date
//	    Publisher
//	)
//	kind := core.NewKind("book", Title|Date|Publisher, "title", "date", "publisher")
//	st := core.NewState(kind)
//	_ = st.Supply(Title)
//	err := st.AssertSatisfied() // *ValidationError{Kind:"book", Missing:["date","publisher"]}
//
// Errors:
//
//	ErrIllegalState    – lifecycle misuse (closed node, second child, double compile)
//	ErrValidation      – required fields missing; concrete type *ValidationError
//	ErrInvalidArgument – structurally invalid value or undeclared flag bits
//
// Concurrency: every Node and Scope carries its own mutex. When a child
// closes it locks itself, then its parent. State is guarded by its owner.
// No operation blocks on I/O.
package core
