// Package lvbib builds immutable records step by step, through a tree of
// scoped builders that open, nest and close in strict order.
//
// 🚀 What is lvbib?
//
//	A small, thread-safe library that brings together:
//		• Scopes: a one-way new → open → closed lifecycle
//		• Nodes: a tree where every node has at most one open child
//		• Required-field masks: finalize names exactly what is missing
//		• Generic builders: Builder[R] produces an R exactly once
//		• Bibliographic records: Date, Person, Book, Article, Bibliography
//
// ✨ Why lvbib?
//
//   - A parent cannot finish while one of its parts is still being built
//   - Child builders hand their result straight back to the parent
//   - Finalize is all-or-nothing; a rejected call can simply be retried
//   - Lifecycle events go to any slog-compatible logger
//
// Packages:
//
//	core/     — Scope, Node, Kind/Mask, State and the error sentinels
//	builder/  — Builder[R], Open[C] for child builders, options
//	bib/      — concrete builders for bibliographic records
//	examples/ — a runnable reading-list catalog
//
// Quick tree example:
//
//	bibliography
//	 └── book
//	      └── date   ← only the deepest node is mutable-and-finalizable
//
//	go get github.com/katalvlaran/lvbib
package lvbib
