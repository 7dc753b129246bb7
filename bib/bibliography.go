// SPDX-License-Identifier: MIT
// Package: lvbib/bib
//
// bibliography.go — the container that aggregates finalized entries.
//
// Contract:
//   • Entries reach the container only as finalized, immutable values:
//     either through a child builder's Finalize (Book/Article) or Add.
//   • Finish fails while an entry builder is still open.
//   • An empty bibliography is valid.

package bib

import (
	"slices"

	"github.com/katalvlaran/lvbib/builder"
	"github.com/katalvlaran/lvbib/core"
)

// BibliographyEntries is set once the first entry is added.
const BibliographyEntries core.Mask = 1

var bibliographyKind = core.NewKind("bibliography", 0, "entries")

// Entry is a finalized record held by a Bibliography.
type Entry interface {
	Kind() string
	Title() string
	Date() Date
}

var (
	_ Entry = Book{}
	_ Entry = Article{}
)

// Bibliography is an immutable, ordered list of entries.
type Bibliography struct {
	entries []Entry
}

// Len returns the number of entries.
func (b Bibliography) Len() int { return len(b.entries) }

// At returns entry i in insertion order. It panics if i is out of range,
// like slice indexing.
func (b Bibliography) At(i int) Entry { return b.entries[i] }

// Entries returns a copy of all entries in insertion order.
func (b Bibliography) Entries() []Entry { return slices.Clone(b.entries) }

// Books returns the Book entries in insertion order.
func (b Bibliography) Books() []Book { return entriesOf[Book](b.entries) }

// Articles returns the Article entries in insertion order.
func (b Bibliography) Articles() []Article { return entriesOf[Article](b.entries) }

func entriesOf[T Entry](entries []Entry) []T {
	var out []T
	for _, e := range entries {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// BibliographyBuilder is the root of a builder tree: it opens one entry
// builder at a time and collects every finalized entry.
type BibliographyBuilder struct {
	b *builder.Builder[Bibliography]

	entries []Entry
}

// NewBibliographyBuilder returns a root BibliographyBuilder.
func NewBibliographyBuilder(opts ...builder.Option) *BibliographyBuilder {
	bb := &BibliographyBuilder{}
	bb.b = builder.New(bibliographyKind, bb.compile, opts...)

	return bb
}

func (bb *BibliographyBuilder) compile() (Bibliography, error) {
	return Bibliography{entries: slices.Clone(bb.entries)}, nil
}

// Add appends an already finalized entry.
func (bb *BibliographyBuilder) Add(e Entry) error {
	return setValue(bb.b, BibliographyEntries,
		func() (Entry, error) {
			if e == nil {
				return nil, invalidArgf("BibliographyBuilder.Add", "nil entry")
			}
			return e, nil
		},
		func(v Entry) { bb.entries = append(bb.entries, v) })
}

// Book opens a child BookBuilder; its Finalize appends the book here.
func (bb *BibliographyBuilder) Book(opts ...builder.Option) (*BookBuilder, error) {
	return newBookBuilder(bb.b, func(b Book) error { return bb.Add(b) }, opts...)
}

// Article opens a child ArticleBuilder; its Finalize appends the article.
func (bb *BibliographyBuilder) Article(opts ...builder.Option) (*ArticleBuilder, error) {
	return newArticleBuilder(bb.b, func(a Article) error { return bb.Add(a) }, opts...)
}

// Len returns the number of entries collected so far.
func (bb *BibliographyBuilder) Len() int {
	var n int
	bb.b.View(func() { n = len(bb.entries) })
	return n
}

// Finish finalizes the bibliography.
func (bb *BibliographyBuilder) Finish() (Bibliography, error) { return bb.b.Finalize() }

// Result returns the finished Bibliography.
func (bb *BibliographyBuilder) Result() (Bibliography, error) { return bb.b.Result() }

// Path returns the builder's node path.
func (bb *BibliographyBuilder) Path() string { return bb.b.Path() }
