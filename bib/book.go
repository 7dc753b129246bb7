// SPDX-License-Identifier: MIT
// Package: lvbib/bib
//
// book.go — Book record and BookBuilder.
//
// Contract:
//   • TITLE, DATE and PUBLISHER are required.
//   • AUTHORS and EDITORS accumulate; their bit is set on the first add.
//   • DateBuilder / AuthorBuilder / EditorBuilder open a child builder; the
//     child's Finalize stores its value here and sets the matching bit.
//   • Book is immutable: slices are copied on the way in and out.

package bib

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvbib/builder"
	"github.com/katalvlaran/lvbib/core"
)

// Book field flags.
const (
	BookTitle core.Mask = 1 << iota
	BookDate
	BookPublisher
	BookAuthors
	BookEditors
	BookEdition
	BookISBN
	BookPages
)

var bookKind = core.NewKind("book", BookTitle|BookDate|BookPublisher,
	"title", "date", "publisher", "authors", "editors", "edition", "isbn", "pages")

// BookExtra carries the optional fields of NewBook.
type BookExtra struct {
	Authors []Person
	Editors []Person
	Edition string
	ISBN    string // normalized: digits only (ISBN-10 may end in 'X')
	Pages   int    // 0 means unknown
}

// Book is an immutable bibliographic book entry.
type Book struct {
	title     string
	date      Date
	publisher string
	authors   []Person
	editors   []Person
	edition   string
	isbn      string
	pages     int
}

// NewBook constructs a Book directly from already validated values. It
// performs the same construction BookBuilder.Finalize performs, so a
// builder supplied with equal values yields an Equal book.
func NewBook(title string, date Date, publisher string, extra BookExtra) Book {
	return Book{
		title:     title,
		date:      date,
		publisher: publisher,
		authors:   cloneOrNil(extra.Authors),
		editors:   cloneOrNil(extra.Editors),
		edition:   extra.Edition,
		isbn:      extra.ISBN,
		pages:     extra.Pages,
	}
}

// cloneOrNil copies s, keeping nil for empty input so that equal books
// compare equal regardless of how their slices were created.
func cloneOrNil[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

// Kind returns "book".
func (b Book) Kind() string { return bookKind.Name() }

// Title returns the title.
func (b Book) Title() string { return b.title }

// Date returns the publication date.
func (b Book) Date() Date { return b.date }

// Publisher returns the publisher.
func (b Book) Publisher() string { return b.publisher }

// Authors returns a copy of the authors in insertion order.
func (b Book) Authors() []Person { return cloneOrNil(b.authors) }

// Editors returns a copy of the editors in insertion order.
func (b Book) Editors() []Person { return cloneOrNil(b.editors) }

// Edition returns the edition statement, possibly empty.
func (b Book) Edition() string { return b.edition }

// ISBN returns the normalized ISBN, possibly empty.
func (b Book) ISBN() string { return b.isbn }

// Pages returns the page count, 0 if unknown.
func (b Book) Pages() int { return b.pages }

// Equal reports field-for-field equality.
func (b Book) Equal(o Book) bool {
	return b.title == o.title &&
		b.date == o.date &&
		b.publisher == o.publisher &&
		slices.Equal(b.authors, o.authors) &&
		slices.Equal(b.editors, o.editors) &&
		b.edition == o.edition &&
		b.isbn == o.isbn &&
		b.pages == o.pages
}

// BookBuilder accumulates a Book.
type BookBuilder struct {
	b *builder.Builder[Book]

	title     string
	date      Date
	publisher string
	authors   []Person
	editors   []Person
	edition   string
	isbn      string
	pages     int
}

// NewBookBuilder returns a root BookBuilder.
func NewBookBuilder(opts ...builder.Option) *BookBuilder {
	bb, _ := newBookBuilder(nil, nil, opts...)
	return bb
}

func newBookBuilder(parent builder.Parent, writeBack func(Book) error, opts ...builder.Option) (*BookBuilder, error) {
	bb := &BookBuilder{}
	if parent == nil {
		bb.b = builder.New(bookKind, bb.compile, opts...)
		return bb, nil
	}
	b, err := builder.Open(parent, bookKind, bb.compile, writeBack, opts...)
	if err != nil {
		return nil, err
	}
	bb.b = b

	return bb, nil
}

func (bb *BookBuilder) compile() (Book, error) {
	return NewBook(bb.title, bb.date, bb.publisher, BookExtra{
		Authors: bb.authors,
		Editors: bb.editors,
		Edition: bb.edition,
		ISBN:    bb.isbn,
		Pages:   bb.pages,
	}), nil
}

// Title sets the title (non-empty).
func (bb *BookBuilder) Title(title string) error {
	return setValue(bb.b, BookTitle,
		func() (string, error) { return requireText("BookBuilder.Title", "title", title) },
		func(v string) { bb.title = v })
}

// Publisher sets the publisher (non-empty).
func (bb *BookBuilder) Publisher(name string) error {
	return setValue(bb.b, BookPublisher,
		func() (string, error) { return requireText("BookBuilder.Publisher", "publisher", name) },
		func(v string) { bb.publisher = v })
}

// Date sets the publication date. The zero Date is rejected.
func (bb *BookBuilder) Date(d Date) error {
	return setValue(bb.b, BookDate, func() (Date, error) { return checkDate("BookBuilder.Date", d) },
		func(v Date) { bb.date = v })
}

// AddAuthor appends an author.
func (bb *BookBuilder) AddAuthor(p Person) error {
	return setValue(bb.b, BookAuthors, func() (Person, error) { return checkPerson("BookBuilder.AddAuthor", p) },
		func(v Person) { bb.authors = append(bb.authors, v) })
}

// AddEditor appends an editor.
func (bb *BookBuilder) AddEditor(p Person) error {
	return setValue(bb.b, BookEditors, func() (Person, error) { return checkPerson("BookBuilder.AddEditor", p) },
		func(v Person) { bb.editors = append(bb.editors, v) })
}

// Edition sets the edition statement (non-empty).
func (bb *BookBuilder) Edition(ed string) error {
	return setValue(bb.b, BookEdition,
		func() (string, error) { return requireText("BookBuilder.Edition", "edition", ed) },
		func(v string) { bb.edition = v })
}

// ISBN sets the ISBN after stripping hyphens/spaces and verifying the
// ISBN-10 or ISBN-13 check digit.
func (bb *BookBuilder) ISBN(isbn string) error {
	return setValue(bb.b, BookISBN, func() (string, error) { return normalizeISBN("BookBuilder.ISBN", isbn) },
		func(v string) { bb.isbn = v })
}

// Pages sets the page count (≥ 1).
func (bb *BookBuilder) Pages(n int) error {
	return setValue(bb.b, BookPages,
		func() (int, error) { return n, requireRange("BookBuilder.Pages", "pages", n, 1, math.MaxInt) },
		func(v int) { bb.pages = v })
}

// DateBuilder opens a child builder for the publication date. Its Finalize
// stores the date here and sets BookDate.
func (bb *BookBuilder) DateBuilder(opts ...builder.Option) (*DateBuilder, error) {
	return newDateBuilder(bb.b, bb.Date, opts...)
}

// AuthorBuilder opens a child builder whose Finalize appends an author.
func (bb *BookBuilder) AuthorBuilder(opts ...builder.Option) (*PersonBuilder, error) {
	return newPersonBuilder(bb.b, bb.AddAuthor, append([]builder.Option{builder.WithName("author")}, opts...)...)
}

// EditorBuilder opens a child builder whose Finalize appends an editor.
func (bb *BookBuilder) EditorBuilder(opts ...builder.Option) (*PersonBuilder, error) {
	return newPersonBuilder(bb.b, bb.AddEditor, append([]builder.Option{builder.WithName("editor")}, opts...)...)
}

// Finalize builds the Book. It fails while a child builder is open and
// while TITLE, DATE or PUBLISHER is missing.
func (bb *BookBuilder) Finalize() (Book, error) { return bb.b.Finalize() }

// Result returns the finalized Book.
func (bb *BookBuilder) Result() (Book, error) { return bb.b.Result() }

// Abandon closes the builder without producing a Book.
func (bb *BookBuilder) Abandon() error { return bb.b.Abandon() }

// Missing lists required fields not yet supplied.
func (bb *BookBuilder) Missing() []string { return bb.b.Missing() }

// Has reports whether every field in flags was supplied.
func (bb *BookBuilder) Has(flags core.Mask) bool { return bb.b.Has(flags) }

// Path returns the builder's node path.
func (bb *BookBuilder) Path() string { return bb.b.Path() }
