// SPDX-License-Identifier: MIT
// Package: lvbib/bib
//
// article.go — journal Article record and ArticleBuilder.
//
// Contract:
//   • TITLE, AUTHORS, JOURNAL and DATE are required.
//   • VOLUME, ISSUE and PAGES are optional; a page range has first ≤ last.

package bib

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvbib/builder"
	"github.com/katalvlaran/lvbib/core"
)

// Article field flags.
const (
	ArticleTitle core.Mask = 1 << iota
	ArticleAuthors
	ArticleJournal
	ArticleDate
	ArticleVolume
	ArticleIssue
	ArticlePages
)

var articleKind = core.NewKind("article", ArticleTitle|ArticleAuthors|ArticleJournal|ArticleDate,
	"title", "authors", "journal", "date", "volume", "issue", "pages")

// PageRange is an inclusive page span; the zero value means unknown.
type PageRange struct {
	First, Last int
}

// String renders "12-34", "12", or "".
func (r PageRange) String() string {
	switch {
	case r.First == 0:
		return ""
	case r.First == r.Last:
		return fmt.Sprint(r.First)
	default:
		return fmt.Sprintf("%d-%d", r.First, r.Last)
	}
}

// ArticleExtra carries the optional fields of NewArticle.
type ArticleExtra struct {
	Volume string
	Issue  string
	Pages  PageRange
}

// Article is an immutable journal article entry.
type Article struct {
	title   string
	authors []Person
	journal string
	date    Date
	volume  string
	issue   string
	pages   PageRange
}

// NewArticle constructs an Article directly from already validated values.
func NewArticle(title string, authors []Person, journal string, date Date, extra ArticleExtra) Article {
	return Article{
		title:   title,
		authors: cloneOrNil(authors),
		journal: journal,
		date:    date,
		volume:  extra.Volume,
		issue:   extra.Issue,
		pages:   extra.Pages,
	}
}

// Kind returns "article".
func (a Article) Kind() string { return articleKind.Name() }

// Title returns the title.
func (a Article) Title() string { return a.title }

// Authors returns a copy of the authors in insertion order.
func (a Article) Authors() []Person { return cloneOrNil(a.authors) }

// Journal returns the journal name.
func (a Article) Journal() string { return a.journal }

// Date returns the publication date.
func (a Article) Date() Date { return a.date }

// Volume returns the volume, possibly empty.
func (a Article) Volume() string { return a.volume }

// Issue returns the issue, possibly empty.
func (a Article) Issue() string { return a.issue }

// Pages returns the page range.
func (a Article) Pages() PageRange { return a.pages }

// Equal reports field-for-field equality.
func (a Article) Equal(o Article) bool {
	return a.title == o.title &&
		slices.Equal(a.authors, o.authors) &&
		a.journal == o.journal &&
		a.date == o.date &&
		a.volume == o.volume &&
		a.issue == o.issue &&
		a.pages == o.pages
}

// ArticleBuilder accumulates an Article.
type ArticleBuilder struct {
	b *builder.Builder[Article]

	title   string
	authors []Person
	journal string
	date    Date
	volume  string
	issue   string
	pages   PageRange
}

// NewArticleBuilder returns a root ArticleBuilder.
func NewArticleBuilder(opts ...builder.Option) *ArticleBuilder {
	ab, _ := newArticleBuilder(nil, nil, opts...)
	return ab
}

func newArticleBuilder(parent builder.Parent, writeBack func(Article) error, opts ...builder.Option) (*ArticleBuilder, error) {
	ab := &ArticleBuilder{}
	if parent == nil {
		ab.b = builder.New(articleKind, ab.compile, opts...)
		return ab, nil
	}
	b, err := builder.Open(parent, articleKind, ab.compile, writeBack, opts...)
	if err != nil {
		return nil, err
	}
	ab.b = b

	return ab, nil
}

func (ab *ArticleBuilder) compile() (Article, error) {
	return NewArticle(ab.title, ab.authors, ab.journal, ab.date, ArticleExtra{
		Volume: ab.volume,
		Issue:  ab.issue,
		Pages:  ab.pages,
	}), nil
}

// Title sets the title (non-empty).
func (ab *ArticleBuilder) Title(title string) error {
	return setValue(ab.b, ArticleTitle,
		func() (string, error) { return requireText("ArticleBuilder.Title", "title", title) },
		func(v string) { ab.title = v })
}

// Journal sets the journal name (non-empty).
func (ab *ArticleBuilder) Journal(name string) error {
	return setValue(ab.b, ArticleJournal,
		func() (string, error) { return requireText("ArticleBuilder.Journal", "journal", name) },
		func(v string) { ab.journal = v })
}

// Date sets the publication date. The zero Date is rejected.
func (ab *ArticleBuilder) Date(d Date) error {
	return setValue(ab.b, ArticleDate, func() (Date, error) { return checkDate("ArticleBuilder.Date", d) },
		func(v Date) { ab.date = v })
}

// AddAuthor appends an author.
func (ab *ArticleBuilder) AddAuthor(p Person) error {
	return setValue(ab.b, ArticleAuthors, func() (Person, error) { return checkPerson("ArticleBuilder.AddAuthor", p) },
		func(v Person) { ab.authors = append(ab.authors, v) })
}

// Volume sets the volume (non-empty).
func (ab *ArticleBuilder) Volume(v string) error {
	return setValue(ab.b, ArticleVolume,
		func() (string, error) { return requireText("ArticleBuilder.Volume", "volume", v) },
		func(v string) { ab.volume = v })
}

// Issue sets the issue (non-empty).
func (ab *ArticleBuilder) Issue(v string) error {
	return setValue(ab.b, ArticleIssue,
		func() (string, error) { return requireText("ArticleBuilder.Issue", "issue", v) },
		func(v string) { ab.issue = v })
}

// Pages sets the inclusive page range; requires 1 ≤ first ≤ last.
func (ab *ArticleBuilder) Pages(first, last int) error {
	return setValue(ab.b, ArticlePages,
		func() (PageRange, error) {
			if first < 1 || last < first {
				return PageRange{}, invalidArgf("ArticleBuilder.Pages", "bad range %d-%d", first, last)
			}
			return PageRange{First: first, Last: last}, nil
		},
		func(v PageRange) { ab.pages = v })
}

// DateBuilder opens a child builder for the publication date.
func (ab *ArticleBuilder) DateBuilder(opts ...builder.Option) (*DateBuilder, error) {
	return newDateBuilder(ab.b, ab.Date, opts...)
}

// AuthorBuilder opens a child builder whose Finalize appends an author.
func (ab *ArticleBuilder) AuthorBuilder(opts ...builder.Option) (*PersonBuilder, error) {
	return newPersonBuilder(ab.b, ab.AddAuthor, append([]builder.Option{builder.WithName("author")}, opts...)...)
}

// Finalize builds the Article.
func (ab *ArticleBuilder) Finalize() (Article, error) { return ab.b.Finalize() }

// Result returns the finalized Article.
func (ab *ArticleBuilder) Result() (Article, error) { return ab.b.Result() }

// Abandon closes the builder without producing an Article.
func (ab *ArticleBuilder) Abandon() error { return ab.b.Abandon() }

// Missing lists required fields not yet supplied.
func (ab *ArticleBuilder) Missing() []string { return ab.b.Missing() }

// Path returns the builder's node path.
func (ab *ArticleBuilder) Path() string { return ab.b.Path() }
