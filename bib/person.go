// SPDX-License-Identifier: MIT
// Package: lvbib/bib
//
// person.go — Person record (author / editor) and its builder.

package bib

import (
	"strings"

	"github.com/katalvlaran/lvbib/builder"
	"github.com/katalvlaran/lvbib/core"
)

// Person field flags.
const (
	PersonFamily core.Mask = 1 << iota
	PersonGiven
)

var personKind = core.NewKind("person", PersonFamily, "family", "given")

// Person is a contributor name. Given may be empty.
type Person struct {
	family, given string
}

// NewPerson builds a Person directly. family must be non-empty.
func NewPerson(family, given string) (Person, error) {
	f, err := requireText("NewPerson", "family", family)
	if err != nil {
		return Person{}, err
	}

	return Person{family: f, given: strings.TrimSpace(given)}, nil
}

// Family returns the family name.
func (p Person) Family() string { return p.family }

// Given returns the given name(s), possibly empty.
func (p Person) Given() string { return p.given }

// String renders "Family, Given" or just "Family".
func (p Person) String() string {
	if p.given == "" {
		return p.family
	}
	return p.family + ", " + p.given
}

// PersonBuilder accumulates a Person.
type PersonBuilder struct {
	b *builder.Builder[Person]

	family, given string
}

// NewPersonBuilder returns a root PersonBuilder.
func NewPersonBuilder(opts ...builder.Option) *PersonBuilder {
	p, _ := newPersonBuilder(nil, nil, opts...)
	return p
}

func newPersonBuilder(parent builder.Parent, writeBack func(Person) error, opts ...builder.Option) (*PersonBuilder, error) {
	p := &PersonBuilder{}
	if parent == nil {
		p.b = builder.New(personKind, p.compile, opts...)
		return p, nil
	}
	b, err := builder.Open(parent, personKind, p.compile, writeBack, opts...)
	if err != nil {
		return nil, err
	}
	p.b = b

	return p, nil
}

func (p *PersonBuilder) compile() (Person, error) {
	return Person{family: p.family, given: p.given}, nil
}

// Family sets the family name (non-empty).
func (p *PersonBuilder) Family(name string) error {
	return setValue(p.b, PersonFamily,
		func() (string, error) { return requireText("PersonBuilder.Family", "family", name) },
		func(v string) { p.family = v })
}

// Given sets the given name(s) (non-empty).
func (p *PersonBuilder) Given(name string) error {
	return setValue(p.b, PersonGiven,
		func() (string, error) { return requireText("PersonBuilder.Given", "given", name) },
		func(v string) { p.given = v })
}

// Finalize builds the Person and hands it to the parent if any.
func (p *PersonBuilder) Finalize() (Person, error) { return p.b.Finalize() }

// Result returns the finalized Person.
func (p *PersonBuilder) Result() (Person, error) { return p.b.Result() }

// Abandon closes the builder without producing a Person.
func (p *PersonBuilder) Abandon() error { return p.b.Abandon() }

// Missing lists required fields not yet supplied.
func (p *PersonBuilder) Missing() []string { return p.b.Missing() }

// Path returns the builder's node path.
func (p *PersonBuilder) Path() string { return p.b.Path() }
