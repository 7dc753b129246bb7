// Package bib provides concrete bibliographic record builders on top of
// package builder: Date, Person, Book, Article and the Bibliography
// container.
//
// Record kinds and their required fields:
//
//	date          year                                  (month, day optional)
//	person        family                                (given optional)
//	book          title, date, publisher                (authors, editors, edition, isbn, pages)
//	article       title, authors, journal, date         (volume, issue, pages)
//	bibliography  none                                  (entries)
//
// Nested construction:
//
//	root := bib.NewBibliographyBuilder()
//	book, _ := root.Book()          // root now has an open child
//	_ = book.Title("The Go Programming Language")
//	_ = book.Publisher("Addison-Wesley")
//	date, _ := book.DateBuilder()   // book now has an open child
//	_ = date.Year(2015)
//	_, _ = date.Finalize()          // writes the date into book, sets BookDate
//	_, _ = book.Finalize()          // appends the book to root
//	all, _ := root.Finish()
//
// Setters validate before they touch the builder: a rejected value returns
// core.ErrInvalidArgument and leaves the flag bit unset. Every setter on a
// finalized builder returns core.ErrIllegalState.
//
// Records are immutable values. Getters that return slices return copies.
package bib
