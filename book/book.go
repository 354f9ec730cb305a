// Package book provides Book, an immutable value type identified by its
// title, author and publisher, all compared case-insensitively.
//
// A nil *Book plays the role of an absent book: the comparison functions in
// this package accept nil on either side and follow a fixed truth table
// (see Less, LessOrEqual, Greater and GreaterOrEqual).
package book

import (
	"fmt"
	"hash"

	"github.com/amp-labs/sortkit/collectable"
	"github.com/amp-labs/sortkit/compare"
	commonerrors "github.com/amp-labs/sortkit/errors"
	"github.com/amp-labs/sortkit/hashing"
	"github.com/amp-labs/sortkit/sortable"
)

var (
	// ErrMissingField is returned when a Book is built without one of its fields.
	ErrMissingField = fmt.Errorf("%w: missing book field", commonerrors.ErrInvalidArgument)

	// ErrNotABook is returned when a Book is compared with a value of another
	// type. It matches both ErrInvalidArgument and ErrWrongType.
	ErrNotABook = fmt.Errorf("%w: %w: value is not a *book.Book",
		commonerrors.ErrInvalidArgument, commonerrors.ErrWrongType)
)

var (
	_ sortable.Sortable[*Book]       = (*Book)(nil)
	_ compare.Ordered[*Book]         = (*Book)(nil)
	_ collectable.Collectable[*Book] = (*Book)(nil)
)

// Book is immutable; use New or FromFields to build one.
type Book struct {
	author    string
	title     string
	publisher string
}

// New returns a Book with the given fields. Empty strings are valid values.
func New(author, title, publisher string) *Book {
	return &Book{
		author:    author,
		title:     title,
		publisher: publisher,
	}
}

// FromFields builds a Book from optional fields. A nil field is reported as
// an error wrapping ErrMissingField that names the field.
func FromFields(author, title, publisher *string) (*Book, error) {
	switch {
	case author == nil:
		return nil, fmt.Errorf("%w: author", ErrMissingField)
	case title == nil:
		return nil, fmt.Errorf("%w: title", ErrMissingField)
	case publisher == nil:
		return nil, fmt.Errorf("%w: publisher", ErrMissingField)
	}

	return New(*author, *title, *publisher), nil
}

// Author returns the author as given, without case folding.
func (b *Book) Author() string { return b.author }

// Title returns the title as given, without case folding.
func (b *Book) Title() string { return b.title }

// Publisher returns the publisher as given, without case folding.
func (b *Book) Publisher() string { return b.publisher }

// String renders the book as `"Title" by Author (Publisher)`.
func (b *Book) String() string {
	if b == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%q by %s (%s)", b.title, b.author, b.publisher)
}

// CompareTo orders books by title, then author, then publisher, each compared
// with compare.FoldString. Every book sorts after nil. A nil receiver sorts
// before every book and equal to nil.
func (b *Book) CompareTo(other *Book) int {
	switch {
	case b == nil && other == nil:
		return 0
	case b == nil:
		return -1
	case other == nil:
		return 1
	}

	if c := compare.FoldString(b.title, other.title); c != 0 {
		return c
	}

	if c := compare.FoldString(b.author, other.author); c != 0 {
		return c
	}

	return compare.FoldString(b.publisher, other.publisher)
}

// CompareToAny is CompareTo for an untyped argument. Untyped nil and a nil
// *Book both yield 1. Any value other than a *Book, including a Book value,
// yields an error wrapping ErrNotABook.
func (b *Book) CompareToAny(other any) (int, error) {
	if other == nil {
		return 1, nil
	}

	o, ok := other.(*Book)
	if !ok {
		return 0, fmt.Errorf("%w: got %T", ErrNotABook, other)
	}

	if o == nil {
		return 1, nil
	}

	return b.CompareTo(o), nil
}

// Equals reports whether other has the same title, author and publisher,
// ignoring case. A book is never equal to nil.
func (b *Book) Equals(other *Book) bool {
	if b == other {
		return true
	}

	if b == nil || other == nil {
		return false
	}

	return compare.EqualFold(b.author, other.author) &&
		compare.EqualFold(b.title, other.title) &&
		compare.EqualFold(b.publisher, other.publisher)
}

// EqualsAny is Equals for an untyped argument. Values of any other concrete
// type are unequal.
func (b *Book) EqualsAny(other any) bool {
	o, ok := other.(*Book)
	if !ok {
		return false
	}

	return b.Equals(o)
}

// LessThan reports whether b sorts strictly before other.
func (b *Book) LessThan(other *Book) bool {
	return Less(b, other)
}

// HashCode returns a 32-bit hash that is equal for books that are Equals.
// The case-folded author, title and publisher are hashed individually and
// mixed with hashing.Mixer in that order.
func (b *Book) HashCode() uint32 {
	return hashing.NewMixer().
		AddString(compare.Fold(b.author)).
		AddString(compare.Fold(b.title)).
		AddString(compare.Fold(b.publisher)).
		Sum32()
}

// UpdateHash writes the case-folded fields to h, each terminated by a zero
// byte so that field boundaries are part of the hash.
func (b *Book) UpdateHash(h hash.Hash) error {
	for _, field := range []string{b.author, b.title, b.publisher} {
		if _, err := h.Write([]byte(compare.Fold(field))); err != nil {
			return err
		}

		if _, err := h.Write([]byte{0}); err != nil {
			return err
		}
	}

	return nil
}
