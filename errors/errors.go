// Package errors holds the sentinel errors shared across sortkit and a small
// accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrInvalidArgument is the root of every argument-validation failure.
	// Callers should test for it with errors.Is rather than matching the
	// more specific sentinels exported by individual packages.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrWrongType marks a value of an unexpected concrete type. It is
	// wrapped together with ErrInvalidArgument.
	ErrWrongType = errors.New("wrong type")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use it when every failure of a batch should be reported, not just the first.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the lone error if there is
// exactly one, or an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
