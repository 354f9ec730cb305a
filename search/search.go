// Package search implements binary search over sorted slices.
//
// All functions require the slice to be sorted ascending under the ordering
// used for the search; this is not checked. When several elements are equal
// to the target, the index of any one of them may be returned.
package search

import (
	"cmp"
	"fmt"

	"github.com/amp-labs/sortkit/compare"
	commonerrors "github.com/amp-labs/sortkit/errors"
	"github.com/amp-labs/sortkit/sortable"
)

// NotFound is the index returned when no element equals the target.
const NotFound = -1

// ErrNilSequence is returned when a nil slice is searched. A non-nil empty
// slice is a valid, empty sequence.
var ErrNilSequence = fmt.Errorf("%w: sequence is nil", commonerrors.ErrInvalidArgument)

// BinarySearch searches s for target using the natural ordering of E.
//
// Example:
//
//	idx, err := search.BinarySearch([]int{1, 3, 5, 7, 9, 11}, 7) // idx == 3
func BinarySearch[S ~[]E, E cmp.Ordered](s S, target E) (int, error) {
	if s == nil {
		return NotFound, ErrNilSequence
	}

	return find[E](s, target, cmp.Compare[E]), nil
}

// BinarySearchFunc searches s for target using the ordering cmp, which must
// return a negative number when its first argument sorts before the second,
// zero when they are equal and a positive number otherwise. Elements of s are
// always passed as the first argument.
//
// A nil cmp selects the natural ordering of E (see compare.Natural); if E has
// none, an error wrapping compare.ErrNoNaturalOrdering is returned. A panic
// raised by cmp is not recovered.
func BinarySearchFunc[S ~[]E, E any](s S, target E, cmp func(a, b E) int) (int, error) {
	if s == nil {
		return NotFound, ErrNilSequence
	}

	if cmp == nil {
		natural, err := compare.Natural[E]()
		if err != nil {
			return NotFound, err
		}

		cmp = natural
	}

	return find[E](s, target, cmp), nil
}

// BinarySearchSortable searches s for target using the Equals and LessThan
// methods of the elements.
func BinarySearchSortable[S ~[]E, E sortable.Sortable[E]](s S, target E) (int, error) {
	if s == nil {
		return NotFound, ErrNilSequence
	}

	return find[E](s, target, func(a, b E) int {
		switch {
		case a.LessThan(b):
			return -1
		case a.Equals(b):
			return 0
		default:
			return 1
		}
	}), nil
}

func find[E any](s []E, target E, cmp func(a, b E) int) int {
	low, high := 0, len(s)-1

	for low <= high {
		mid := low + (high-low)/2

		switch c := cmp(s[mid], target); {
		case c == 0:
			return mid
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return NotFound
}
