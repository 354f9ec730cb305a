// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, giving them a natural ordering.
//
// # Overview
//
// [Sortable] extends [github.com/amp-labs/sortkit/compare.Comparable] with a
// LessThan method. Every wrapper in this package also implements
// [github.com/amp-labs/sortkit/compare.Ordered], so the same values can be
// searched with [github.com/amp-labs/sortkit/search.BinarySearchSortable] or
// with [github.com/amp-labs/sortkit/search.BinarySearchFunc] and a nil
// comparator.
//
// # Usage
//
//	titles := []sortable.FoldString{"dune", "Emma", "ULYSSES"}
//	idx, err := search.BinarySearchSortable(titles, sortable.FoldString("emma"))
//	// idx == 1
//
// # Creating Custom Sortable Types
//
//	type Shelf struct {
//	    Row  int
//	    Slot int
//	}
//
//	func (s Shelf) Equals(other Shelf) bool {
//	    return s.Row == other.Row && s.Slot == other.Slot
//	}
//
//	func (s Shelf) LessThan(other Shelf) bool {
//	    if s.Row != other.Row {
//	        return s.Row < other.Row
//	    }
//	    return s.Slot < other.Slot
//	}
//
// # Thread Safety
//
// The wrapper types are immutable values and safe for concurrent use.
package sortable
