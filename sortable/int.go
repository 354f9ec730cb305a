package sortable

import (
	"cmp"

	"github.com/amp-labs/sortkit/compare"
)

// Int is a sortable wrapper type for the built-in int type.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

var (
	_ Sortable[Int]        = Int(0)
	_ compare.Ordered[Int] = Int(0)
)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// CompareTo orders Ints numerically.
func (i Int) CompareTo(other Int) int {
	return cmp.Compare(int(i), int(other))
}
