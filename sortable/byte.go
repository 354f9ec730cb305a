package sortable

import (
	"cmp"

	"github.com/amp-labs/sortkit/compare"
)

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

var (
	_ Sortable[Byte]        = Byte(0)
	_ compare.Ordered[Byte] = Byte(0)
)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

// LessThan returns true if this Byte is numerically less than the other Byte.
func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}

func (b Byte) CompareTo(other Byte) int {
	return cmp.Compare(byte(b), byte(other))
}
