package sortable

import (
	"strings"

	"github.com/amp-labs/sortkit/compare"
)

type String string

var (
	_ Sortable[String]        = String("")
	_ compare.Ordered[String] = String("")
)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

func (s String) CompareTo(other String) int {
	return strings.Compare(string(s), string(other))
}

// FoldString is a string whose equality and ordering ignore case, using
// compare.FoldString. "Dune" and "DUNE" are equal FoldStrings.
type FoldString string

var (
	_ Sortable[FoldString]        = FoldString("")
	_ compare.Ordered[FoldString] = FoldString("")
)

func (s FoldString) Equals(other FoldString) bool {
	return compare.EqualFold(string(s), string(other))
}

func (s FoldString) LessThan(other FoldString) bool {
	return s.CompareTo(other) < 0
}

func (s FoldString) CompareTo(other FoldString) int {
	return compare.FoldString(string(s), string(other))
}
