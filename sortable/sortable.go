package sortable

import (
	"github.com/amp-labs/sortkit/compare"
)

// Sortable is the natural-ordering contract: equality plus a strict
// "sorts before" relation. LessThan must be a strict weak order that agrees
// with Equals (neither a.LessThan(b) nor b.LessThan(a) exactly when a.Equals(b)).
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
