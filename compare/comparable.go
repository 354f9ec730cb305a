// Package compare provides equality and ordering contracts plus a handful of
// ready-made orderings.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Ordered is implemented by types that define their own three-way comparison.
// CompareTo returns a negative number when the receiver sorts before other,
// zero when they are equivalent and a positive number when it sorts after.
type Ordered[T any] interface {
	CompareTo(other T) int
}

// Func is a three-way comparison function with the same sign convention as
// Ordered.CompareTo and cmp.Compare.
type Func[T any] func(a, b T) int

// Reverse inverts an ordering.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// By orders values of T by a key extracted from each of them.
//
// Example:
//
//	byLen := compare.By(func(s string) int { return len(s) }, cmp.Compare[int])
func By[T, K any](key func(T) K, f Func[K]) Func[T] {
	return func(a, b T) int {
		return f(key(a), key(b))
	}
}
