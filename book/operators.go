package book

// Compare is the free-function form of CompareTo, for slices.SortFunc and
// search.BinarySearchFunc. nil sorts before every book.
func Compare(a, b *Book) int {
	return a.CompareTo(b)
}

// Equal reports whether two possibly-nil books are equal. Two nils are equal;
// nil and a book are not.
func Equal(left, right *Book) bool {
	if left == nil {
		return right == nil
	}

	return left.Equals(right)
}

func NotEqual(left, right *Book) bool {
	return !Equal(left, right)
}

// Less: a nil left is less than any book and not less than nil.
func Less(left, right *Book) bool {
	if left == nil {
		return right != nil
	}

	return left.CompareTo(right) < 0
}

// LessOrEqual: a nil left is always less than or equal.
func LessOrEqual(left, right *Book) bool {
	if left == nil {
		return true
	}

	return left.CompareTo(right) <= 0
}

// Greater: a nil left is never greater.
func Greater(left, right *Book) bool {
	if left == nil {
		return false
	}

	return left.CompareTo(right) > 0
}

// GreaterOrEqual: a nil left is greater than or equal only to nil.
func GreaterOrEqual(left, right *Book) bool {
	if left == nil {
		return right == nil
	}

	return left.CompareTo(right) >= 0
}
