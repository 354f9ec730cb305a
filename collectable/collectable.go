// Package collectable describes values that can live in hash-based
// collections and provides a small hash index over them.
package collectable

import (
	"github.com/amp-labs/sortkit/compare"
	"github.com/amp-labs/sortkit/hashing"
)

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. Uniqueness is determined by the hash,
// and collisions are resolved by comparing the objects.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// Index is a set of Collectable values bucketed by hash. Values whose hashes
// collide are kept apart with Equals, so a weak HashFunc only costs speed.
//
// Index is not safe for concurrent use.
type Index[T Collectable[T]] struct {
	hash    hashing.HashFunc
	buckets map[string][]T
	size    int
}

// NewIndex creates an empty Index using the given hash function.
func NewIndex[T Collectable[T]](hash hashing.HashFunc) *Index[T] {
	return &Index[T]{
		hash:    hash,
		buckets: make(map[string][]T),
	}
}

// Add inserts value unless an equal value is already present.
// It reports whether the value was inserted.
func (i *Index[T]) Add(value T) (bool, error) {
	key, err := i.hash(value)
	if err != nil {
		return false, err
	}

	for _, existing := range i.buckets[key] {
		if existing.Equals(value) {
			return false, nil
		}
	}

	i.buckets[key] = append(i.buckets[key], value)
	i.size++

	return true, nil
}

// Contains reports whether a value equal to value is present.
func (i *Index[T]) Contains(value T) (bool, error) {
	key, err := i.hash(value)
	if err != nil {
		return false, err
	}

	for _, existing := range i.buckets[key] {
		if existing.Equals(value) {
			return true, nil
		}
	}

	return false, nil
}

// Len returns the number of distinct values in the index.
func (i *Index[T]) Len() int {
	return i.size
}
