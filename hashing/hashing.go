// Package hashing defines how values feed themselves into a hash and
// provides the hash functions and mixers used across sortkit.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. Values that are equal must
// write identical bytes.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return sum(sha256.New(), hashable)
}

// Xxh3 returns the 64-bit XXH3 hashing of the given Hashable as a
// hex-encoded string. It is much faster than Sha256 and is the
// right choice when the hash never leaves the process.
func Xxh3(hashable Hashable) (string, error) {
	return sum(xxh3.New(), hashable)
}

func sum(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// String32 returns the 32-bit xxHash of s.
func String32(s string) uint32 {
	return xxhash.ChecksumString32(s)
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}
