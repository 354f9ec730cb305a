package hashing

import (
	"errors"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBrokenHashable = errors.New("broken hashable")

type brokenHashable struct{}

func (brokenHashable) UpdateHash(hash.Hash) error {
	return errBrokenHashable
}

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty string",
			input:    HashableString(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple string",
			input:    HashableString("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestXxh3(t *testing.T) {
	t.Parallel()

	first, err := Xxh3(HashableString("hello"))
	require.NoError(t, err)

	again, err := Xxh3(HashableString("hello"))
	require.NoError(t, err)

	other, err := Xxh3(HashableString("world"))
	require.NoError(t, err)

	assert.Len(t, first, 16)
	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)
}

func TestHashFunc_PropagatesErrors(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]HashFunc{"sha256": Sha256, "xxh3": Xxh3} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result, err := fn(brokenHashable{})
			require.ErrorIs(t, err, errBrokenHashable)
			assert.Empty(t, result)
		})
	}
}

func TestString32(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0x02cc5d05), String32(""))
	assert.Equal(t, String32("Dune"), String32("Dune"))
	assert.NotEqual(t, String32("Dune"), String32("DUNE"))
}

func TestMixer(t *testing.T) {
	t.Parallel()

	t.Run("starts at the offset basis", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, FNVOffsetBasis, NewMixer().Sum32())
	})

	t.Run("multiplies then xors each field", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, uint32(84696351), NewMixer().Add(0).Sum32())
		assert.Equal(t, uint32(581859883), NewMixer().Add(1).Add(2).Add(3).Sum32())
	})

	t.Run("field order matters", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t,
			NewMixer().AddString("a").AddString("b").Sum32(),
			NewMixer().AddString("b").AddString("a").Sum32())
	})

	t.Run("AddString uses String32", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			NewMixer().Add(String32("Herbert")).Sum32(),
			NewMixer().AddString("Herbert").Sum32())
	})
}

func TestHashableString(t *testing.T) {
	t.Parallel()

	s := HashableString("abc")

	assert.Equal(t, "abc", s.String())
	assert.True(t, s.Equals("abc"))
	assert.False(t, s.Equals("ABC"))
}
