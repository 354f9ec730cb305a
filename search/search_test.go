package search

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/sortkit/compare"
	commonerrors "github.com/amp-labs/sortkit/errors"
	"github.com/amp-labs/sortkit/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shelf struct {
	row  int
	slot int
}

func TestBinarySearch(t *testing.T) {
	t.Parallel()

	values := []int{1, 3, 5, 7, 9, 11}

	tests := []struct {
		name     string
		target   int
		expected int
	}{
		{name: "middle element", target: 7, expected: 3},
		{name: "first element", target: 1, expected: 0},
		{name: "last element", target: 11, expected: 5},
		{name: "absent between elements", target: 4, expected: NotFound},
		{name: "absent below range", target: 0, expected: NotFound},
		{name: "absent above range", target: 12, expected: NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			idx, err := BinarySearch(values, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, idx)
		})
	}
}

func TestBinarySearch_NilSequence(t *testing.T) {
	t.Parallel()

	idx, err := BinarySearch([]int(nil), 7)
	require.ErrorIs(t, err, ErrNilSequence)
	require.ErrorIs(t, err, commonerrors.ErrInvalidArgument)
	assert.Equal(t, NotFound, idx)

	_, err = BinarySearchFunc([]shelf(nil), shelf{}, func(a, b shelf) int { return 0 })
	require.ErrorIs(t, err, ErrNilSequence)

	_, err = BinarySearchSortable([]sortable.Int(nil), 1)
	require.ErrorIs(t, err, ErrNilSequence)
}

func TestBinarySearch_EmptySequence(t *testing.T) {
	t.Parallel()

	for _, target := range []int{-1, 0, 1, 42} {
		idx, err := BinarySearch([]int{}, target)
		require.NoError(t, err)
		assert.Negative(t, idx)
	}
}

func TestBinarySearch_SingleElement(t *testing.T) {
	t.Parallel()

	idx, err := BinarySearch([]string{"dune"}, "dune")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = BinarySearch([]string{"dune"}, "emma")
	require.NoError(t, err)
	assert.Equal(t, NotFound, idx)
}

func TestBinarySearch_Duplicates(t *testing.T) {
	t.Parallel()

	values := []int{1, 2, 2, 2, 2, 3}

	idx, err := BinarySearch(values, 2)
	require.NoError(t, err)
	require.GreaterOrEqual(t, idx, 1)
	require.LessOrEqual(t, idx, 4)
	assert.Equal(t, 2, values[idx])
}

func TestBinarySearch_NamedSliceType(t *testing.T) {
	t.Parallel()

	type years []int

	idx, err := BinarySearch(years{1813, 1851, 1922, 1965}, 1922)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestBinarySearch_RandomSequences(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec

	for range 200 {
		values := make([]int, rng.IntN(64))
		for i := range values {
			values[i] = rng.IntN(100)
		}

		slices.Sort(values)

		for target := -1; target <= 100; target++ {
			idx, err := BinarySearch(values, target)
			require.NoError(t, err)

			if slices.Contains(values, target) {
				require.GreaterOrEqual(t, idx, 0)
				require.Equal(t, target, values[idx])
			} else {
				require.Negative(t, idx)
			}
		}
	}
}

func TestBinarySearchFunc(t *testing.T) {
	t.Parallel()

	t.Run("custom ordering", func(t *testing.T) {
		t.Parallel()

		byRowThenSlot := func(a, b shelf) int {
			if c := cmp.Compare(a.row, b.row); c != 0 {
				return c
			}

			return cmp.Compare(a.slot, b.slot)
		}

		shelves := []shelf{{1, 1}, {1, 4}, {2, 0}, {3, 2}, {3, 7}}

		idx, err := BinarySearchFunc(shelves, shelf{3, 2}, byRowThenSlot)
		require.NoError(t, err)
		assert.Equal(t, 3, idx)

		idx, err = BinarySearchFunc(shelves, shelf{2, 1}, byRowThenSlot)
		require.NoError(t, err)
		assert.Equal(t, NotFound, idx)
	})

	t.Run("descending ordering", func(t *testing.T) {
		t.Parallel()

		values := []int{11, 9, 7, 5, 3, 1}

		idx, err := BinarySearchFunc(values, 9, compare.Reverse(cmp.Compare[int]))
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	})

	t.Run("case-insensitive ordering", func(t *testing.T) {
		t.Parallel()

		titles := []string{"anna karenina", "Dune", "EMMA", "ulysses"}

		idx, err := BinarySearchFunc(titles, "emma", compare.FoldString)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
	})

	t.Run("natural string ordering", func(t *testing.T) {
		t.Parallel()

		chapters := []string{"chapter 1", "chapter 2", "chapter 10", "chapter 11"}

		idx, err := BinarySearchFunc(chapters, "chapter 10", compare.NaturalString)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
	})

	t.Run("nil comparator uses natural ordering", func(t *testing.T) {
		t.Parallel()

		idx, err := BinarySearchFunc([]float64{0.5, 1.5, 2.5}, 2.5, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)

		idx, err = BinarySearchFunc([]sortable.FoldString{"a", "B", "c"}, "b", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	})

	t.Run("nil comparator without natural ordering", func(t *testing.T) {
		t.Parallel()

		idx, err := BinarySearchFunc([]shelf{{1, 1}}, shelf{1, 1}, nil)
		require.ErrorIs(t, err, compare.ErrNoNaturalOrdering)
		require.ErrorIs(t, err, commonerrors.ErrInvalidArgument)
		assert.Equal(t, NotFound, idx)
	})

	t.Run("element is passed first", func(t *testing.T) {
		t.Parallel()

		values := []int{10, 20, 30}

		var firsts []int

		_, err := BinarySearchFunc(values, 30, func(a, b int) int {
			firsts = append(firsts, a)
			require.Equal(t, 30, b)

			return cmp.Compare(a, b)
		})
		require.NoError(t, err)
		assert.Equal(t, []int{20, 30}, firsts)
	})

	t.Run("comparator panics propagate", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, "incomparable", func() {
			_, _ = BinarySearchFunc([]int{1, 2, 3}, 2, func(int, int) int {
				panic("incomparable")
			})
		})
	})
}

func TestBinarySearchSortable(t *testing.T) {
	t.Parallel()

	ints := []sortable.Int{-4, 0, 8, 15, 16, 23, 42}

	idx, err := BinarySearchSortable(ints, 23)
	require.NoError(t, err)
	assert.Equal(t, 5, idx)

	idx, err = BinarySearchSortable(ints, 7)
	require.NoError(t, err)
	assert.Equal(t, NotFound, idx)

	idx, err = BinarySearchSortable([]sortable.Byte{}, 'a')
	require.NoError(t, err)
	assert.Equal(t, NotFound, idx)
}

func TestBinarySearch_ReadOnly(t *testing.T) {
	t.Parallel()

	values := []int{1, 3, 5, 7, 9, 11}
	snapshot := slices.Clone(values)

	_, err := BinarySearch(values, 5)
	require.NoError(t, err)
	assert.Equal(t, snapshot, values)
}
