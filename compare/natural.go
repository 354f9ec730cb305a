package compare

import (
	"cmp"
	"fmt"

	commonerrors "github.com/amp-labs/sortkit/errors"
)

// ErrNoNaturalOrdering is returned by Natural when T neither orders itself
// nor is a built-in ordered type.
var ErrNoNaturalOrdering = fmt.Errorf("%w: type has no natural ordering", commonerrors.ErrInvalidArgument)

// lessEquals mirrors sortable.Sortable without importing it.
type lessEquals[T any] interface {
	Equals(other T) bool
	LessThan(other T) bool
}

// Natural resolves the default ordering of T. In order of preference:
//
//   - T implements Ordered[T]: its CompareTo method is used.
//   - T implements Equals and LessThan (see sortable.Sortable).
//   - T is one of the built-in integer, float or string types.
//
// Named types over built-in kinds (type Celsius float64) have no natural
// ordering unless they implement one of the interfaces above.
func Natural[T any]() (Func[T], error) {
	var zero T

	switch typedValue := any(zero).(type) {
	case Ordered[T]:
		return func(a, b T) int {
			return any(a).(Ordered[T]).CompareTo(b) //nolint:forcetypeassert
		}, nil
	case lessEquals[T]:
		return func(a, b T) int {
			x := any(a).(lessEquals[T]) //nolint:forcetypeassert

			switch {
			case x.LessThan(b):
				return -1
			case x.Equals(b):
				return 0
			default:
				return 1
			}
		}, nil
	case int:
		return builtin[T, int](), nil
	case int8:
		return builtin[T, int8](), nil
	case int16:
		return builtin[T, int16](), nil
	case int32:
		return builtin[T, int32](), nil
	case int64:
		return builtin[T, int64](), nil
	case uint:
		return builtin[T, uint](), nil
	case uint8:
		return builtin[T, uint8](), nil
	case uint16:
		return builtin[T, uint16](), nil
	case uint32:
		return builtin[T, uint32](), nil
	case uint64:
		return builtin[T, uint64](), nil
	case uintptr:
		return builtin[T, uintptr](), nil
	case float32:
		return builtin[T, float32](), nil
	case float64:
		return builtin[T, float64](), nil
	case string:
		return builtin[T, string](), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNoNaturalOrdering, typedValue)
	}
}

func builtin[T any, B cmp.Ordered]() Func[T] {
	return func(a, b T) int {
		return cmp.Compare(any(a).(B), any(b).(B)) //nolint:forcetypeassert
	}
}
