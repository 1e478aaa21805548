package seqgen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownShape is returned by ParseShape for unrecognized names.
var ErrUnknownShape = errors.New("seqgen: unknown shape")

// Shape names an input distribution.
type Shape int

const (
	// RandomShape draws independent values in [0, max).
	RandomShape Shape = iota
	// SortedShape is 0, 1, ..., n-1.
	SortedShape
	// ReversedShape is n-1, ..., 1, 0.
	ReversedShape
	// NearlySortedShape is SortedShape with a few random swaps.
	NearlySortedShape
	// FewUniqueShape draws from a handful of distinct values.
	FewUniqueShape
	// AllEqualShape repeats a single value.
	AllEqualShape
)

var shapeNames = [...]string{
	RandomShape:       "random",
	SortedShape:       "sorted",
	ReversedShape:     "reversed",
	NearlySortedShape: "nearly-sorted",
	FewUniqueShape:    "few-unique",
	AllEqualShape:     "all-equal",
}

// Shapes returns every shape in declaration order.
func Shapes() []Shape {
	return []Shape{RandomShape, SortedShape, ReversedShape, NearlySortedShape, FewUniqueShape, AllEqualShape}
}

// String returns the name accepted by ParseShape.
func (s Shape) String() string {
	if s < RandomShape || s > AllEqualShape {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape maps a case-insensitive name to its Shape; "_" and "-" are
// interchangeable.
func ParseShape(name string) (Shape, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range shapeNames {
		if n == key {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Generate builds a sequence of length n with the given shape.
// n < 0 is treated as 0. Unknown shapes fall back to RandomShape.
func Generate(shape Shape, n int, opts ...Option) []int {
	switch shape {
	case SortedShape:
		return Sorted(n)
	case ReversedShape:
		return Reversed(n)
	case NearlySortedShape:
		return NearlySorted(n, opts...)
	case FewUniqueShape:
		return FewUnique(n, opts...)
	case AllEqualShape:
		return AllEqual(n)
	default:
		return Random(n, opts...)
	}
}
