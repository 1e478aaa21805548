package sorting

import (
	"cmp"
	"fmt"
)

// Sort sorts s with the chosen algorithm.
// It returns ErrUnknownAlgorithm if algo is not valid; s is untouched then.
func Sort[T cmp.Ordered](s []T, algo Algorithm) error {
	return SortFunc(s, algo, orderedLess[T])
}

// SortFunc sorts s with the chosen algorithm, ordered by less.
//
// Errors:
//   - ErrNilLess          if less is nil.
//   - ErrUnknownAlgorithm if algo is not valid.
func SortFunc[T any](s []T, algo Algorithm, less LessFunc[T]) error {
	if less == nil {
		return ErrNilLess
	}
	fn, err := funcFor[T](algo)
	if err != nil {
		return err
	}
	fn(s, less)
	return nil
}

// SortRange sorts only the inclusive window s[lo..hi] with the chosen
// algorithm; elements outside the window are not read or written.
//
// A window with lo == hi+1 is empty and is a no-op, which lets callers pass
// (0, len(s)-1) for an empty slice.
//
// Errors:
//   - ErrBadRange         if lo < 0, hi >= len(s) or lo > hi+1.
//   - ErrUnknownAlgorithm if algo is not valid.
func SortRange[T cmp.Ordered](s []T, lo, hi int, algo Algorithm) error {
	if lo < 0 || hi >= len(s) || lo > hi+1 {
		return fmt.Errorf("%w: [%d, %d] over length %d", ErrBadRange, lo, hi, len(s))
	}
	return Sort(s[lo:hi+1], algo)
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T cmp.Ordered](s []T) bool {
	return IsSortedFunc(s, orderedLess[T])
}

// IsSortedFunc reports whether s is in non-decreasing order under less.
func IsSortedFunc[T any](s []T, less LessFunc[T]) bool {
	for i := len(s) - 1; i > 0; i-- {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

// funcFor resolves algo to its Func implementation.
func funcFor[T any](algo Algorithm) (func([]T, LessFunc[T]), error) {
	switch algo {
	case Bubble:
		return BubbleSortFunc[T], nil
	case Selection:
		return SelectionSortFunc[T], nil
	case Insertion:
		return InsertionSortFunc[T], nil
	case Merge:
		return MergeSortFunc[T], nil
	case Quick:
		return QuickSortFunc[T], nil
	case Heap:
		return HeapSortFunc[T], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}
