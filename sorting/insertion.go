package sorting

import "cmp"

// InsertionSort sorts s in non-decreasing order using insertion sort.
//
// For each i in [1, n-1] the key s[i] is lifted out, every larger element of
// the sorted prefix s[:i] is shifted one slot right, and the key drops into
// the gap.
//
// Complexity: O(n²) worst/average, O(n) on nearly sorted input, O(1) space.
// Stable.
func InsertionSort[T cmp.Ordered](s []T) {
	InsertionSortFunc(s, orderedLess[T])
}

// InsertionSortFunc is InsertionSort ordered by less.
func InsertionSortFunc[T any](s []T, less LessFunc[T]) {
	n := len(s)
	if n < 2 {
		return
	}
	for i := 1; i < n; i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && less(key, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}
