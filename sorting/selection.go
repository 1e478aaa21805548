package sorting

import "cmp"

// SelectionSort sorts s in non-decreasing order using selection sort.
//
// For each position i in [0, n-2] the minimum of s[i:] is located and swapped
// into s[i]. The long-distance swap is what breaks stability.
//
// Complexity: O(n²) comparisons in every case, at most n-1 swaps, O(1) space.
// Not stable.
func SelectionSort[T cmp.Ordered](s []T) {
	SelectionSortFunc(s, orderedLess[T])
}

// SelectionSortFunc is SelectionSort ordered by less.
func SelectionSortFunc[T any](s []T, less LessFunc[T]) {
	n := len(s)
	if n < 2 {
		return
	}
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if less(s[j], s[minIdx]) {
				minIdx = j
			}
		}
		if minIdx != i {
			s[i], s[minIdx] = s[minIdx], s[i]
		}
	}
}
