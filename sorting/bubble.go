package sorting

import "cmp"

// BubbleSort sorts s in non-decreasing order using bubble sort.
//
// Algorithm:
//  1. Walk adjacent pairs (j, j+1) over the unsorted prefix and swap them
//     whenever s[j+1] < s[j].
//  2. After pass i the largest i+1 elements sit in their final slots, so the
//     next pass stops one element earlier.
//  3. A pass that performs no swap proves the slice is sorted; stop.
//
// Complexity: O(n²) worst/average, O(n) on sorted input, O(1) extra space.
// Stable.
func BubbleSort[T cmp.Ordered](s []T) {
	BubbleSortFunc(s, orderedLess[T])
}

// BubbleSortFunc is BubbleSort ordered by less.
func BubbleSortFunc[T any](s []T, less LessFunc[T]) {
	n := len(s)
	if n < 2 {
		return
	}
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			// strict comparison keeps equal neighbors in place (stability)
			if less(s[j+1], s[j]) {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
