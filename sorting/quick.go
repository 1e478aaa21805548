package sorting

import "cmp"

// QuickSort sorts s in non-decreasing order using quick sort with the Lomuto
// partition scheme.
//
// Algorithm:
//  1. Take the last element of [low, high] as the pivot.
//  2. Scan left to right, swapping every element ≤ pivot into the growing
//     left region; finally swap the pivot just past that region.
//  3. Sort [low, p-1] and [p+1, high].
//
// The smaller side is handled by recursion and the larger side by looping, so
// the stack stays O(log n) deep even when the partition degenerates (sorted or
// all-equal input).
//
// Complexity: O(n log n) average, O(n²) worst, O(log n) stack. Not stable.
func QuickSort[T cmp.Ordered](s []T) {
	QuickSortFunc(s, orderedLess[T])
}

// QuickSortFunc is QuickSort ordered by less.
func QuickSortFunc[T any](s []T, less LessFunc[T]) {
	if len(s) < 2 {
		return
	}
	quickSortRange(s, 0, len(s)-1, less)
}

// quickSortRange sorts the inclusive window s[low..high].
func quickSortRange[T any](s []T, low, high int, less LessFunc[T]) {
	for low < high {
		p := lomutoPartition(s, low, high, less)
		if p-low < high-p {
			quickSortRange(s, low, p-1, less)
			low = p + 1
		} else {
			quickSortRange(s, p+1, high, less)
			high = p - 1
		}
	}
}

// lomutoPartition partitions s[low..high] around s[high] and returns the
// pivot's final index. After return s[low..p-1] ≤ s[p] < s[p+1..high].
func lomutoPartition[T any](s []T, low, high int, less LessFunc[T]) int {
	pivot := s[high]
	i := low
	for j := low; j < high; j++ {
		// s[j] ≤ pivot
		if !less(pivot, s[j]) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[high] = s[high], s[i]
	return i
}
