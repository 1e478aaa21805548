package sorting

import "cmp"

// MergeSort sorts s in non-decreasing order using top-down merge sort.
//
// Algorithm:
//  1. Split [left, right] at mid = left + (right-left)/2.
//  2. Recursively sort [left, mid] and [mid+1, right].
//  3. Merge the halves with two pointers. On ties the left element is taken
//     first, which is what makes the sort stable.
//
// Only the left half is copied out before a merge: the write cursor can never
// overtake the right-half read cursor, so the right half is merged in place.
// One scratch buffer of len(s)/2+1 elements is allocated per call and reused
// by every merge.
//
// Complexity: O(n log n) in every case, O(n) extra space, O(log n) recursion.
// Stable.
func MergeSort[T cmp.Ordered](s []T) {
	MergeSortFunc(s, orderedLess[T])
}

// MergeSortFunc is MergeSort ordered by less.
func MergeSortFunc[T any](s []T, less LessFunc[T]) {
	n := len(s)
	if n < 2 {
		return
	}
	scratch := make([]T, n/2+1)
	mergeSortRange(s, 0, n-1, scratch, less)
}

// mergeSortRange sorts the inclusive window s[left..right].
func mergeSortRange[T any](s []T, left, right int, scratch []T, less LessFunc[T]) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSortRange(s, left, mid, scratch, less)
	mergeSortRange(s, mid+1, right, scratch, less)
	merge(s, left, mid, right, scratch, less)
}

// merge combines the sorted runs s[left..mid] and s[mid+1..right].
func merge[T any](s []T, left, mid, right int, scratch []T, less LessFunc[T]) {
	// already ordered across the seam: nothing to do
	if !less(s[mid+1], s[mid]) {
		return
	}
	nl := mid - left + 1
	lbuf := scratch[:nl]
	copy(lbuf, s[left:mid+1])

	i, j, k := 0, mid+1, left
	for i < nl && j <= right {
		if less(s[j], lbuf[i]) {
			s[k] = s[j]
			j++
		} else {
			s[k] = lbuf[i]
			i++
		}
		k++
	}
	// leftovers of the right run are already in place
	for i < nl {
		s[k] = lbuf[i]
		i++
		k++
	}
}
