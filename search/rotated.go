package search

import "cmp"

// Rotated returns the index of target in s, an ascending slice that was
// rotated at an unknown pivot (e.g. [4 5 6 7 0 1 2]), or NotFound.
//
// At every step at least one of [low, mid] and [mid, high] is in ascending
// order; s[low] ≤ s[mid] tells which. If target lies inside that half's value
// range the window moves there, otherwise to the other half.
//
// Precondition: s has no duplicate values. With duplicates (e.g.
// [1 1 1 0 1]) the sorted half cannot be identified and the result is
// unspecified: either NotFound or an index holding target.
// Complexity: O(log n) time, O(1) space.
func Rotated[T cmp.Ordered](s []T, target T) int {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		if cmp.Compare(s[mid], target) == 0 {
			return mid
		}
		if cmp.Compare(s[low], s[mid]) <= 0 {
			// left half ascending
			if cmp.Compare(s[low], target) <= 0 && cmp.Less(target, s[mid]) {
				high = mid - 1
			} else {
				low = mid + 1
			}
		} else {
			// right half ascending
			if cmp.Less(s[mid], target) && cmp.Compare(target, s[high]) <= 0 {
				low = mid + 1
			} else {
				high = mid - 1
			}
		}
	}
	return NotFound
}
