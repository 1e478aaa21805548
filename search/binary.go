package search

import "cmp"

// BinaryIterative returns an index of target in the ascending slice s, or
// NotFound. With duplicates, any matching index may be returned.
//
// The window [low, high] starts as the whole slice. Each step compares
// s[mid], mid = low + (high-low)/2, and keeps the half that can still hold
// the target. The loop ends on a match or when low > high.
//
// Precondition: s is sorted ascending (cmp.Compare order). Not checked.
// Complexity: O(log n) time, O(1) space.
func BinaryIterative[T cmp.Ordered](s []T, target T) int {
	return BinaryFunc(s, target, cmp.Compare[T])
}

// BinaryFunc is BinaryIterative ordered by compare, which returns a negative
// number, zero or a positive number as a < b, a == b or a > b.
func BinaryFunc[T any](s []T, target T, compare func(a, b T) int) int {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		switch c := compare(s[mid], target); {
		case c == 0:
			return mid
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return NotFound
}

// BinaryRecursive is the recursive form of BinaryIterative. Both return the
// same index for the same input.
//
// Complexity: O(log n) time, O(log n) stack.
func BinaryRecursive[T cmp.Ordered](s []T, target T) int {
	return binaryRecursive(s, target, 0, len(s)-1)
}

func binaryRecursive[T cmp.Ordered](s []T, target T, low, high int) int {
	if low > high {
		return NotFound
	}
	mid := low + (high-low)/2
	switch c := cmp.Compare(s[mid], target); {
	case c == 0:
		return mid
	case c < 0:
		return binaryRecursive(s, target, mid+1, high)
	default:
		return binaryRecursive(s, target, low, mid-1)
	}
}
