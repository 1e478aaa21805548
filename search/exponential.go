package search

import (
	"cmp"
	"math"
)

// Exponential returns an index of target in the ascending slice s, or
// NotFound.
//
// Algorithm:
//  1. Empty s ⇒ NotFound. s[0] == target ⇒ 0.
//  2. Double bound from 1 while bound < n and s[bound] ≤ target.
//  3. Binary search the window [bound/2, min(bound, n)-1] and translate the
//     local index back to s.
//
// The cost depends on the target's position i rather than on n, which suits
// very long inputs whose useful prefix is short.
//
// Precondition: s is sorted ascending. Not checked.
// Complexity: O(log i) time, O(1) space.
func Exponential[T cmp.Ordered](s []T, target T) int {
	n := len(s)
	if n == 0 {
		return NotFound
	}
	if cmp.Compare(s[0], target) == 0 {
		return 0
	}
	lo, bound := 0, 1
	for bound < n && cmp.Compare(s[bound], target) <= 0 {
		lo = bound
		if bound > math.MaxInt/2 {
			bound = n
			break
		}
		bound *= 2
	}
	hi := min(bound, n) - 1
	if i := BinaryIterative(s[lo:hi+1], target); i != NotFound {
		return lo + i
	}
	return NotFound
}
