package search

// Linear returns the first index i with s[i] == target, or NotFound.
// Works on unsorted input. O(n) time, O(1) space.
func Linear[T comparable](s []T, target T) int {
	for i := range s {
		if s[i] == target {
			return i
		}
	}
	return NotFound
}

// LinearFunc returns the first index whose element satisfies match,
// or NotFound.
func LinearFunc[T any](s []T, match func(T) bool) int {
	for i := range s {
		if match(s[i]) {
			return i
		}
	}
	return NotFound
}
