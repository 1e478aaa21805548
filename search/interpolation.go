package search

// Interpolation returns an index of target in the ascending slice s, or
// NotFound.
//
// Instead of halving, each step probes where the target would sit if values
// were evenly spaced between s[low] and s[high]:
//
//	pos = low + ((target - s[low]) * (high - low)) / (s[high] - s[low])
//
// and then narrows exactly like binary search. The loop runs only while
// s[low] ≤ target ≤ s[high]. A single-element window is compared directly,
// and a window whose ends are equal is resolved without dividing, so the
// probe never divides by zero.
//
// The probe is evaluated in float64 and clamped to [low, high], which rules
// out integer overflow for every element width. Every comparison against the
// target is made in T, so float64 rounding of 64-bit values can only slow
// the probe down, never produce a wrong index. NaN targets are NotFound.
//
// Precondition: s is sorted ascending. Not checked.
// Complexity: O(log log n) expected on near-uniform data, O(n) worst, O(1) space.
func Interpolation[T Number](s []T, target T) int {
	low, high := 0, len(s)-1
	for low <= high && target >= s[low] && target <= s[high] {
		if low == high {
			if s[low] == target {
				return low
			}
			return NotFound
		}
		if s[low] == s[high] {
			// s[low] ≤ target ≤ s[high] with equal ends: target == s[low]
			return low
		}
		lo, hi := float64(s[low]), float64(s[high])
		pos := low + int((float64(target)-lo)*float64(high-low)/(hi-lo))
		pos = max(low, min(pos, high))

		switch {
		case s[pos] == target:
			return pos
		case s[pos] < target:
			low = pos + 1
		default:
			high = pos - 1
		}
	}
	return NotFound
}
