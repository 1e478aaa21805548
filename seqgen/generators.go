package seqgen

// Random returns n values drawn uniformly from [0, max).
func Random(n int, opts ...Option) []int {
	c := newConfig(opts)
	out := make([]int, clampLen(n))
	for i := range out {
		out[i] = c.rng.Intn(c.maxValue)
	}
	return out
}

// Sorted returns 0, 1, ..., n-1.
func Sorted(n int) []int {
	return Arithmetic(0, 1, n)
}

// Reversed returns n-1, ..., 1, 0.
func Reversed(n int) []int {
	return Arithmetic(clampLen(n)-1, -1, n)
}

// Arithmetic returns start, start+step, ..., start+(n-1)*step.
// Arithmetic(10, 10, 10) is the uniform sequence 10, 20, ..., 100.
func Arithmetic(start, step, n int) []int {
	out := make([]int, clampLen(n))
	for i := range out {
		out[i] = start + i*step
	}
	return out
}

// NearlySorted returns Sorted(n) with swapPercent% of positions exchanged
// with a random partner (at least one swap when n ≥ 2).
func NearlySorted(n int, opts ...Option) []int {
	c := newConfig(opts)
	out := Sorted(n)
	if len(out) < 2 || c.swapPercent == 0 {
		return out
	}
	swaps := len(out) * c.swapPercent / 100
	if swaps == 0 {
		swaps = 1
	}
	for k := 0; k < swaps; k++ {
		i, j := c.rng.Intn(len(out)), c.rng.Intn(len(out))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// FewUnique returns n values drawn from {0, 1, ..., k-1} where k is set by
// WithUniqueValues. Every value appears at least once when n ≥ k.
func FewUnique(n int, opts ...Option) []int {
	c := newConfig(opts)
	out := make([]int, clampLen(n))
	for i := range out {
		if i < c.uniqueValues {
			out[i] = i
			continue
		}
		out[i] = c.rng.Intn(c.uniqueValues)
	}
	shuffle(out, c.rng)
	return out
}

// AllEqual returns n copies of the same value.
func AllEqual(n int) []int {
	return Arithmetic(7, 0, n)
}

// Rotate returns a new slice holding s cyclically shifted left by k:
// Rotate([0 1 2 3 4], 2) == [2 3 4 0 1]. k may be negative or exceed len(s).
// s is not modified.
func Rotate[T any](s []T, k int) []T {
	n := len(s)
	out := make([]T, n)
	if n == 0 {
		return out
	}
	k %= n
	if k < 0 {
		k += n
	}
	copy(out, s[k:])
	copy(out[n-k:], s[:k])
	return out
}

// Distinct returns n strictly increasing values with random positive gaps
// of at most maxGap. Useful as sorted search input without duplicates.
func Distinct(n, maxGap int, opts ...Option) []int {
	c := newConfig(opts)
	if maxGap < 1 {
		maxGap = 1
	}
	out := make([]int, clampLen(n))
	v := 0
	for i := range out {
		v += 1 + c.rng.Intn(maxGap)
		out[i] = v
	}
	return out
}

func clampLen(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
