// Package search_test verifies every search against the concrete scenarios
// and the found / not-found properties on generated inputs.
package search_test

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/lvsort/search"
	"github.com/katalvlaran/lvsort/seqgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sortedFns lists the searches that accept plain ascending input.
var sortedFns = map[string]func([]int, int) int{
	"binary-iterative": search.BinaryIterative[int],
	"binary-recursive": search.BinaryRecursive[int],
	"interpolation":    search.Interpolation[int],
	"exponential":      search.Exponential[int],
	"linear":           search.Linear[int],
}

// TestConcreteScenarios pins the reference inputs and answers.
func TestConcreteScenarios(t *testing.T) {
	sorted := []int{11, 12, 22, 25, 34, 50, 64, 76, 88, 90}
	assert.Equal(t, 3, search.BinaryIterative(sorted, 25))
	assert.Equal(t, 3, search.BinaryRecursive(sorted, 25))

	uniform := seqgen.Arithmetic(10, 10, 10)
	assert.Equal(t, 6, search.Interpolation(uniform, 70))

	exp := []int{2, 3, 4, 10, 40, 50, 80, 100, 120, 150, 200, 300}
	assert.Equal(t, 7, search.Exponential(exp, 100))

	rot := []int{4, 5, 6, 7, 0, 1, 2}
	assert.Equal(t, 4, search.Rotated(rot, 0))
	assert.Equal(t, search.NotFound, search.Rotated(rot, 3))
}

// TestEmptyAndSingle covers degenerate inputs for every algorithm.
func TestEmptyAndSingle(t *testing.T) {
	for _, algo := range search.Algorithms() {
		got, err := search.Search([]int{}, 5, algo)
		require.NoError(t, err)
		assert.Equal(t, search.NotFound, got, "%s on empty", algo)

		got, err = search.Search(nil, 5, algo)
		require.NoError(t, err)
		assert.Equal(t, search.NotFound, got, "%s on nil", algo)

		got, err = search.Search([]int{5}, 5, algo)
		require.NoError(t, err)
		assert.Equal(t, 0, got, "%s single hit", algo)

		got, err = search.Search([]int{5}, 4, algo)
		require.NoError(t, err)
		assert.Equal(t, search.NotFound, got, "%s single miss", algo)
	}
}

// TestSorted_FindEveryElement checks that each present value is found at an
// index holding that value, and that gaps and out-of-range values are not.
func TestSorted_FindEveryElement(t *testing.T) {
	for _, n := range []int{2, 3, 10, 64, 257, 1000} {
		// odd values only, so every even value in range is absent
		s := seqgen.Arithmetic(1, 2, n)
		for name, fn := range sortedFns {
			t.Run(fmt.Sprintf("%s/n=%d", name, n), func(t *testing.T) {
				for i, v := range s {
					j := fn(s, v)
					require.Equal(t, i, j, "value %d", v)
					require.Equal(t, search.NotFound, fn(s, v+1), "gap %d", v+1)
				}
				assert.Equal(t, search.NotFound, fn(s, -100))
				assert.Equal(t, search.NotFound, fn(s, s[n-1]+100))
			})
		}
	}
}

// TestSorted_Duplicates allows any matching index when keys repeat.
func TestSorted_Duplicates(t *testing.T) {
	s := seqgen.FewUnique(300, seqgen.WithSeed(5), seqgen.WithUniqueValues(6))
	slices.Sort(s)
	for name, fn := range sortedFns {
		for _, v := range s {
			j := fn(s, v)
			require.NotEqual(t, search.NotFound, j, "%s lost %d", name, v)
			assert.Equal(t, v, s[j], name)
		}
		assert.Equal(t, search.NotFound, fn(s, 6), name)
		assert.Equal(t, search.NotFound, fn(s, -1), name)
	}
}

// TestSorted_RandomDistinct exercises irregular spacing, the interesting
// case for interpolation probes.
func TestSorted_RandomDistinct(t *testing.T) {
	s := seqgen.Distinct(2000, 50, seqgen.WithSeed(17))
	present := make(map[int]bool, len(s))
	for _, v := range s {
		present[v] = true
	}
	for name, fn := range sortedFns {
		for probe := 0; probe <= s[len(s)-1]+1; probe += 7 {
			j := fn(s, probe)
			if present[probe] {
				require.NotEqual(t, search.NotFound, j, "%s missed %d", name, probe)
				require.Equal(t, probe, s[j], name)
			} else {
				require.Equal(t, search.NotFound, j, "%s invented %d", name, probe)
			}
		}
	}
}

// TestBinary_IterativeMatchesRecursive compares both forms on identical inputs.
func TestBinary_IterativeMatchesRecursive(t *testing.T) {
	s := seqgen.FewUnique(500, seqgen.WithSeed(23), seqgen.WithUniqueValues(40))
	slices.Sort(s)
	for target := -2; target < 45; target++ {
		assert.Equal(t,
			search.BinaryIterative(s, target),
			search.BinaryRecursive(s, target),
			"target %d", target)
	}
}

// TestLinear_Unsorted finds the first occurrence in unsorted data.
func TestLinear_Unsorted(t *testing.T) {
	s := []int{9, 3, 7, 3, 1}
	assert.Equal(t, 1, search.Linear(s, 3))
	assert.Equal(t, 4, search.Linear(s, 1))
	assert.Equal(t, search.NotFound, search.Linear(s, 8))
	assert.Equal(t, 2, search.LinearFunc(s, func(v int) bool { return v > 5 && v < 9 }))

	words := []string{"go", "rust", "zig"}
	assert.Equal(t, 2, search.Linear(words, "zig"))
}

// TestSearch_DoesNotMutate confirms every search leaves its input untouched.
func TestSearch_DoesNotMutate(t *testing.T) {
	s := seqgen.Arithmetic(0, 3, 100)
	snapshot := slices.Clone(s)
	for _, algo := range search.Algorithms() {
		for _, target := range []int{-1, 0, 33, 34, 297, 400} {
			_, err := search.Search(s, target, algo)
			require.NoError(t, err)
		}
	}
	assert.Equal(t, snapshot, s)
}

// TestInterpolation_EdgeCases covers equal ends, extreme values and floats.
func TestInterpolation_EdgeCases(t *testing.T) {
	// equal ends: division guarded
	assert.Equal(t, 0, search.Interpolation([]int{4, 4, 4, 4}, 4))
	assert.Equal(t, search.NotFound, search.Interpolation([]int{4, 4, 4, 4}, 5))

	// extreme int64 span must not overflow
	big := []int64{math.MinInt64, -1, 0, 1, math.MaxInt64}
	for i, v := range big {
		assert.Equal(t, i, search.Interpolation(big, v), "value %d", v)
	}
	assert.Equal(t, search.NotFound, search.Interpolation(big, 2))

	// skewed distribution
	skew := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1_000_000}
	assert.Equal(t, 8, search.Interpolation(skew, 9))
	assert.Equal(t, 9, search.Interpolation(skew, 1_000_000))

	floats := []float64{0.5, 1.25, 2.0, 8.75}
	assert.Equal(t, 1, search.Interpolation(floats, 1.25))
	assert.Equal(t, search.NotFound, search.Interpolation(floats, math.NaN()))

	unsigned := []uint8{0, 10, 20, 255}
	assert.Equal(t, 3, search.Interpolation(unsigned, 255))
}

// TestInterpolation_BeyondFloatPrecision covers 64-bit values whose
// neighbors round to the same float64.
func TestInterpolation_BeyondFloatPrecision(t *testing.T) {
	signed := []int64{1 << 62, 1<<62 + 1}
	assert.Equal(t, 0, search.Interpolation(signed, 1<<62))
	assert.Equal(t, 1, search.Interpolation(signed, 1<<62+1))
	assert.Equal(t, search.NotFound, search.Interpolation(signed, 1<<62+2))

	unsigned := []uint64{1 << 63, 1<<63 + 1, 1<<63 + 2}
	for i, v := range unsigned {
		assert.Equal(t, i, search.Interpolation(unsigned, v), "value %d", v)
	}

	// agreement with binary search on a dense run above 2^53
	dense := make([]int64, 64)
	for i := range dense {
		dense[i] = 1<<60 + int64(i)
	}
	for _, v := range dense {
		assert.Equal(t, search.BinaryIterative(dense, v), search.Interpolation(dense, v), "value %d", v)
	}
}

// TestExponential_Bounds covers hits at both ends and beyond the last bound.
func TestExponential_Bounds(t *testing.T) {
	s := seqgen.Arithmetic(0, 5, 33)
	assert.Equal(t, 0, search.Exponential(s, 0))
	assert.Equal(t, 32, search.Exponential(s, 160))
	assert.Equal(t, 16, search.Exponential(s, 80))
	assert.Equal(t, search.NotFound, search.Exponential(s, 161))
	assert.Equal(t, search.NotFound, search.Exponential(s, -5))
	assert.Equal(t, search.NotFound, search.Exponential([]int{}, 1))
}

// TestRotated_AllPivots rotates a distinct ascending slice at every offset
// and looks up every value plus a few absent ones.
func TestRotated_AllPivots(t *testing.T) {
	base := seqgen.Arithmetic(0, 2, 17)
	for k := 0; k < len(base); k++ {
		rot := seqgen.Rotate(base, k)
		for i, v := range rot {
			require.Equal(t, i, search.Rotated(rot, v), "k=%d value=%d", k, v)
		}
		for _, miss := range []int{-1, 1, 15, 33, 100} {
			assert.Equal(t, search.NotFound, search.Rotated(rot, miss), "k=%d miss=%d", k, miss)
		}
	}
}

// TestRotated_DuplicatesOutOfContract only checks that any reported index
// really holds the target.
func TestRotated_DuplicatesOutOfContract(t *testing.T) {
	s := []int{1, 1, 1, 0, 1}
	for _, target := range []int{0, 1, 2} {
		j := search.Rotated(s, target)
		if j != search.NotFound {
			assert.Equal(t, target, s[j])
		}
	}
}

// TestSearch_UnknownAlgorithm covers the dispatch sentinel.
func TestSearch_UnknownAlgorithm(t *testing.T) {
	got, err := search.Search([]int{1}, 1, search.Algorithm(77))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Equal(t, search.NotFound, got)
}

// TestParseAlgorithm accepts canonical names and aliases.
func TestParseAlgorithm(t *testing.T) {
	for _, algo := range search.Algorithms() {
		got, err := search.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, got)
		assert.NotEmpty(t, algo.Complexity())
	}
	cases := map[string]search.Algorithm{
		"binary":               search.AlgoBinaryIterative,
		"Binary_Recursive":     search.AlgoBinaryRecursive,
		"interpolation-search": search.AlgoInterpolation,
		"rotated-sorted":       search.AlgoRotated,
		"  EXPONENTIAL ":       search.AlgoExponential,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseAlgorithm("ternary")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	assert.False(t, search.AlgoLinear.RequiresSorted())
	assert.True(t, search.AlgoExponential.RequiresSorted())
	assert.Equal(t, "Algorithm(9)", search.Algorithm(9).String())
}
