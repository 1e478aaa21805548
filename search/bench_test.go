package search_test

import (
	"testing"

	"github.com/katalvlaran/lvsort/search"
	"github.com/katalvlaran/lvsort/seqgen"
)

// benchmarkSearch probes n/64 evenly spread targets per iteration.
func benchmarkSearch(b *testing.B, s []int, fn func([]int, int) int) {
	step := len(s) / 64
	if step == 0 {
		step = 1
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < len(s); j += step {
			if fn(s, s[j]) == search.NotFound {
				b.Fatalf("value %d not found", s[j])
			}
		}
	}
}

// BenchmarkSearch_Uniform1M compares searches on evenly spaced data, the best
// case for interpolation.
func BenchmarkSearch_Uniform1M(b *testing.B) {
	s := seqgen.Arithmetic(0, 3, 1_000_000)
	for name, fn := range map[string]func([]int, int) int{
		"binary-iterative": search.BinaryIterative[int],
		"binary-recursive": search.BinaryRecursive[int],
		"interpolation":    search.Interpolation[int],
		"exponential":      search.Exponential[int],
	} {
		b.Run(name, func(b *testing.B) { benchmarkSearch(b, s, fn) })
	}
}

// BenchmarkSearch_Linear10K measures the unsorted baseline.
func BenchmarkSearch_Linear10K(b *testing.B) {
	s := seqgen.Random(10_000, seqgen.WithSeed(3))
	benchmarkSearch(b, s, search.Linear[int])
}

// BenchmarkSearch_Rotated1M measures the rotated variant.
func BenchmarkSearch_Rotated1M(b *testing.B) {
	s := seqgen.Rotate(seqgen.Arithmetic(0, 2, 1_000_000), 333_333)
	benchmarkSearch(b, s, search.Rotated[int])
}
