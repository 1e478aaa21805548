package sorting_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsort/seqgen"
	"github.com/katalvlaran/lvsort/sorting"
)

// benchmarkSort runs algo over a fresh copy of input on every iteration.
// The copy is excluded from the timing.
func benchmarkSort(b *testing.B, algo sorting.Algorithm, input []int) {
	buf := make([]int, len(input))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(buf, input)
		b.StartTimer()
		if err := sorting.Sort(buf, algo); err != nil {
			b.Fatalf("sort failed: %v", err)
		}
	}
}

// BenchmarkSort_Random1K compares all algorithms on 1 000 random ints.
func BenchmarkSort_Random1K(b *testing.B) {
	input := seqgen.Random(1000, seqgen.WithSeed(1))
	for _, algo := range sorting.Algorithms() {
		b.Run(algo.String(), func(b *testing.B) { benchmarkSort(b, algo, input) })
	}
}

// BenchmarkSort_NearlySorted1K shows the adaptive algorithms pulling ahead.
func BenchmarkSort_NearlySorted1K(b *testing.B) {
	input := seqgen.NearlySorted(1000, seqgen.WithSeed(1))
	for _, algo := range sorting.Algorithms() {
		b.Run(algo.String(), func(b *testing.B) { benchmarkSort(b, algo, input) })
	}
}

// BenchmarkSort_NLogN compares the O(n log n) algorithms on larger inputs.
func BenchmarkSort_NLogN(b *testing.B) {
	for _, n := range []int{10_000, 100_000} {
		input := seqgen.Random(n, seqgen.WithSeed(int64(n)))
		for _, algo := range []sorting.Algorithm{sorting.Merge, sorting.Quick, sorting.Heap} {
			b.Run(fmt.Sprintf("%s/n=%d", algo, n), func(b *testing.B) { benchmarkSort(b, algo, input) })
		}
	}
}
