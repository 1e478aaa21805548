package sorting_test

import (
	"testing"

	"github.com/katalvlaran/lvsort/seqgen"
	"github.com/katalvlaran/lvsort/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record pairs a sort key with its original position.
type record struct {
	Key int
	Pos int
}

func byKey(a, b record) bool { return a.Key < b.Key }

func makeRecords(n int) []record {
	keys := seqgen.FewUnique(n, seqgen.WithSeed(11), seqgen.WithUniqueValues(4))
	out := make([]record, n)
	for i, k := range keys {
		out[i] = record{Key: k, Pos: i}
	}
	return out
}

// TestSort_Stability checks that stable algorithms keep equal keys in input
// order. Unstable algorithms only have to sort by key; any tie order is allowed.
func TestSort_Stability(t *testing.T) {
	for _, algo := range sorting.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			recs := makeRecords(300)
			require.NoError(t, sorting.SortFunc(recs, algo, byKey))
			require.True(t, sorting.IsSortedFunc(recs, byKey))

			if !algo.Stable() {
				return
			}
			for i := 1; i < len(recs); i++ {
				if recs[i-1].Key == recs[i].Key {
					assert.Less(t, recs[i-1].Pos, recs[i].Pos,
						"equal keys reordered at %d", i)
				}
			}
		})
	}
}

// TestSort_StableFlags pins the documented stability table.
func TestSort_StableFlags(t *testing.T) {
	want := map[sorting.Algorithm]bool{
		sorting.Bubble:    true,
		sorting.Selection: false,
		sorting.Insertion: true,
		sorting.Merge:     true,
		sorting.Quick:     false,
		sorting.Heap:      false,
	}
	for algo, stable := range want {
		assert.Equal(t, stable, algo.Stable(), algo.String())
	}
}

// TestSelectionSort_CanReorderTies shows that selection sort is allowed to
// reorder equal keys: [2a, 2b, 1] becomes [1, 2b, 2a].
func TestSelectionSort_CanReorderTies(t *testing.T) {
	recs := []record{{2, 0}, {2, 1}, {1, 2}}
	sorting.SelectionSortFunc(recs, byKey)
	assert.Equal(t, []record{{1, 2}, {2, 1}, {2, 0}}, recs)
}
