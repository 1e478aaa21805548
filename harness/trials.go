package harness

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/katalvlaran/lvsort/search"
	"github.com/katalvlaran/lvsort/seqgen"
	"github.com/katalvlaran/lvsort/sorting"
)

// searchGapMax bounds the spacing between consecutive values of generated
// search inputs, leaving absent values between present ones.
const searchGapMax = 8

// trial is one unit of work handed to the pool.
type trial struct {
	key string
	run func(rng *rand.Rand, plan Plan) (Result, error)
}

// expand turns a plan into trials in a stable order. The order feeds the
// per-trial RNG derivation, so it must not depend on map iteration.
func expand(plan Plan) []trial {
	out := make([]trial, 0, plan.TrialCount())
	for _, algo := range plan.SortAlgorithms {
		for _, shape := range plan.Shapes {
			for _, n := range plan.Sizes {
				key := SortKey(algo, shape, n)
				out = append(out, trial{
					key: key,
					run: func(rng *rand.Rand, plan Plan) (Result, error) {
						return runSort(key, algo, shape, n, rng, plan.Repeats)
					},
				})
			}
		}
	}
	for _, algo := range plan.SearchAlgorithms {
		for _, n := range plan.Sizes {
			key := SearchKey(algo, n)
			out = append(out, trial{
				key: key,
				run: func(rng *rand.Rand, plan Plan) (Result, error) {
					return runSearch(key, algo, n, rng, plan.Repeats, plan.SearchesPerTrial)
				},
			})
		}
	}
	return out
}

// timings accumulates per-call durations.
type timings struct {
	total, min, max time.Duration
	calls           int
}

func (t *timings) add(d time.Duration, calls int) {
	if t.calls == 0 || d < t.min {
		t.min = d
	}
	if d > t.max {
		t.max = d
	}
	t.total += d
	t.calls += calls
}

func (t *timings) fill(res *Result) {
	res.Operations = t.calls
	if t.calls > 0 {
		res.MeanNanos = int64(t.total) / int64(t.calls)
	}
	res.MinNanos = int64(t.min)
	res.MaxNanos = int64(t.max)
}

// runSort times algo on a private copy of a generated input, repeats times.
func runSort(key string, algo sorting.Algorithm, shape seqgen.Shape, n int, rng *rand.Rand, repeats int) (Result, error) {
	input := seqgen.Generate(shape, n, seqgen.WithRand(rng))
	want := slices.Sorted(slices.Values(input))

	var (
		tm          timings
		comparisons int64
	)
	buf := make([]int, len(input))
	for r := 0; r < repeats; r++ {
		copy(buf, input)
		var st sorting.Stats
		less := sorting.Counting(func(a, b int) bool { return a < b }, &st)

		start := time.Now()
		if err := sorting.SortFunc(buf, algo, less); err != nil {
			return Result{}, fmt.Errorf("%s: %w", key, err)
		}
		tm.add(time.Since(start), 1)

		if !slices.Equal(buf, want) {
			return Result{}, fmt.Errorf("%w: %s: output is not the sorted permutation of its input", ErrVerification, key)
		}
		comparisons += st.Comparisons
	}

	res := Result{
		Key:         key,
		Kind:        KindSort,
		Algorithm:   algo.String(),
		Shape:       shape.String(),
		Size:        n,
		Repeats:     repeats,
		Comparisons: comparisons / int64(repeats),
		Verified:    true,
	}
	tm.fill(&res)
	return res, nil
}

// searchInput builds an input satisfying algo's precondition.
func searchInput(algo search.Algorithm, n int, rng *rand.Rand) []int {
	switch algo {
	case search.AlgoLinear:
		return seqgen.Random(n, seqgen.WithRand(rng), seqgen.WithMaxValue(n*searchGapMax+1))
	case search.AlgoRotated:
		s := seqgen.Distinct(n, searchGapMax, seqgen.WithRand(rng))
		if n == 0 {
			return s
		}
		return seqgen.Rotate(s, rng.Intn(n))
	default:
		return seqgen.Distinct(n, searchGapMax, seqgen.WithRand(rng))
	}
}

// searchTargets alternates values drawn from s with arbitrary values in
// [-1, maxValue+1], which may or may not be present.
func searchTargets(s []int, k int, rng *rand.Rand) []int {
	hi := 0
	for _, v := range s {
		hi = max(hi, v)
	}
	out := make([]int, k)
	for i := range out {
		if i%2 == 0 && len(s) > 0 {
			out[i] = s[rng.Intn(len(s))]
			continue
		}
		out[i] = rng.Intn(hi+3) - 1
	}
	return out
}

// runSearch times algo over k targets per repeat and verifies every answer.
func runSearch(key string, algo search.Algorithm, n int, rng *rand.Rand, repeats, k int) (Result, error) {
	s := searchInput(algo, n, rng)
	targets := searchTargets(s, k, rng)
	present := make(map[int]struct{}, len(s))
	for _, v := range s {
		present[v] = struct{}{}
	}
	snapshot := slices.Clone(s)

	var (
		tm   timings
		hits int
	)
	answers := make([]int, len(targets))
	for r := 0; r < repeats; r++ {
		start := time.Now()
		for i, target := range targets {
			j, err := search.Search(s, target, algo)
			if err != nil {
				return Result{}, fmt.Errorf("%s: %w", key, err)
			}
			answers[i] = j
		}
		tm.add(time.Since(start), len(targets))

		hits = 0
		for i, target := range targets {
			if err := verifySearch(s, present, target, answers[i]); err != nil {
				return Result{}, fmt.Errorf("%w: %s: %v", ErrVerification, key, err)
			}
			if answers[i] != search.NotFound {
				hits++
			}
		}
	}
	if !slices.Equal(s, snapshot) {
		return Result{}, fmt.Errorf("%w: %s: input was mutated", ErrVerification, key)
	}

	res := Result{
		Key:       key,
		Kind:      KindSearch,
		Algorithm: algo.String(),
		Size:      n,
		Repeats:   repeats,
		Hits:      hits,
		Verified:  true,
	}
	tm.fill(&res)
	// per-call mean; min and max stay per repeat
	if len(targets) > 0 {
		res.MinNanos /= int64(len(targets))
		res.MaxNanos /= int64(len(targets))
	}
	return res, nil
}

func verifySearch(s []int, present map[int]struct{}, target, got int) error {
	_, ok := present[target]
	switch {
	case ok && (got < 0 || got >= len(s)):
		return fmt.Errorf("target %d present but got index %d", target, got)
	case ok && s[got] != target:
		return fmt.Errorf("target %d reported at %d holding %d", target, got, s[got])
	case !ok && got != search.NotFound:
		return fmt.Errorf("target %d absent but got index %d", target, got)
	}
	return nil
}
