// SPDX-License-Identifier: MIT
// Package harness: plans, results, reports and sentinel errors.

package harness

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvsort/search"
	"github.com/katalvlaran/lvsort/seqgen"
	"github.com/katalvlaran/lvsort/sorting"
)

// Sentinel errors returned by the harness.
var (
	// ErrVerification indicates an algorithm returned a wrong result.
	ErrVerification = errors.New("harness: verification failed")

	// ErrNoWork indicates the plan expands to zero trials.
	ErrNoWork = errors.New("harness: plan has no trials")

	// ErrInvalidPlan indicates a structurally invalid plan (negative size,
	// non-positive repeats, unknown algorithm).
	ErrInvalidPlan = errors.New("harness: invalid plan")

	// ErrTrialPanic wraps a panic recovered from a worker.
	ErrTrialPanic = errors.New("harness: trial panicked")

	// ErrUnknownFormat is returned for unsupported report formats.
	ErrUnknownFormat = errors.New("harness: unknown report format")
)

// Trial kinds reported in Result.Kind.
const (
	KindSort   = "sort"
	KindSearch = "search"
)

// Defaults used by DefaultPlan and New.
const (
	DefaultRepeats          = 3
	DefaultSearchesPerTrial = 64
	DefaultWorkers          = 4
)

// Plan describes what a run executes. Sort trials are the cross product of
// SortAlgorithms × Shapes × Sizes; search trials are SearchAlgorithms × Sizes.
type Plan struct {
	Sizes            []int
	Shapes           []seqgen.Shape
	SortAlgorithms   []sorting.Algorithm
	SearchAlgorithms []search.Algorithm

	// Repeats is how many times each trial is timed. Must be ≥ 1.
	Repeats int
	// SearchesPerTrial is the number of targets probed per search repeat.
	// Must be ≥ 1 when any search algorithm is planned.
	SearchesPerTrial int
}

// DefaultPlan runs every algorithm on every shape at three modest sizes.
func DefaultPlan() Plan {
	return Plan{
		Sizes:            []int{100, 1_000, 5_000},
		Shapes:           seqgen.Shapes(),
		SortAlgorithms:   sorting.Algorithms(),
		SearchAlgorithms: search.Algorithms(),
		Repeats:          DefaultRepeats,
		SearchesPerTrial: DefaultSearchesPerTrial,
	}
}

// Validate checks the plan without running it.
func (p Plan) Validate() error {
	if p.Repeats < 1 {
		return fmt.Errorf("%w: repeats must be ≥ 1, got %d", ErrInvalidPlan, p.Repeats)
	}
	for _, n := range p.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidPlan, n)
		}
	}
	// results are keyed by algorithm, shape and size; repeats would collide
	if v, ok := firstDuplicate(p.Sizes); ok {
		return fmt.Errorf("%w: duplicate size %d", ErrInvalidPlan, v)
	}
	if v, ok := firstDuplicate(p.Shapes); ok {
		return fmt.Errorf("%w: duplicate shape %v", ErrInvalidPlan, v)
	}
	if v, ok := firstDuplicate(p.SortAlgorithms); ok {
		return fmt.Errorf("%w: duplicate sort algorithm %v", ErrInvalidPlan, v)
	}
	if v, ok := firstDuplicate(p.SearchAlgorithms); ok {
		return fmt.Errorf("%w: duplicate search algorithm %v", ErrInvalidPlan, v)
	}
	for _, a := range p.SortAlgorithms {
		if !a.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidPlan, a)
		}
	}
	for _, a := range p.SearchAlgorithms {
		if !a.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidPlan, a)
		}
	}
	if len(p.SearchAlgorithms) > 0 && p.SearchesPerTrial < 1 {
		return fmt.Errorf("%w: searches per trial must be ≥ 1, got %d", ErrInvalidPlan, p.SearchesPerTrial)
	}
	if p.TrialCount() == 0 {
		return ErrNoWork
	}
	return nil
}

func firstDuplicate[T comparable](xs []T) (T, bool) {
	seen := make(map[T]struct{}, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			return x, true
		}
		seen[x] = struct{}{}
	}
	var zero T
	return zero, false
}

// TrialCount returns the number of trials the plan expands to.
func (p Plan) TrialCount() int {
	return len(p.Sizes) * (len(p.SortAlgorithms)*len(p.Shapes) + len(p.SearchAlgorithms))
}

// Result is the measured outcome of one trial.
type Result struct {
	Key       string `json:"key" yaml:"key" toml:"key"`
	Kind      string `json:"kind" yaml:"kind" toml:"kind"`
	Algorithm string `json:"algorithm" yaml:"algorithm" toml:"algorithm"`
	Shape     string `json:"shape,omitempty" yaml:"shape,omitempty" toml:"shape,omitempty"`
	Size      int    `json:"size" yaml:"size" toml:"size"`
	Repeats   int    `json:"repeats" yaml:"repeats" toml:"repeats"`

	// Operations is the number of timed calls: Repeats for sorts,
	// Repeats × searches per trial for searches.
	Operations int `json:"operations" yaml:"operations" toml:"operations"`

	MeanNanos int64 `json:"mean_ns" yaml:"mean_ns" toml:"mean_ns"`
	MinNanos  int64 `json:"min_ns" yaml:"min_ns" toml:"min_ns"`
	MaxNanos  int64 `json:"max_ns" yaml:"max_ns" toml:"max_ns"`

	// Comparisons is the mean comparison count per sort call (sorts only).
	Comparisons int64 `json:"comparisons,omitempty" yaml:"comparisons,omitempty" toml:"comparisons,omitempty"`
	// Hits counts searches that found their target (searches only).
	Hits int `json:"hits,omitempty" yaml:"hits,omitempty" toml:"hits,omitempty"`

	Verified bool `json:"verified" yaml:"verified" toml:"verified"`
}

// Mean returns MeanNanos as a time.Duration.
func (r Result) Mean() time.Duration { return time.Duration(r.MeanNanos) }

// Report is the outcome of a whole run. Results are ordered by Key.
type Report struct {
	RunID      string    `json:"run_id" yaml:"run_id" toml:"run_id"`
	Seed       int64     `json:"seed" yaml:"seed" toml:"seed"`
	Workers    int       `json:"workers" yaml:"workers" toml:"workers"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at" toml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at" toml:"finished_at"`
	Results    []Result  `json:"results" yaml:"results" toml:"results"`
}

// Lookup returns the result stored under key.
func (r *Report) Lookup(key string) (Result, bool) {
	for _, res := range r.Results {
		if res.Key == key {
			return res, true
		}
	}
	return Result{}, false
}

// SortKey is the Result.Key of a sort trial.
func SortKey(algo sorting.Algorithm, shape seqgen.Shape, size int) string {
	return fmt.Sprintf("%s/%s/%s/n=%07d", KindSort, algo, shape, size)
}

// SearchKey is the Result.Key of a search trial.
func SearchKey(algo search.Algorithm, size int) string {
	return fmt.Sprintf("%s/%s/n=%07d", KindSearch, algo, size)
}
