// SPDX-License-Identifier: MIT
// Package sorting: shared types, enums and sentinel errors.

package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/utils"
)

// Sentinel errors returned by the dispatch helpers. The algorithms themselves
// never return errors.
var (
	// ErrUnknownAlgorithm is returned for an Algorithm value or name that is
	// not one of the six supported sorts.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrBadRange is returned by SortRange when [lo, hi] does not describe a
	// window inside the slice.
	ErrBadRange = errors.New("sorting: invalid range")

	// ErrNilLess is returned by SortFunc when less is nil.
	ErrNilLess = errors.New("sorting: less function is nil")
)

// LessFunc reports whether a must sort before b.
// It must describe a strict weak ordering.
type LessFunc[T any] func(a, b T) bool

// Algorithm selects one of the sorting algorithms in this package.
type Algorithm int

const (
	// Bubble is bubble sort with early exit on a swap-free pass.
	Bubble Algorithm = iota
	// Selection is selection sort.
	Selection
	// Insertion is insertion sort.
	Insertion
	// Merge is top-down merge sort.
	Merge
	// Quick is quick sort with Lomuto partitioning around the last element.
	Quick
	// Heap is in-place heap sort on a max-heap.
	Heap
)

var algorithmNames = [...]string{
	Bubble:    "bubble",
	Selection: "selection",
	Insertion: "insertion",
	Merge:     "merge",
	Quick:     "quick",
	Heap:      "heap",
}

var algorithmComplexity = [...]Complexity{
	Bubble:    {Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
	Selection: {Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
	Insertion: {Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
	Merge:     {Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(n)"},
	Quick:     {Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n²)", Space: "O(log n)"},
	Heap:      {Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(1)"},
}

// Complexity summarizes the asymptotic cost of an algorithm.
type Complexity struct {
	Best    string `json:"best" yaml:"best" toml:"best"`
	Average string `json:"average" yaml:"average" toml:"average"`
	Worst   string `json:"worst" yaml:"worst" toml:"worst"`
	Space   string `json:"space" yaml:"space" toml:"space"`
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Merge, Quick, Heap}
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	return a >= Bubble && a <= Heap
}

// String returns the lower-case name used by ParseAlgorithm.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Stable reports whether the algorithm keeps equal elements in input order.
func (a Algorithm) Stable() bool {
	switch a {
	case Bubble, Insertion, Merge:
		return true
	default:
		return false
	}
}

// Complexity returns the time and space summary for a.
// The zero Complexity is returned for invalid values.
func (a Algorithm) Complexity() Complexity {
	if !a.Valid() {
		return Complexity{}
	}
	return algorithmComplexity[a]
}

// ParseAlgorithm maps a case-insensitive name ("quick", "Heap", "merge-sort")
// to its Algorithm. A trailing "sort" or "-sort" is accepted.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "sort")
	key = strings.TrimRight(key, "-_ ")
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Stats accumulates instrumentation counters for a sort run.
type Stats struct {
	Comparisons int64
}

// Counting wraps less so that every call increments st.Comparisons.
// The wrapper is not safe for concurrent use with a shared Stats.
func Counting[T any](less LessFunc[T], st *Stats) LessFunc[T] {
	return func(a, b T) bool {
		st.Comparisons++
		return less(a, b)
	}
}

// FromComparator adapts a gods comparator (negative, zero, positive) to a
// LessFunc. The comparator receives the elements boxed as interface{}.
func FromComparator[T any](c utils.Comparator) LessFunc[T] {
	return func(a, b T) bool {
		return c(a, b) < 0
	}
}

// orderedLess is the LessFunc used by the cmp.Ordered entry points.
// cmp.Less places NaN before every other float, keeping the order total.
func orderedLess[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}
