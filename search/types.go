// SPDX-License-Identifier: MIT
// Package search: sentinel values, constraints and the Algorithm enum.

package search

import (
	"errors"
	"fmt"
	"strings"
)

// NotFound is returned when the target is absent. It is never a valid index.
const NotFound = -1

// ErrUnknownAlgorithm is returned by Search and ParseAlgorithm for
// unrecognized algorithms.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Number is the constraint for searches that do arithmetic on values.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Algorithm selects one of the search algorithms in this package.
type Algorithm int

const (
	// AlgoLinear scans left to right.
	AlgoLinear Algorithm = iota
	// AlgoBinaryIterative halves the window in a loop.
	AlgoBinaryIterative
	// AlgoBinaryRecursive halves the window by recursion.
	AlgoBinaryRecursive
	// AlgoInterpolation probes where the target would sit under uniform spacing.
	AlgoInterpolation
	// AlgoExponential gallops to a bracketing window, then binary searches it.
	AlgoExponential
	// AlgoRotated searches an ascending slice rotated at an unknown pivot.
	AlgoRotated
)

var algorithmNames = [...]string{
	AlgoLinear:          "linear",
	AlgoBinaryIterative: "binary-iterative",
	AlgoBinaryRecursive: "binary-recursive",
	AlgoInterpolation:   "interpolation",
	AlgoExponential:     "exponential",
	AlgoRotated:         "rotated",
}

var algorithmAliases = map[string]Algorithm{
	"binary":         AlgoBinaryIterative,
	"rotated-sorted": AlgoRotated,
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoLinear, AlgoBinaryIterative, AlgoBinaryRecursive, AlgoInterpolation, AlgoExponential, AlgoRotated}
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	return a >= AlgoLinear && a <= AlgoRotated
}

// String returns the canonical name used by ParseAlgorithm.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// RequiresSorted reports whether the algorithm needs ascending input.
// AlgoRotated needs an ascending slice that was rotated.
func (a Algorithm) RequiresSorted() bool {
	return a != AlgoLinear
}

// Complexity returns the expected time bound as text.
func (a Algorithm) Complexity() string {
	switch a {
	case AlgoLinear:
		return "O(n)"
	case AlgoInterpolation:
		return "O(log log n) expected, O(n) worst"
	case AlgoBinaryIterative, AlgoBinaryRecursive, AlgoExponential, AlgoRotated:
		return "O(log n)"
	default:
		return ""
	}
}

// ParseAlgorithm maps a case-insensitive name to its Algorithm.
// "_" and "-" are interchangeable; "binary" means AlgoBinaryIterative.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	key = strings.TrimSuffix(key, "-search")
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
