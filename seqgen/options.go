// SPDX-License-Identifier: MIT
// Package seqgen: functional options.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic for n ≥ 0.
//   - Determinism flows through WithSeed or WithRand; no hidden globals.

package seqgen

import "math/rand"

// Defaults applied by newConfig.
const (
	defaultMaxValue     = 1_000_000 // exclusive upper bound for drawn values
	defaultUniqueValues = 8         // distinct values in FewUnique
	defaultSwapPercent  = 5         // share of positions disturbed in NearlySorted
)

// Option customizes a generator call.
type Option func(*config)

type config struct {
	rng          *rand.Rand
	maxValue     int
	uniqueValues int
	swapPercent  int
}

func newConfig(opts []Option) config {
	c := config{
		maxValue:     defaultMaxValue,
		uniqueValues: defaultUniqueValues,
		swapPercent:  defaultSwapPercent,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = RNGFromSeed(0)
	}
	return c
}

// WithSeed draws values from a fresh RNG seeded with seed (0 ⇒ DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = RNGFromSeed(seed)
	}
}

// WithRand draws values from r. The caller owns r and must not share it
// across goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seqgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithMaxValue bounds drawn values to [0, limit). Panics if limit <= 0.
func WithMaxValue(limit int) Option {
	if limit <= 0 {
		panic("seqgen: WithMaxValue(limit<=0)")
	}
	return func(c *config) {
		c.maxValue = limit
	}
}

// WithUniqueValues sets the number of distinct values used by FewUnique.
// Panics if k <= 0.
func WithUniqueValues(k int) Option {
	if k <= 0 {
		panic("seqgen: WithUniqueValues(k<=0)")
	}
	return func(c *config) {
		c.uniqueValues = k
	}
}

// WithSwapPercent sets how many positions, in percent of n, NearlySorted
// disturbs. Panics outside [0, 100].
func WithSwapPercent(p int) Option {
	if p < 0 || p > 100 {
		panic("seqgen: WithSwapPercent(p outside [0,100])")
	}
	return func(c *config) {
		c.swapPercent = p
	}
}
