// SPDX-License-Identifier: MIT
// Package seqgen - RNG utilities shared by all generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequences across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRNG to create independent streams for parallel workers.

package seqgen

import "math/rand"

// DefaultSeed is used whenever a caller passes seed == 0.
const DefaultSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// seed == 0 selects DefaultSeed; any other seed is used verbatim.
func RNGFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream id into a new seed using the
// SplitMix64 finalizer, so neighboring stream ids give unrelated seeds.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent deterministic stream from a parent seed
// and a stream id. Call it once per worker during setup, never in hot loops.
func DeriveRNG(parent int64, stream uint64) *rand.Rand {
	if parent == 0 {
		parent = DefaultSeed
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// shuffle performs an in-place Fisher–Yates shuffle of a using r.
func shuffle(a []int, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
