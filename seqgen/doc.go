// Package seqgen builds deterministic integer sequences for exercising sorts
// and searches: random, sorted, reversed, nearly sorted, few-unique and
// all-equal shapes, arithmetic progressions and rotations.
//
// Determinism is explicit. Every generator draws from a *rand.Rand chosen via
// WithSeed or WithRand; seed 0 maps to a fixed default seed, so two calls with
// the same options always return the same slice. There is no time-based
// seeding anywhere in the package.
//
//	xs := seqgen.Generate(seqgen.NearlySorted, 1000, seqgen.WithSeed(42))
//	rot := seqgen.Rotate(seqgen.Sorted(10), 3) // [3 4 5 6 7 8 9 0 1 2]
//
// For parallel workers use DeriveRNG to split independent streams from one
// parent so results do not depend on scheduling.
package seqgen
