// Package harness drives the sorting and search packages over generated
// inputs, verifies every result and reports timings.
//
// A Plan names the sizes, input shapes and algorithms to run. Runner.Run
// expands it into independent trials and executes them on a bounded worker
// pool. Each trial derives its own RNG stream from the run seed and its
// position in the plan, and owns a private copy of its input, so results are
// reproducible regardless of scheduling and no two workers ever share a
// slice.
//
//	r := harness.New(harness.WithWorkers(4), harness.WithSeed(42))
//	rep, err := r.Run(ctx, harness.DefaultPlan())
//	if err != nil {
//	  // ErrVerification means an algorithm produced a wrong answer
//	}
//	_ = rep.Encode(os.Stdout, harness.FormatYAML)
//
// Verification:
//   - sort trials compare the output against slices.Sorted of the input,
//     which checks sortedness and permutation together.
//   - search trials check that a present target maps to an index holding it
//     and that an absent target yields search.NotFound.
package harness
