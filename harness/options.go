package harness

import "github.com/katalvlaran/lvsort/internal/logger"

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(lggr logger.Logger) Option {
	return func(r *Runner) {
		if lggr != nil {
			r.lggr = lggr
		}
	}
}

// WithWorkers sets the worker pool size. Values < 1 keep the default.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n >= 1 {
			r.workers = n
		}
	}
}

// WithSeed sets the run seed every trial stream is derived from.
// Seed 0 selects seqgen.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}
