package harness

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/lvsort/internal/logger"
	"github.com/katalvlaran/lvsort/seqgen"
)

// Runner executes plans. A Runner holds only configuration and may be reused
// for several runs, including concurrent ones.
type Runner struct {
	lggr    logger.Logger
	workers int
	seed    int64

	// beforeTrial, when set, runs on the worker right before a trial body.
	beforeTrial func(key string)
}

// New returns a Runner with DefaultWorkers, seed 0 and a no-op logger.
func New(opts ...Option) *Runner {
	r := &Runner{
		lggr:    logger.Nop(),
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run validates plan, executes every trial on the worker pool and returns a
// report ordered by trial key.
//
// The first failing trial aborts the run: trials not yet started are
// skipped and its error is returned (ErrVerification, ErrTrialPanic or a
// dispatch error). Cancelling ctx stops the run between trials and returns
// ctx.Err().
func (r *Runner) Run(ctx context.Context, plan Plan) (*Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	trials := expand(plan)
	rep := &Report{
		RunID:     uuid.NewString(),
		Seed:      r.seed,
		Workers:   r.workers,
		StartedAt: time.Now().UTC(),
	}
	lggr := r.lggr.Named("harness").With("run_id", rep.RunID)
	lggr.Infow("run started", "trials", len(trials), "workers", r.workers, "seed", r.seed)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		errOnce  sync.Once
		firstErr error
		wg       sync.WaitGroup
		results  = &hashmap.HashMap{}
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	pool, err := ants.NewPool(r.workers)
	if err != nil {
		return nil, fmt.Errorf("harness: create worker pool: %w", err)
	}
	defer pool.Release()

	for i, tr := range trials {
		if runCtx.Err() != nil {
			break
		}
		rng := seqgen.DeriveRNG(r.seed, uint64(i))
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			// recovered here, not by the pool: fail must happen before Done
			defer func() {
				if p := recover(); p != nil {
					lggr.Errorw("trial panicked", "key", tr.key, "panic", p)
					fail(fmt.Errorf("%w: %s: %v", ErrTrialPanic, tr.key, p))
				}
			}()
			if runCtx.Err() != nil {
				return
			}
			if r.beforeTrial != nil {
				r.beforeTrial(tr.key)
			}
			res, err := tr.run(rng, plan)
			if err != nil {
				lggr.Errorw("trial failed", "key", tr.key, "err", err)
				fail(err)
				return
			}
			lggr.Debugw("trial done", "key", tr.key, "mean", res.Mean())
			results.Set(res.Key, res)
		})
		if submitErr != nil {
			wg.Done()
			fail(fmt.Errorf("harness: submit %s: %w", tr.key, submitErr))
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		lggr.Warnw("run cancelled", "err", err)
		return nil, err
	}

	rep.Results = ordered(results)
	rep.FinishedAt = time.Now().UTC()
	lggr.Infow("run finished", "results", len(rep.Results), "elapsed", rep.FinishedAt.Sub(rep.StartedAt))
	return rep, nil
}

// ordered drains the concurrent result store into a key-ordered slice.
func ordered(results *hashmap.HashMap) []Result {
	tm := treemap.NewWithStringComparator()
	for kv := range results.Iter() {
		tm.Put(kv.Key, kv.Value)
	}
	out := make([]Result, 0, tm.Size())
	it := tm.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Result))
	}
	return out
}
