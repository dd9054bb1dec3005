package seldispatch

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// searchParallel runs the search across cfg.workers goroutines. The attempt
// budget is carved into chunks of one full shift sweep (32 attempts): a
// worker reserves the next chunk from a shared atomic counter, draws a
// multiplier from its own deterministic stream, and evaluates the shifts
// whose global attempt indices fall inside its reservation. The final chunk
// is truncated at maxAttempts, so the total number of evaluations across all
// workers is exactly maxAttempts.
//
// Workers publish improvements through the shared tracker, whose strict
// compare-and-record ordering guarantees a worse candidate never overwrites
// a better one, and whose attempt/elapsed diagnostics reflect aggregate
// progress rather than any single worker's.
func searchParallel(ctx context.Context, selectors []uint32, maxAttempts uint64, cfg *searchConfig, tracker *bestTracker) (uint64, error) {
	g, ctx := errgroup.WithContext(ctx)

	var reserved atomic.Uint64
	for w := range cfg.workers {
		lane := uint64(w + 1) // lane 0 is the serial stream
		g.Go(func() error {
			rng := newMultiplierRNG(cfg.seed, lane)
			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				end := reserved.Add(shiftsPerMultiplier)
				begin := end - shiftsPerMultiplier
				if begin >= maxAttempts {
					return nil
				}
				if end > maxAttempts {
					end = maxAttempts
				}

				q := randomMultiplier(rng)
				attempt := begin
				for shift := uint(0); shift <= maxShift && attempt < end; shift += shiftStep {
					cand := Candidate{Multiplier: q, Shift: shift}
					if maxByte, ok := cand.Evaluate(selectors); ok {
						tracker.offer(cand, maxByte, attempt)
					}
					attempt++
				}
			}
		})
	}

	err := g.Wait()
	consumed := reserved.Load()
	if consumed > maxAttempts {
		consumed = maxAttempts
	}
	if err != nil {
		// Cancelled mid-run: over-reservation by exited workers makes the
		// exact count unknowable, so report the cap.
		return consumed, err
	}
	return maxAttempts, nil
}
