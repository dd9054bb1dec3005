package seldispatch

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	selerrors "github.com/seldispatch/seldispatch/errors"
	"github.com/seldispatch/seldispatch/u256"
)

// bestTracker is the explicit accumulator for best-so-far state: the current
// best candidate, its maximum byte, and the attempt/elapsed diagnostics at
// the moment of discovery. It starts at the worst bound (255) with no
// solution and accepts a candidate only if its maximum byte is strictly
// lower, so a worse candidate can never overwrite a better one and ties keep
// the earlier discovery. Safe for concurrent use.
type bestTracker struct {
	mu       sync.Mutex
	start    time.Time
	progress func(Progress)

	found   bool
	best    Candidate
	maxByte byte
	attempt uint64
	elapsed time.Duration
}

func newBestTracker(start time.Time, progress func(Progress)) *bestTracker {
	return &bestTracker{
		start:    start,
		progress: progress,
		maxByte:  255, // worst bound; a 255-max-byte candidate is no improvement
	}
}

// offer records the candidate if it strictly improves on the current bound.
// The progress callback runs under the lock so observers see a strictly
// decreasing max-byte sequence even with concurrent workers.
func (t *bestTracker) offer(c Candidate, maxByte byte, attempt uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if maxByte >= t.maxByte {
		return
	}
	t.found = true
	t.best = c
	t.maxByte = maxByte
	t.attempt = attempt
	t.elapsed = time.Since(t.start)

	if t.progress != nil {
		t.progress(Progress{
			Candidate: c,
			MaxByte:   maxByte,
			Attempt:   attempt,
			Elapsed:   t.elapsed,
		})
	}
}

func (t *bestTracker) result(totalAttempts uint64) Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := Result{Found: t.found, Attempts: totalAttempts}
	if t.found {
		r.Candidate = t.best
		r.MaxByte = t.maxByte
		r.Attempt = t.attempt
		r.Elapsed = t.elapsed
	}
	return r
}

// deriveSeed expands a 64-bit seed and a lane index into the 256-bit seed a
// ChaCha8 source requires. Each 64-bit word is an xxHash of (base, lane,
// word index), so distinct lanes get statistically independent streams.
func deriveSeed(base, lane uint64) [32]byte {
	var seed [32]byte
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], base)
	binary.LittleEndian.PutUint64(buf[8:16], lane)
	for i := range 4 {
		binary.LittleEndian.PutUint64(buf[16:24], uint64(i))
		binary.LittleEndian.PutUint64(seed[i*8:], xxhash.Sum64(buf[:]))
	}
	return seed
}

func newMultiplierRNG(base, lane uint64) *rand.Rand {
	return rand.New(rand.NewChaCha8(deriveSeed(base, lane)))
}

// randomMultiplier draws a uniformly distributed 256-bit value.
func randomMultiplier(rng *rand.Rand) u256.Int {
	return u256.FromWords(rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64())
}

// Search looks for a (multiplier, shift) pair that maps every selector to a
// distinct byte, preferring candidates with the lowest maximum byte. It
// draws one random multiplier per outer iteration and sweeps the byte-
// aligned shifts 0, 8, ..., 248; every (multiplier, shift) evaluation
// consumes one unit of maxAttempts whether or not it is collision-free, and
// the search stops exactly when the budget is spent. maxAttempts is a hard
// cutoff, not a convergence criterion: Found=false on the returned Result is
// the expected outcome for adversarial or oversized selector sets (any set
// with more than 256 selectors admits no injective byte mapping at all).
//
// Search does not validate the selector set; duplicate selectors
// deterministically exhaust the budget. A non-nil error is returned only for
// invalid options or a cancelled context.
func Search(ctx context.Context, selectors []uint32, maxAttempts uint64, opts ...SearchOption) (Result, error) {
	cfg := defaultSearchConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workers < 0 {
		return Result{}, selerrors.ErrInvalidWorkers
	}
	if !cfg.seedSet {
		cfg.seed = randomSeed()
	}

	tracker := newBestTracker(time.Now(), cfg.progress)
	// An empty selector set is vacuously collision-free; there is nothing to
	// search for, so no budget is spent and no candidate is reported.
	if maxAttempts == 0 || len(selectors) == 0 {
		return tracker.result(0), nil
	}

	if cfg.workers > 1 {
		consumed, err := searchParallel(ctx, selectors, maxAttempts, cfg, tracker)
		return tracker.result(consumed), err
	}
	return searchSerial(ctx, selectors, maxAttempts, cfg, tracker)
}

func searchSerial(ctx context.Context, selectors []uint32, maxAttempts uint64, cfg *searchConfig, tracker *bestTracker) (Result, error) {
	rng := newMultiplierRNG(cfg.seed, 0)

	var attempts uint64
	for attempts < maxAttempts {
		// One cancellation check per multiplier keeps the overhead off the
		// per-shift hot path.
		if err := ctx.Err(); err != nil {
			return tracker.result(attempts), err
		}

		q := randomMultiplier(rng)
		for shift := uint(0); shift <= maxShift && attempts < maxAttempts; shift += shiftStep {
			cand := Candidate{Multiplier: q, Shift: shift}
			if maxByte, ok := cand.Evaluate(selectors); ok {
				tracker.offer(cand, maxByte, attempts)
			}
			attempts++
		}
	}
	return tracker.result(attempts), nil
}

// randomSeed draws a fresh seed from the OS entropy source. crypto/rand
// failures are unrecoverable platform issues; fall back to wall-clock time
// so the search still makes progress.
func randomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
