package seldispatch

import "time"

// Result is the outcome of a Search run.
//
// Found=false means the attempt budget was exhausted without a collision-free
// candidate. This is a defined outcome, not an error: the other fields except
// Attempts are meaningless in that case.
type Result struct {
	// Found reports whether a collision-free candidate was recorded.
	Found bool

	// Candidate is the best (multiplier, shift) pair found, ranked by lowest
	// maximum byte with ties kept by the earlier discovery.
	Candidate Candidate

	// MaxByte is the largest byte the candidate assigns to any selector.
	MaxByte byte

	// Attempt is the zero-based attempt index at which the best candidate
	// was discovered.
	Attempt uint64

	// Elapsed is the wall-clock time from search start to the discovery of
	// the best candidate.
	Elapsed time.Duration

	// Attempts is the total number of (multiplier, shift) evaluations
	// consumed. Equal to maxAttempts unless the context was cancelled.
	Attempts uint64
}

// Progress describes one best-so-far improvement during a search. Updates
// are delivered in improvement order, so the MaxByte values observed by a
// progress callback are strictly decreasing.
type Progress struct {
	Candidate Candidate
	MaxByte   byte
	Attempt   uint64
	Elapsed   time.Duration
}
