// Package errors defines all exported error sentinels for the seldispatch
// library.
//
// This is the single source of truth for error values. The top-level
// seldispatch package and the input-generation packages import from here,
// ensuring errors.Is checks work across package boundaries.
package errors

import "errors"

var (
	// ErrNoSolution is returned by the pipeline when the search exhausts its
	// attempt budget without finding a collision-free mapping. For an
	// adversarial or oversized selector set this is an expected outcome, not
	// a defect; Search itself reports it as Found=false.
	ErrNoSolution = errors.New("seldispatch: no collision-free mapping found within attempt budget")

	// ErrEmptySelectorSet is returned when no selectors were supplied.
	ErrEmptySelectorSet = errors.New("seldispatch: selector set is empty")

	// ErrDuplicateSelector is returned when the same selector appears twice
	// in the input set. Duplicates force every candidate into a collision,
	// so the search would deterministically exhaust its budget.
	ErrDuplicateSelector = errors.New("seldispatch: duplicate selector in input set")

	// ErrCountMismatch is returned when selector and address counts differ.
	ErrCountMismatch = errors.New("seldispatch: selector and address counts differ")

	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("seldispatch: worker count must not be negative")
)
