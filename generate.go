package seldispatch

import (
	"context"

	selerrors "github.com/seldispatch/seldispatch/errors"
)

// Report is the full output of a Generate run, structured for an external
// renderer: the search result, the per-selector byte mapping (index-aligned
// with Bindings), and the jump-table layout.
type Report struct {
	Bindings []Binding
	Result   Result
	Mapping  []byte
	Table    Table
}

// NewBindings pairs selectors with addresses positionally. It returns
// ErrCountMismatch when the slices differ in length and ErrDuplicateSelector
// when a selector repeats.
func NewBindings(selectors, addresses []uint32) ([]Binding, error) {
	if len(selectors) != len(addresses) {
		return nil, selerrors.ErrCountMismatch
	}
	seen := make(map[uint32]struct{}, len(selectors))
	bindings := make([]Binding, len(selectors))
	for i, sel := range selectors {
		if _, dup := seen[sel]; dup {
			return nil, selerrors.ErrDuplicateSelector
		}
		seen[sel] = struct{}{}
		bindings[i] = Binding{Selector: sel, Address: addresses[i]}
	}
	return bindings, nil
}

// Generate runs the whole pipeline: validate the bindings, search for magic
// numbers within maxAttempts, and lay out the jump table. Unlike Search,
// which reports exhaustion as Found=false, Generate surfaces it as
// ErrNoSolution so callers can branch with errors.Is.
func Generate(ctx context.Context, bindings []Binding, maxAttempts uint64, cfg TableConfig, opts ...SearchOption) (*Report, error) {
	if len(bindings) == 0 {
		return nil, selerrors.ErrEmptySelectorSet
	}
	selectors := make([]uint32, len(bindings))
	seen := make(map[uint32]struct{}, len(bindings))
	for i, b := range bindings {
		if _, dup := seen[b.Selector]; dup {
			return nil, selerrors.ErrDuplicateSelector
		}
		seen[b.Selector] = struct{}{}
		selectors[i] = b.Selector
	}

	res, err := Search(ctx, selectors, maxAttempts, opts...)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, selerrors.ErrNoSolution
	}

	return &Report{
		Bindings: bindings,
		Result:   res,
		Mapping:  res.Candidate.Mapping(selectors),
		Table:    BuildTable(res.Candidate, bindings, cfg),
	}, nil
}
