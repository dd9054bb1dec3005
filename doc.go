// Package seldispatch searches for minimal multiplicative perfect-hash
// functions over fixed sets of 32-bit function selectors and lays out the
// resulting dense jump table for an EVM-style dispatcher.
//
// A candidate hash is a (multiplier, shift) pair: a selector is zero-extended
// to 256 bits, multiplied by the multiplier with truncation modulo 2^256,
// shifted right, and reduced to its low byte. The search draws random
// multipliers and sweeps byte-aligned shifts within a fixed attempt budget,
// keeping the collision-free candidate with the lowest maximum byte. Running
// out of budget without a solution is a normal outcome, reported as
// Found=false rather than an error.
//
// # Basic Usage
//
// Searching for magic numbers:
//
//	res, err := seldispatch.Search(ctx, selectors, 1000,
//	    seldispatch.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    log.Fatal("no collision-free mapping within budget")
//	}
//	fmt.Printf("multiplier %s shift %d max byte 0x%02x\n",
//	    res.Candidate.Multiplier.Hex(), res.Candidate.Shift, res.MaxByte)
//
// Running the full pipeline (search plus jump-table layout):
//
//	bindings, err := seldispatch.NewBindings(selectors, addresses)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rep, err := seldispatch.Generate(ctx, bindings, 1000, seldispatch.TableConfig{})
//	if err != nil {
//	    log.Fatal(err) // errors.Is(err, errors.ErrNoSolution) on exhaustion
//	}
//	render.Program(os.Stdout, rep)
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: search.go (Search), generate.go (Generate, NewBindings),
//     table.go (BuildTable), evaluate.go (Candidate)
//   - Configuration: search_options.go (SearchOption, With* functions)
//   - Parallel search: search_parallel.go (worker pool, shared best-so-far)
//   - Arithmetic core: u256/ (truncating 256-bit multiply and shift)
//   - Input generation: selgen/ (random and keccak256 signature selectors)
//   - Rendering: render/ (descriptive EVM bytecode listing)
//
// The library never validates that the selector set is duplicate-free; that
// is the caller's responsibility (Generate and selgen do check). Duplicate
// selectors force every candidate into a collision, which manifests as
// guaranteed budget exhaustion.
package seldispatch
