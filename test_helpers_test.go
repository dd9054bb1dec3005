package seldispatch

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"

	"github.com/seldispatch/seldispatch/u256"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// generateSelectors returns n distinct random selectors.
func generateSelectors(rng *rand.Rand, n int) []uint32 {
	seen := make(map[uint32]struct{}, n)
	out := make([]uint32, 0, n)
	for len(out) < n {
		sel := rng.Uint32()
		if _, dup := seen[sel]; dup {
			continue
		}
		seen[sel] = struct{}{}
		out = append(out, sel)
	}
	return out
}

// generateBindings pairs n distinct random selectors with ladder addresses.
func generateBindings(rng *rand.Rand, n int) []Binding {
	selectors := generateSelectors(rng, n)
	bindings := make([]Binding, n)
	for i, sel := range selectors {
		bindings[i] = Binding{Selector: sel, Address: 0xf00000 + uint32(i+1)*0x1000}
	}
	return bindings
}

func randomCandidate(rng *rand.Rand) Candidate {
	return Candidate{
		Multiplier: u256.FromWords(rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()),
		Shift:      uint(rng.IntN(shiftsPerMultiplier)) * shiftStep,
	}
}
