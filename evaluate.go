package seldispatch

import "github.com/seldispatch/seldispatch/u256"

// Shift sweep geometry. Shifts are byte-aligned because they correspond to
// the machine's natural word operations: 0, 8, ..., 248, which is 32 shift
// values per multiplier.
const (
	shiftStep           = 8
	maxShift            = 248
	shiftsPerMultiplier = maxShift/shiftStep + 1
)

// Candidate is one hypothesis for the dispatch hash: a 256-bit multiplier
// and a right-shift amount in [0, 248].
type Candidate struct {
	Multiplier u256.Int
	Shift      uint
}

// MapSelector computes the byte the candidate hash assigns to a selector:
// zero-extend, multiply with truncation modulo 2^256, shift right, take the
// low byte. This is the value the dispatcher preamble computes at run time.
func (c Candidate) MapSelector(sel uint32) byte {
	return u256.FromUint32(sel).Mul(c.Multiplier).Rsh(c.Shift).LowByte()
}

// Evaluate scores the candidate against a selector set. It returns
// ok=false as soon as two selectors map to the same byte; otherwise ok=true
// and the maximum byte observed across the set. Evaluate is pure and does
// not modify selectors.
func (c Candidate) Evaluate(selectors []uint32) (maxByte byte, ok bool) {
	var seen [256]bool
	for _, sel := range selectors {
		b := c.MapSelector(sel)
		if seen[b] {
			return 0, false
		}
		seen[b] = true
		if b > maxByte {
			maxByte = b
		}
	}
	return maxByte, true
}

// Mapping returns the byte assigned to each selector, index-aligned with the
// input slice. It does not check for collisions; use Evaluate first.
func (c Candidate) Mapping(selectors []uint32) []byte {
	m := make([]byte, len(selectors))
	for i, sel := range selectors {
		m[i] = c.MapSelector(sel)
	}
	return m
}
