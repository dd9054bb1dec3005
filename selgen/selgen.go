// Package selgen generates the selector and address inputs consumed by the
// magic-number search.
//
// Real dispatchers hash function signatures with keccak256 and keep the
// first four bytes; FromSignatures reproduces that exactly. Random produces
// a deterministic synthetic set of the same shape for benchmarks and for
// exercising the search without an ABI at hand.
package selgen

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/sha3"

	selerrors "github.com/seldispatch/seldispatch/errors"
)

// Random returns n distinct selectors drawn deterministically from seed.
// Values come from an xxh3 counter stream, so they are uniform over the full
// 32-bit space; duplicates in the stream are skipped.
func Random(seed uint64, n int) []uint32 {
	out := make([]uint32, 0, n)
	seen := make(map[uint32]struct{}, n)
	var buf [8]byte
	for counter := uint64(0); len(out) < n; counter++ {
		binary.LittleEndian.PutUint64(buf[:], counter)
		sel := uint32(xxh3.HashSeed(buf[:], seed))
		if _, dup := seen[sel]; dup {
			continue
		}
		seen[sel] = struct{}{}
		out = append(out, sel)
	}
	return out
}

// FromSignatures derives selectors from canonical ABI signatures, e.g.
// "transfer(address,uint256)": the first four bytes of keccak256(signature),
// interpreted big-endian. Returns ErrDuplicateSelector if two signatures
// collide on their selector.
func FromSignatures(sigs []string) ([]uint32, error) {
	out := make([]uint32, 0, len(sigs))
	seen := make(map[uint32]string, len(sigs))
	h := sha3.NewLegacyKeccak256()
	for _, sig := range sigs {
		h.Reset()
		h.Write([]byte(sig))
		sum := h.Sum(nil)
		sel := binary.BigEndian.Uint32(sum[:4])
		if prev, dup := seen[sel]; dup {
			return nil, fmt.Errorf("%q and %q share selector 0x%08x: %w",
				prev, sig, sel, selerrors.ErrDuplicateSelector)
		}
		seen[sel] = sig
		out = append(out, sel)
	}
	return out, nil
}

// Addresses returns n function addresses on the reference ladder
// 0xf01000, 0xf02000, .... The values are opaque to the search and the
// layout; the ladder just keeps rendered output readable.
func Addresses(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = 0xf00000 + uint32(i+1)*0x1000
	}
	return out
}
