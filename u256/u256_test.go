package u256

import (
	"encoding/binary"
	"hash/fnv"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/holiman/uint256"
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

func randomInt(rng *rand.Rand) Int {
	return FromWords(rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64())
}

// toBig converts an Int to a math/big.Int via its big-endian bytes.
func toBig(x Int) *big.Int {
	be := x.BigEndian()
	return new(big.Int).SetBytes(be[:])
}

// fromBig truncates a math/big.Int to 256 bits and converts it to an Int.
func fromBig(v *big.Int) Int {
	var x Int
	reduced := new(big.Int).And(v, bigMask256)
	b := reduced.Bytes() // big-endian, minimal length
	for i := range b {
		x[len(b)-1-i] = b[i]
	}
	return x
}

var bigMask256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// edgeValues are the adversarial operands every arithmetic property is
// checked against in addition to random fuzzing.
func edgeValues() []Int {
	var allOnes Int
	for i := range allOnes {
		allOnes[i] = 0xFF
	}
	var msbOnly Int
	msbOnly[31] = 0x80
	return []Int{
		{},				// 0
		FromUint32(1),			// 1
		FromUint32(2),			// 2
		FromUint32(0xFFFFFFFF),		// max selector
		msbOnly,			// 2^255
		allOnes,			// 2^256 - 1
		FromWords(0, 0, 0, 1<<63),	// 2^255 via words
	}
}

func TestMulMatchesBigInt(t *testing.T) {
	check := func(a, b Int) {
		t.Helper()
		got := a.Mul(b)
		want := fromBig(new(big.Int).Mul(toBig(a), toBig(b)))
		if got != want {
			t.Fatalf("Mul(%s, %s) = %s, want %s", a.Hex(), b.Hex(), got.Hex(), want.Hex())
		}
	}

	edges := edgeValues()
	for _, a := range edges {
		for _, b := range edges {
			check(a, b)
		}
	}

	rng := newTestRNG(t)
	for range 2000 {
		check(randomInt(rng), randomInt(rng))
	}
}

// TestMulMatchesUint256 cross-checks against holiman/uint256, which
// implements the same machine semantics with an independent limb-based
// representation. A bug shared with the byte-wise schoolbook version and
// math/big is vanishingly unlikely to also appear here.
func TestMulMatchesUint256(t *testing.T) {
	check := func(a, b Int) {
		t.Helper()
		abe, bbe := a.BigEndian(), b.BigEndian()
		var ua, ub, ur uint256.Int
		ua.SetBytes(abe[:])
		ub.SetBytes(bbe[:])
		ur.Mul(&ua, &ub)
		wantBE := ur.Bytes32()

		gotBE := a.Mul(b).BigEndian()
		if gotBE != wantBE {
			t.Fatalf("Mul(%s, %s) = %x, uint256 says %x", a.Hex(), b.Hex(), gotBE, wantBE)
		}
	}

	edges := edgeValues()
	for _, a := range edges {
		for _, b := range edges {
			check(a, b)
		}
	}

	rng := newTestRNG(t)
	for range 2000 {
		check(randomInt(rng), randomInt(rng))
	}
}

func TestMulCommutative(t *testing.T) {
	rng := newTestRNG(t)
	for range 500 {
		a, b := randomInt(rng), randomInt(rng)
		if a.Mul(b) != b.Mul(a) {
			t.Fatalf("Mul not commutative for %s, %s", a.Hex(), b.Hex())
		}
	}
}

func TestRshMatchesBigInt(t *testing.T) {
	check := func(v Int, bits uint) {
		t.Helper()
		got := v.Rsh(bits)
		want := fromBig(new(big.Int).Rsh(toBig(v), bits))
		if got != want {
			t.Fatalf("Rsh(%s, %d) = %s, want %s", v.Hex(), bits, got.Hex(), want.Hex())
		}
	}

	// Every byte-aligned shift the search sweeps, plus non-multiples of 8 to
	// exercise the cross-byte bit borrow.
	shifts := []uint{1, 3, 7, 9, 15, 100, 131, 255}
	for s := uint(0); s <= 248; s += 8 {
		shifts = append(shifts, s)
	}

	for _, v := range edgeValues() {
		for _, s := range shifts {
			check(v, s)
		}
	}

	rng := newTestRNG(t)
	for range 2000 {
		check(randomInt(rng), uint(rng.IntN(256)))
	}
}

func TestRshMatchesUint256(t *testing.T) {
	rng := newTestRNG(t)
	for range 2000 {
		v := randomInt(rng)
		bits := uint(rng.IntN(256))

		be := v.BigEndian()
		var uv, ur uint256.Int
		uv.SetBytes(be[:])
		ur.Rsh(&uv, bits)
		wantBE := ur.Bytes32()

		gotBE := v.Rsh(bits).BigEndian()
		if gotBE != wantBE {
			t.Fatalf("Rsh(%s, %d) = %x, uint256 says %x", v.Hex(), bits, gotBE, wantBE)
		}
	}
}

func TestRshBeyondWidthIsZero(t *testing.T) {
	rng := newTestRNG(t)
	for _, bits := range []uint{256, 300, 1 << 20} {
		v := randomInt(rng)
		if got := v.Rsh(bits); !got.IsZero() {
			t.Fatalf("Rsh(%s, %d) = %s, want zero", v.Hex(), bits, got.Hex())
		}
	}
}

func TestFromUint32(t *testing.T) {
	v := FromUint32(0xA1B2C3D4)
	want := Int{0xD4, 0xC3, 0xB2, 0xA1}
	if v != want {
		t.Fatalf("FromUint32(0xA1B2C3D4) = %s, want %s", v.Hex(), want.Hex())
	}
	// Upper 28 bytes must be zero-extension, never sign-extension.
	for i := 4; i < 32; i++ {
		if v[i] != 0 {
			t.Fatalf("byte %d of zero-extended selector is 0x%02X", i, v[i])
		}
	}
}

func TestHexAndBigEndian(t *testing.T) {
	v := FromUint32(0xDEADBEEF)
	const want = "0x00000000000000000000000000000000000000000000000000000000deadbeef"
	if got := v.Hex(); got != want {
		t.Fatalf("Hex() = %s, want %s", got, want)
	}
	if v.LowByte() != 0xEF {
		t.Fatalf("LowByte() = 0x%02X, want 0xEF", v.LowByte())
	}
}

func TestFromWordsRoundTrip(t *testing.T) {
	rng := newTestRNG(t)
	for range 200 {
		w0, w1, w2, w3 := rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()
		v := FromWords(w0, w1, w2, w3)
		for i, w := range [4]uint64{w0, w1, w2, w3} {
			got := binary.LittleEndian.Uint64(v[i*8 : i*8+8])
			if got != w {
				t.Fatalf("word %d: got 0x%016X, want 0x%016X", i, got, w)
			}
		}
	}
}
