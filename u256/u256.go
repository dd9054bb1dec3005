// Package u256 implements fixed-precision unsigned 256-bit integer
// arithmetic with the wraparound semantics of a word-size-256 machine.
//
// All operations are performed modulo 2^256, so callers may rely on
// truncation rather than overflow signaling. The two operations provided,
// truncating multiplication and logical right shift, are exactly the MUL and
// SHR instructions of the target machine, reproduced bit for bit.
package u256

import "encoding/hex"

// Int is an unsigned 256-bit integer stored as 32 bytes in little-endian
// order: index 0 holds the least significant byte, index 31 the most
// significant. Int is a comparable value type; every operation returns a
// fresh value and never mutates its operands.
type Int [32]byte

// FromUint32 returns x zero-extended to 256 bits. The value occupies the low
// four bytes, matching how a 4-byte selector loaded from the head of the
// calldata word appears to the machine's arithmetic.
func FromUint32(x uint32) Int {
	var v Int
	v[0] = byte(x)
	v[1] = byte(x >> 8)
	v[2] = byte(x >> 16)
	v[3] = byte(x >> 24)
	return v
}

// FromWords assembles an Int from four 64-bit limbs, least significant
// first.
func FromWords(w0, w1, w2, w3 uint64) Int {
	var v Int
	for i, w := range [4]uint64{w0, w1, w2, w3} {
		for j := range 8 {
			v[i*8+j] = byte(w >> (j * 8))
		}
	}
	return v
}

// Mul returns x * y truncated to 256 bits.
//
// The implementation is byte-wise schoolbook multiplication: each pair of
// operand bytes contributes a 16-bit partial product that is accumulated
// into the result with carry propagation. Partial products that would land
// at or beyond byte 32 are never computed, which is what truncation modulo
// 2^256 means in this representation.
func (x Int) Mul(y Int) Int {
	var r Int
	for i := range 32 {
		var carry uint16
		for j := range 32 - i {
			p := uint16(x[i])*uint16(y[j]) + uint16(r[i+j]) + carry
			r[i+j] = byte(p)
			carry = p >> 8
		}
	}
	return r
}

// Rsh returns x logically shifted right by bits positions, zero-filling from
// the most significant end. Non-multiple-of-8 shift amounts combine a
// whole-byte shift with a sub-byte shift that borrows the spilled bits from
// the next higher byte. Shifts of 256 or more yield zero.
func (x Int) Rsh(bits uint) Int {
	var r Int
	byteShift := bits / 8
	bitShift := bits % 8
	for i := range 32 {
		src := i + int(byteShift)
		if src >= 32 {
			break
		}
		v := x[src] >> bitShift
		if bitShift > 0 && src+1 < 32 {
			v |= x[src+1] << (8 - bitShift)
		}
		r[i] = v
	}
	return r
}

// LowByte returns the least significant byte, the AND-0xFF of the machine.
func (x Int) LowByte() byte {
	return x[0]
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool {
	return x == Int{}
}

// BigEndian returns the value as 32 big-endian bytes, the byte order the
// machine uses on its wire and in immediate operands.
func (x Int) BigEndian() [32]byte {
	var b [32]byte
	for i := range 32 {
		b[i] = x[31-i]
	}
	return b
}

// Hex returns the value as a 0x-prefixed, 64-digit big-endian hex string,
// the form it takes as a 32-byte push immediate.
func (x Int) Hex() string {
	be := x.BigEndian()
	return "0x" + hex.EncodeToString(be[:])
}
