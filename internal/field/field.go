package field

import (
	"encoding/binary"
	"math/bits"
)

// This file implements Montgomery-domain computations on a finite field
// of integers modulo a 256-bit prime p. This implementation is portable
// (no assembly). It is NOT constant-time: the inversion relies on
// math/big, and the callers of this package only ever process public
// test-vector data.

// =======================================================================
// Internal functions
// =======================================================================

// Unless otherwise stated, all functions below accept source and destination
// operands to be the same objects. Parameter order is destination first
// (similar to mathematical notation: "d = a + b").
// The 'm' parameter describes the modulus and its precomputed Montgomery
// constants; it is never modified.
//
// Storage format: an array of four 64-bit unsigned integers, which encode
// the value in base 2^64 (little-endian order: first limb is least
// significant). All values are kept fully reduced: every function expects
// inputs in the 0..p-1 range and returns its output in that range.
//
// Montgomery form: a value v is represented by v*R mod p, with R = 2^256.

// modulus gathers a prime p and the constants needed for Montgomery
// arithmetic with R = 2^256.
type modulus struct {
	// p, the modulus itself.
	p [4]uint64

	// n0 = -1/p mod 2^64
	n0 uint64

	// ri = 1/R mod p (the domain constant: ri*R = 1 mod p)
	ri [4]uint64

	// r2 = R^2 mod p (used to convert into Montgomery form)
	r2 [4]uint64

	// r3 = R^3 mod p (used to remap a plain inverse into Montgomery form)
	r3 [4]uint64
}

// Internal function for conditional subtraction of the modulus. The
// value to reduce is a + hi*2^256, with hi = 0 or 1, and it MUST be
// lower than 2*p. The output d is fully reduced.
// Parameters:
//   d    destination
//   a    operand (low 256 bits)
//   hi   extra top bit of the operand
//   m    modulus definition
func gf_condsub(d, a *[4]uint64, hi uint64, m *modulus) {
	var s [4]uint64
	var cc uint64
	for i := 0; i < 4; i++ {
		s[i], cc = bits.Sub64(a[i], m.p[i], cc)
	}

	// Keep the difference if the value exceeded 2^256 or if the
	// subtraction did not borrow.
	ms := -(hi | (cc ^ 1))
	for i := 0; i < 4; i++ {
		d[i] = (s[i] & ms) | (a[i] &^ ms)
	}
}

// Internal function for field addition.
// Parameters:
//   d    destination
//   a    first operand
//   b    second operand
//   m    modulus definition
func gf_add(d, a, b *[4]uint64, m *modulus) {
	var t [4]uint64
	var cc uint64
	for i := 0; i < 4; i++ {
		t[i], cc = bits.Add64(a[i], b[i], cc)
	}
	gf_condsub(d, &t, cc, m)
}

// Internal function for field subtraction. A negative difference wraps
// around modulo p.
// Parameters:
//   d    destination
//   a    first operand
//   b    second operand
//   m    modulus definition
func gf_sub(d, a, b *[4]uint64, m *modulus) {
	var cc uint64
	for i := 0; i < 4; i++ {
		d[i], cc = bits.Sub64(a[i], b[i], cc)
	}

	// If there was a borrow, add back p (the final carry is dropped).
	e := -cc
	cc = 0
	for i := 0; i < 4; i++ {
		d[i], cc = bits.Add64(d[i], m.p[i]&e, cc)
	}
}

// Internal function for field negation.
// Parameters:
//   d    destination
//   a    operand
//   m    modulus definition
func gf_neg(d, a *[4]uint64, m *modulus) {
	var z [4]uint64
	gf_sub(d, &z, a, m)
}

// Internal function for halving (division by 2).
// Parameters:
//   d    destination
//   a    operand
//   m    modulus definition
func gf_half(d, a *[4]uint64, m *modulus) {
	// If a is odd, add p (which is odd) to get an even value, then
	// shift right; the carry of the addition becomes the top bit.
	var t [4]uint64
	e := -(a[0] & 1)
	var cc uint64
	for i := 0; i < 4; i++ {
		t[i], cc = bits.Add64(a[i], m.p[i]&e, cc)
	}
	for i := 0; i < 3; i++ {
		d[i] = (t[i] >> 1) | (t[i+1] << 63)
	}
	d[3] = (t[3] >> 1) | (cc << 63)
}

// Internal function for plain integer multiplication: the 512-bit
// product of a and b is written into t.
// Parameters:
//   t    destination (512 bits)
//   a    first operand
//   b    second operand
func mul512(t *[8]uint64, a, b *[4]uint64) {
	*t = [8]uint64{}
	for i := 0; i < 4; i++ {
		var c uint64
		for j := 0; j < 4; j++ {
			// a[i]*b[j] + t[i+j] + c always fits in 128 bits.
			hi, lo := bits.Mul64(a[i], b[j])
			var cc uint64
			lo, cc = bits.Add64(lo, t[i+j], 0)
			hi += cc
			lo, cc = bits.Add64(lo, c, 0)
			hi += cc
			t[i+j] = lo
			c = hi
		}
		t[i+4] = c
	}
}

// Internal function for Montgomery reduction: d <- t/R mod p. The
// source t MUST be lower than p*R (which is always the case for the
// product of two reduced values). The source array is consumed.
// Parameters:
//   d    destination
//   t    512-bit source
//   m    modulus definition
func mont_reduce(d *[4]uint64, t *[8]uint64, m *modulus) {
	// Each round adds q*p*2^(64*i), with q chosen so that limb i
	// becomes zero. After four rounds, the low half is zero and the
	// high half (plus one extra bit) holds a value lower than 2*p.
	var hi uint64
	for i := 0; i < 4; i++ {
		q := t[i] * m.n0
		var c uint64
		for j := 0; j < 4; j++ {
			ph, pl := bits.Mul64(q, m.p[j])
			var cc uint64
			pl, cc = bits.Add64(pl, c, 0)
			ph += cc
			t[i+j], cc = bits.Add64(t[i+j], pl, 0)
			c = ph + cc
		}
		for j := i + 4; j < 8; j++ {
			t[j], c = bits.Add64(t[j], c, 0)
		}
		hi += c
	}

	var r [4]uint64
	copy(r[:], t[4:])
	gf_condsub(d, &r, hi, m)
}

// Internal function for Montgomery multiplication: d <- a*b/R mod p.
// If a and b are the Montgomery representations of x and y, then d is
// the Montgomery representation of x*y.
// Parameters:
//   d    destination
//   a    first operand
//   b    second operand
//   m    modulus definition
func mont_mul(d, a, b *[4]uint64, m *modulus) {
	var t [8]uint64
	mul512(&t, a, b)
	mont_reduce(d, &t, m)
}

// Internal function for Montgomery squaring: d <- a^2/R mod p.
// Parameters:
//   d    destination
//   a    operand
//   m    modulus definition
func mont_sqr(d, a *[4]uint64, m *modulus) {
	mont_mul(d, a, a, m)
}

// Internal function for conversion into Montgomery form: d <- a*R mod p.
func mont_to(d, a *[4]uint64, m *modulus) {
	mont_mul(d, a, &m.r2, m)
}

// Internal function for conversion out of Montgomery form: d <- a/R mod p.
// This is a multiplication by the domain constant ri.
func mont_from(d, a *[4]uint64, m *modulus) {
	var t [8]uint64
	copy(t[:4], a[:])
	mont_reduce(d, &t, m)
}

// Internal function for comparing a value with zero. This function
// returns 1 if the value is equal to 0; otherwise, it returns 0.
func gf_iszero(a *[4]uint64) uint64 {
	t := a[0] | a[1] | a[2] | a[3]
	return 1 - ((t | -t) >> 63)
}

// Internal function for comparing two values. This function returns 1
// if the values are equal, 0 otherwise.
func gf_eq(a, b *[4]uint64) uint64 {
	var t [4]uint64
	for i := 0; i < 4; i++ {
		t[i] = a[i] ^ b[i]
	}
	return gf_iszero(&t)
}

// Internal function for encoding a field element into 32 bytes
// (unsigned big-endian convention). The encoded element is appended to
// the specified slice; the new slice (with the appended data) is returned.
func gf_encode(b []byte, a *[4]uint64) []byte {
	head, tail := prepareAppend(b, 32)
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint64(tail[8*i:], a[3-i])
	}
	return head
}

// Internal function for decoding a field element from 32 bytes
// (unsigned big-endian convention). If the source is not in the valid
// range (0..p-1), then the destination is set to all zeros, and 0 is
// returned; otherwise, 1 is returned.
func gf_decode(d *[4]uint64, src []byte, m *modulus) uint64 {
	if len(src) != 32 {
		*d = [4]uint64{}
		return 0
	}
	for i := 0; i < 4; i++ {
		d[3-i] = binary.BigEndian.Uint64(src[8*i:])
	}

	// Compare with p: the value is valid if d - p borrows.
	var cc uint64
	for i := 0; i < 4; i++ {
		_, cc = bits.Sub64(d[i], m.p[i], cc)
	}
	for i := 0; i < 4; i++ {
		d[i] &= -cc
	}
	return cc
}

// Extend a slice for appending n bytes. The two returned values are the
// new extended slice (no extra allocation if the original slice was large
// enough), and the sub-slice where data should be written.
func prepareAppend(b []byte, n int) (head, tail []byte) {
	len1 := len(b)
	len2 := len1 + n
	if cap(b) >= len2 {
		head = b[:len2]
	} else {
		head = make([]byte, len2)
		copy(head, b)
	}
	tail = head[len1:]
	return
}
