package field

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/doubleodd/go-k256vec/internal/modular"
	"github.com/pkg/errors"
)

// This file implements computations in the field of integers
// modulo p = 2^256 - 2^32 - 977 (the secp256k1 base field), with
// elements kept in Montgomery form (R = 2^256).

// =======================================================================
// Field GFk256: integers modulo p = 2^256 - 2^32 - 977
type GFk256 [4]uint64

var k256Modulus = modulus{
	p: [4]uint64{
		0xFFFFFFFEFFFFFC2F, 0xFFFFFFFFFFFFFFFF,
		0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF},
	n0: 0xD838091DD2253531,
	ri: [4]uint64{
		0xD838091D0868192A, 0xBCB223FEDC24A059,
		0x9C46C2C295F2B761, 0xC9BD190515538399},
	r2: [4]uint64{
		0x000007A2000E90A1, 0x0000000000000001,
		0x0000000000000000, 0x0000000000000000},
	r3: [4]uint64{
		0x002BB1E33795F671, 0x0000000100000B73,
		0x0000000000000000, 0x0000000000000000},
}

// ErrOutOfRange is returned when a decoded value is not lower than the
// field modulus.
var ErrOutOfRange = errors.New("field: value out of range")

// ErrInvalidHex is returned by SetHex on malformed input.
var ErrInvalidHex = errors.New("field: invalid hexadecimal literal")

// Field element of value 0.
var GFk256_ZERO = GFk256{0, 0, 0, 0}

// Field element of value 1 (Montgomery form, i.e. R mod p).
var GFk256_ONE = GFk256{0x00000001000003D1, 0, 0, 0}

// Field element of value 7 (Montgomery form); this is the curve
// constant b.
var GFk256_SEVEN = GFk256{0x0000000700001AB7, 0, 0, 0}

// Domain constant ri = 1/2^256 mod p, as a plain integer.
var GFk256_RI = GFk256(k256Modulus.ri)

// R^2 mod p, as a plain integer.
var GFk256_R2 = GFk256(k256Modulus.r2)

// Modulus p as a big integer.
func K256Modulus() *big.Int {
	var x GFk256 = GFk256(k256Modulus.p)
	return x.Big()
}

// d <- a
func (d *GFk256) Set(a *GFk256) *GFk256 {
	copy(d[:], a[:])
	return d
}

// d <- x (plain integer, no Montgomery conversion)
func (d *GFk256) SetUint64(x uint64) *GFk256 {
	*d = GFk256{x, 0, 0, 0}
	return d
}

// d <- a + b
func (d *GFk256) Add(a, b *GFk256) *GFk256 {
	gf_add((*[4]uint64)(d), (*[4]uint64)(a), (*[4]uint64)(b), &k256Modulus)
	return d
}

// d <- a - b
func (d *GFk256) Sub(a, b *GFk256) *GFk256 {
	gf_sub((*[4]uint64)(d), (*[4]uint64)(a), (*[4]uint64)(b), &k256Modulus)
	return d
}

// d <- -a
func (d *GFk256) Neg(a *GFk256) *GFk256 {
	gf_neg((*[4]uint64)(d), (*[4]uint64)(a), &k256Modulus)
	return d
}

// d <- a/2
func (d *GFk256) Half(a *GFk256) *GFk256 {
	gf_half((*[4]uint64)(d), (*[4]uint64)(a), &k256Modulus)
	return d
}

// d <- a*2^n
// This is a sequence of n modular doublings; it works in both the plain
// and the Montgomery domains.
func (d *GFk256) Lsh(a *GFk256, n uint) *GFk256 {
	if d != a {
		d.Set(a)
	}
	for ; n > 0; n-- {
		gf_add((*[4]uint64)(d), (*[4]uint64)(d), (*[4]uint64)(d), &k256Modulus)
	}
	return d
}

// d <- a*w, for a small plain integer w (a is in Montgomery form, and so
// is d).
func (d *GFk256) MulSmall(a *GFk256, w uint64) *GFk256 {
	var t [4]uint64
	t[0] = w
	mont_to(&t, &t, &k256Modulus)
	mont_mul((*[4]uint64)(d), (*[4]uint64)(a), &t, &k256Modulus)
	return d
}

// d <- a*b*ri  (Montgomery multiplication)
func (d *GFk256) Mul(a, b *GFk256) *GFk256 {
	mont_mul((*[4]uint64)(d), (*[4]uint64)(a), (*[4]uint64)(b), &k256Modulus)
	return d
}

// d <- a^2*ri  (Montgomery squaring)
func (d *GFk256) Sqr(a *GFk256) *GFk256 {
	mont_sqr((*[4]uint64)(d), (*[4]uint64)(a), &k256Modulus)
	return d
}

// d <- a*R  (plain integer to Montgomery form)
func (d *GFk256) ToMont(a *GFk256) *GFk256 {
	mont_to((*[4]uint64)(d), (*[4]uint64)(a), &k256Modulus)
	return d
}

// d <- a*ri  (Montgomery form to plain integer)
func (d *GFk256) FromMont(a *GFk256) *GFk256 {
	mont_from((*[4]uint64)(d), (*[4]uint64)(a), &k256Modulus)
	return d
}

// d <- 1/a, both values in Montgomery form.
// The inverse of the raw representation is computed with the extended
// Euclidean algorithm; this yields (1/x)/R when a = x*R, which is then
// multiplied by R^2 (a Montgomery multiplication by R^3) to get back to
// the Montgomery form (1/x)*R. If a is zero, d is left unchanged and an
// error wrapping modular.ErrNoInverse is returned.
func (d *GFk256) Inv(a *GFk256) (*GFk256, error) {
	v, err := modular.ModInverse(a.Big(), K256Modulus())
	if err != nil {
		return d, errors.Wrap(err, "field: inverting element")
	}
	var t GFk256
	t.SetBig(v)
	mont_mul((*[4]uint64)(d), (*[4]uint64)(&t), &k256Modulus.r3, &k256Modulus)
	return d, nil
}

// Returns 1 if d == 0, or 0 otherwise.
func (d *GFk256) IsZero() uint64 {
	return gf_iszero((*[4]uint64)(d))
}

// Returns 1 if d == a, or 0 otherwise.
func (d *GFk256) Eq(a *GFk256) uint64 {
	return gf_eq((*[4]uint64)(d), (*[4]uint64)(a))
}

// Encode element into exactly 32 bytes (big-endian). The encoding is
// appended to the provided slice, and the resulting slice is returned.
// The value is encoded as is (no conversion out of Montgomery form).
func (d *GFk256) Encode(dst []byte) []byte {
	return gf_encode(dst, (*[4]uint64)(d))
}

// Encode element into exactly 32 bytes (big-endian).
func (d *GFk256) Bytes() [32]byte {
	var b [32]byte
	d.Encode(b[:0])
	return b
}

// Decode element from 32 bytes (big-endian). If the source is invalid
// (wrong length or out of range), then the decoded value is zero, and 0
// is returned; otherwise, 1 is returned.
func (d *GFk256) Decode(src []byte) uint64 {
	return gf_decode((*[4]uint64)(d), src, &k256Modulus)
}

// d <- x mod p (plain integer; negative values wrap around).
func (d *GFk256) SetBig(x *big.Int) *GFk256 {
	var t big.Int
	t.Mod(x, K256Modulus())
	var b [32]byte
	t.FillBytes(b[:])
	d.Decode(b[:])
	return d
}

// Returns the raw representation of d as a big integer.
func (d *GFk256) Big() *big.Int {
	b := d.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Set d from a hexadecimal literal (optional "0x" prefix). The value is
// taken as is, and must be lower than p.
func (d *GFk256) SetHex(s string) error {
	t := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	x, ok := new(big.Int).SetString(t, 16)
	if !ok || t == "" || x.Sign() < 0 {
		return errors.Wrapf(ErrInvalidHex, "%q", s)
	}
	if x.BitLen() > 256 {
		return errors.Wrapf(ErrOutOfRange, "%q", s)
	}
	var b [32]byte
	x.FillBytes(b[:])
	if d.Decode(b[:]) == 0 {
		return errors.Wrapf(ErrOutOfRange, "%q", s)
	}
	return nil
}

// String returns the raw representation as a "0x"-prefixed hexadecimal
// integer without leading zeros.
func (d GFk256) String() string {
	return fmt.Sprintf("%#x", d.Big())
}
