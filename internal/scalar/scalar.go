package scalar

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// This file contains the scalar handling needed by the double-and-add
// driver: parsing of the scalar literal, and its decomposition into a
// sequence of bits. Scalars are public values (test vector inputs), so
// none of this is constant-time.

// ErrZeroScalar is returned when decomposing a scalar equal to zero.
var ErrZeroScalar = errors.New("scalar: zero scalar")

// ErrNegativeScalar is returned when decomposing a negative scalar.
var ErrNegativeScalar = errors.New("scalar: negative scalar")

// ErrInvalidScalar is returned by ParseHex on malformed input.
var ErrInvalidScalar = errors.New("scalar: invalid hexadecimal literal")

// Bits decomposes k into its binary representation, most significant
// bit first. Bits are extracted least significant first (by repeated
// halving until zero), then the sequence is reversed; the first returned
// bit is therefore always 1 and the length is k.BitLen(). The scalar
// must be strictly positive. k is not modified.
func Bits(k *big.Int) ([]byte, error) {
	switch k.Sign() {
	case 0:
		return nil, ErrZeroScalar
	case -1:
		return nil, errors.Wrapf(ErrNegativeScalar, "%#x", k)
	}

	var t big.Int
	t.Set(k)
	bb := make([]byte, 0, k.BitLen())
	for t.Sign() > 0 {
		bb = append(bb, byte(t.Bit(0)))
		t.Rsh(&t, 1)
	}
	Reverse(bb)
	return bb, nil
}

// Reverse reverses the provided bit sequence in place.
func Reverse(bb []byte) {
	for i, j := 0, len(bb)-1; i < j; i, j = i+1, j-1 {
		bb[i], bb[j] = bb[j], bb[i]
	}
}

// FromBits rebuilds the integer whose most-significant-first binary
// decomposition is bb.
func FromBits(bb []byte) *big.Int {
	k := new(big.Int)
	for _, b := range bb {
		k.Lsh(k, 1)
		if b != 0 {
			k.SetBit(k, 0, 1)
		}
	}
	return k
}

// ParseHex parses a hexadecimal scalar literal, with an optional "0x"
// prefix. Only the syntax is checked; use Bits() to validate the value.
func ParseHex(s string) (*big.Int, error) {
	t := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if t == "" {
		return nil, errors.Wrapf(ErrInvalidScalar, "%q", s)
	}
	k, ok := new(big.Int).SetString(t, 16)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidScalar, "%q", s)
	}
	return k, nil
}
