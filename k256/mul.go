package k256

import (
	"math/big"

	"github.com/doubleodd/go-k256vec/internal/scalar"
	"github.com/pkg/errors"
)

// Multiply a point Q by a strictly positive scalar k, with the
// left-to-right double-and-add method. Q must not be the point at
// infinity. If k is zero or negative, P is not modified and an error
// wrapping scalar.ErrZeroScalar or scalar.ErrNegativeScalar is returned.
// A pointer to this structure (P) is returned.
func (P *Point) Mul(Q *Point, k *big.Int) (*Point, error) {
	bb, err := scalar.Bits(k)
	if err != nil {
		return P, errors.Wrap(err, "k256: point multiplication")
	}
	return P.MulBits(Q, bb), nil
}

// Multiply a point Q by the scalar whose binary decomposition (most
// significant bit first) is bb. Leading zero bits are skipped; if bb
// contains no non-zero bit, P is set to the point at infinity.
//
// The accumulator starts at Q, which accounts for the leading 1 bit.
// Then, for each subsequent bit, the accumulator is doubled, and Q is
// added to it when the bit is 1. Since additions always involve Q
// itself, the incomplete formulas are safe as long as no intermediate
// value equals Q or -Q, i.e. as long as the scalar is lower than the
// order of Q minus one.
// A pointer to this structure (P) is returned.
func (P *Point) MulBits(Q *Point, bb []byte) *Point {
	for len(bb) > 0 && bb[0] == 0 {
		bb = bb[1:]
	}
	if len(bb) == 0 {
		return P.Infinity()
	}

	// Q is copied since P may be the same structure.
	var base, acc Point
	base.Set(Q)
	acc.Set(Q)
	for _, b := range bb[1:] {
		acc.Double(&acc)
		if b != 0 {
			acc.Add(&acc, &base)
		}
	}
	return P.Set(&acc)
}
