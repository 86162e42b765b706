package vector

import (
	"bytes"
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

// ErrCrossCheck is returned when the independent implementation does
// not agree with the computed vector.
var ErrCrossCheck = errors.New("vector: cross-check mismatch")

// CrossCheck recomputes Scalar*Base with the decred secp256k1 package,
// starting from the affine form of the base point, and compares the
// affine result with (ResultX, ResultY).
func CrossCheck(v *Vector) error {
	var bx, by secp256k1.FieldVal
	xb := v.BaseX.Bytes()
	yb := v.BaseY.Bytes()
	if bx.SetBytes(&xb) != 0 || by.SetBytes(&yb) != 0 {
		return errors.Wrap(ErrCrossCheck, "base coordinates overflow")
	}
	var one secp256k1.FieldVal
	one.SetInt(1)
	base := secp256k1.MakeJacobianPoint(&bx, &by, &one)

	var kb [32]byte
	if v.Scalar.BitLen() > 256 {
		return errors.Wrap(ErrCrossCheck, "scalar does not fit in 256 bits")
	}
	v.Scalar.FillBytes(kb[:])
	var k secp256k1.ModNScalar
	k.SetByteSlice(kb[:])

	var res secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&k, &base, &res)
	if res.Z.Normalize().IsZero() {
		return errors.Wrap(ErrCrossCheck, "reference result is the point at infinity")
	}
	res.ToAffine()

	rx := v.ResultX.Bytes()
	ry := v.ResultY.Bytes()
	if !bytes.Equal(res.X.Bytes()[:], rx[:]) || !bytes.Equal(res.Y.Bytes()[:], ry[:]) {
		return errors.Wrapf(ErrCrossCheck, "expected x = %s, y = %s",
			hex.EncodeToString(res.X.Bytes()[:]), hex.EncodeToString(res.Y.Bytes()[:]))
	}
	return nil
}
