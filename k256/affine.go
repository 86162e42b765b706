package k256

import (
	gf "github.com/doubleodd/go-k256vec/internal/field"
	"github.com/pkg/errors"
)

// Get the affine coordinates (x, y) of P, as plain (non-Montgomery)
// field elements. For the point at infinity, ErrInfinity is returned.
func (P *Point) Affine() (x, y gf.GFk256, err error) {
	if P.IsInfinity() == 1 {
		return gf.GFk256_ZERO, gf.GFk256_ZERO, ErrInfinity
	}

	// v <- 1/Z (Montgomery form; the inversion remaps the plain
	// inverse of the stored value by R^2).
	var v, v2, v3 gf.GFk256
	if _, err = v.Inv(&P.z); err != nil {
		return gf.GFk256_ZERO, gf.GFk256_ZERO, errors.Wrap(err, "k256: affine conversion")
	}

	// v2 <- 1/Z^2
	// v3 <- 1/Z^3
	v2.Sqr(&v)
	v3.Mul(&v, &v2)

	// x <- X/Z^2, y <- Y/Z^3, then one extra multiplication by ri
	// to leave the Montgomery domain.
	x.Mul(&P.x, &v2).FromMont(&x)
	y.Mul(&P.y, &v3).FromMont(&y)
	return x, y, nil
}
