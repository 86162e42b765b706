package k256

import (
	gf "github.com/doubleodd/go-k256vec/internal/field"
	"github.com/pkg/errors"
)

// This file implements operations on secp256k1 curve points
// (y^2 = x^3 + 7 over the integers modulo p = 2^256 - 2^32 - 977).
//
// API: a point is represented in memory by a Point structure, which
// holds Jacobian coordinates (X, Y, Z) with all three values in
// Montgomery form; the affine point is (X/Z^2, Y/Z^3). These structures
// are mutable; the various functions such as Add() modify the point on
// which they are called. It is always acceptable to also use the
// destination structure as one of the operands. All such functions
// return a pointer to the structure on which they were called, so that
// calls may be syntactically chained.
//
// The addition formulas are incomplete: Add() must not be called with
// two equal points, two opposite points, or the point at infinity.
// None of these functions is constant-time.

// Point is the type for a secp256k1 point in Jacobian coordinates.
//
// The zero value has Z = 0, i.e. it is the point at infinity, which is
// not a valid operand for Add() or Double().
type Point struct {
	x, y, z gf.GFk256
}

// ErrNotOnCurve is returned when affine coordinates do not satisfy the
// curve equation.
var ErrNotOnCurve = errors.New("k256: point is not on the curve")

// ErrInfinity is returned when affine coordinates are requested for the
// point at infinity.
var ErrInfinity = errors.New("k256: point at infinity")

// Preallocated conventional generator point (affine, Montgomery form).
// Do not modify.
var k256Generator = Point{
	x: gf.GFk256{
		0xD7362E5A487E2097, 0x231E295329BC66DB,
		0x979F48C033FD129C, 0x9981E643E9089F48},
	y: gf.GFk256{
		0xB15EA6D2D3DBABE2, 0x8DFC5D5D1F1DC64D,
		0x70B6B59AAC19C136, 0xCF3F851FD4A582D6},
	z: gf.GFk256_ONE,
}

// Create a new point from Jacobian coordinates, all three of them being
// already in Montgomery form. No validation is performed.
func NewPoint(x, y, z *gf.GFk256) *Point {
	P := new(Point)
	P.x = *x
	P.y = *y
	P.z = *z
	return P
}

// Set the point P to the conventional generator (G).
// A pointer to this structure is returned.
func (P *Point) Generator() *Point {
	*P = k256Generator
	return P
}

// Set the point P to the point at infinity, represented as (1, 1, 0).
// A pointer to this structure is returned.
func (P *Point) Infinity() *Point {
	P.x = gf.GFk256_ONE
	P.y = gf.GFk256_ONE
	P.z = gf.GFk256_ZERO
	return P
}

// Set the point P from affine coordinates x and y, given as plain
// (non-Montgomery) field elements. If (x, y) is not on the curve, then
// P is left unmodified and ErrNotOnCurve is returned.
func (P *Point) SetAffine(x, y *gf.GFk256) error {
	var Q Point
	Q.x.ToMont(x)
	Q.y.ToMont(y)
	Q.z = gf.GFk256_ONE
	if Q.IsOnCurve() == 0 {
		return errors.Wrapf(ErrNotOnCurve, "x = %s, y = %s", x, y)
	}
	*P = Q
	return nil
}

// Copy a point structure into another.
// A pointer to this structure is returned.
func (P *Point) Set(Q *Point) *Point {
	P.x = Q.x
	P.y = Q.y
	P.z = Q.z
	return P
}

// Get the Jacobian coordinates of P (Montgomery form).
func (P *Point) Coordinates() (x, y, z gf.GFk256) {
	return P.x, P.y, P.z
}

// Test whether a point is the point at infinity (Z = 0).
// Returned value is 1 for the point at infinity, 0 otherwise.
func (P *Point) IsInfinity() uint64 {
	return P.z.IsZero()
}

// Test whether a point is on the curve: Y^2 = X^3 + 7*Z^6. The point
// at infinity is considered to be on the curve.
// Returned value is 1 if the point is on the curve, 0 otherwise.
func (P *Point) IsOnCurve() uint64 {
	if P.IsInfinity() == 1 {
		return 1
	}
	var x3, y2, z6 gf.GFk256
	x3.Sqr(&P.x).Mul(&x3, &P.x)
	y2.Sqr(&P.y)
	z6.Sqr(&P.z).Mul(&z6, &P.z).Sqr(&z6)
	z6.Mul(&z6, &gf.GFk256_SEVEN)
	z6.Add(&z6, &x3)
	return y2.Eq(&z6)
}

// Compare two points for equality. Since the Jacobian representation
// is not unique, coordinates are cross-multiplied:
//   X1*Z2^2 == X2*Z1^2  and  Y1*Z2^3 == Y2*Z1^3
// Returned value is 1 if the points are equal, 0 otherwise.
func (P *Point) Equal(Q *Point) uint64 {
	pi := P.IsInfinity()
	qi := Q.IsInfinity()
	if pi == 1 || qi == 1 {
		return pi & qi
	}

	var u1, u2, t1, t2 gf.GFk256
	u1.Sqr(&P.z)
	u2.Sqr(&Q.z)
	t1.Mul(&P.x, &u2)
	t2.Mul(&Q.x, &u1)
	if t1.Eq(&t2) == 0 {
		return 0
	}
	u1.Mul(&u1, &P.z)
	u2.Mul(&u2, &Q.z)
	t1.Mul(&P.y, &u2)
	t2.Mul(&Q.y, &u1)
	return t1.Eq(&t2)
}

// Set P to the opposite of point Q.
// A pointer to this structure (P) is returned.
func (P *Point) Neg(Q *Point) *Point {
	P.x = Q.x
	P.y.Neg(&Q.y)
	P.z = Q.z
	return P
}

// Set this point (P) to the double of the provided point Q.
// Q must not be the point at infinity.
// A pointer to this structure (P) is returned.
func (P *Point) Double(Q *Point) *Point {
	// Since a = 0 on secp256k1:
	//   S  = 4*X*Y^2
	//   M  = 3*X^2
	//   X' = M^2 - 2*S
	//   Y' = M*(S - X') - 8*Y^4
	//   Z' = 2*Y*Z
	var y2, s, m, t, x3, y3, z3 gf.GFk256

	y2.Sqr(&Q.y)                   // y2 <- Y^2
	s.Mul(&Q.x, &y2).Lsh(&s, 2)    // s <- 4*X*Y^2
	m.Sqr(&Q.x)                    // m <- X^2
	t.Lsh(&m, 1)                   // t <- 2*X^2
	m.Add(&m, &t)                  // m <- 3*X^2
	x3.Sqr(&m).Sub(&x3, &s)        // x3 <- M^2 - S
	x3.Sub(&x3, &s)                // x3 <- M^2 - 2*S
	y3.Sub(&s, &x3).Mul(&y3, &m)   // y3 <- M*(S - X')
	t.Sqr(&y2).Lsh(&t, 3)          // t <- 8*Y^4
	y3.Sub(&y3, &t)                // y3 <- M*(S - X') - 8*Y^4
	z3.Mul(&Q.y, &Q.z).Lsh(&z3, 1) // z3 <- 2*Y*Z

	P.x = x3
	P.y = y3
	P.z = z3
	return P
}

// Set this point to the sum of the two provided points.
// The two points must be distinct, not opposite of each other, and not
// the point at infinity; this is NOT checked (h = 0 then yields Z = 0
// and meaningless X and Y).
// A pointer to this structure (P) is returned.
func (P *Point) Add(P1, P2 *Point) *Point {
	var z12, z22, u1, u2, s1, s2, h, r gf.GFk256
	var h2, h3, uh2, t, x3, y3, z3 gf.GFk256

	// u1 <- X1*Z2^2
	// u2 <- X2*Z1^2
	// s1 <- Y1*Z2^3
	// s2 <- Y2*Z1^3
	z22.Sqr(&P2.z)
	z12.Sqr(&P1.z)
	u1.Mul(&P1.x, &z22)
	u2.Mul(&P2.x, &z12)
	s1.Mul(&z22, &P2.z).Mul(&s1, &P1.y)
	s2.Mul(&z12, &P1.z).Mul(&s2, &P2.y)

	// h <- u2 - u1
	// r <- s2 - s1
	h.Sub(&u2, &u1)
	r.Sub(&s2, &s1)

	// X3 <- r^2 - h^3 - 2*u1*h^2
	h2.Sqr(&h)
	h3.Mul(&h2, &h)
	uh2.Mul(&u1, &h2)
	t.Lsh(&uh2, 1)
	x3.Sqr(&r).Sub(&x3, &h3).Sub(&x3, &t)

	// Y3 <- r*(u1*h^2 - X3) - s1*h^3
	y3.Sub(&uh2, &x3).Mul(&y3, &r)
	t.Mul(&s1, &h3)
	y3.Sub(&y3, &t)

	// Z3 <- h*Z1*Z2
	z3.Mul(&h, &P1.z).Mul(&z3, &P2.z)

	P.x = x3
	P.y = y3
	P.z = z3
	return P
}

// Set this point to the difference of the two provided points (P1 - P2).
// Same restrictions as Add().
// A pointer to this structure (P) is returned.
func (P *Point) Sub(P1, P2 *Point) *Point {
	var P2n Point
	P2n.Neg(P2)
	return P.Add(P1, &P2n)
}

// Set this point (P) to (2^n)*Q (i.e. perform n successive doublings).
// A pointer to this structure (P) is returned.
func (P *Point) DoubleX(Q *Point, n uint) *Point {
	P.Set(Q)
	for ; n > 0; n-- {
		P.Double(P)
	}
	return P
}
