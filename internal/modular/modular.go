// Package modular provides integer-theoretic primitives (greatest common
// divisor and modular inverse) over an arbitrary modulus. They operate on
// math/big integers and never modify their inputs.
package modular

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrNoInverse is returned by ModInverse when the value is not coprime
// with the modulus.
var ErrNoInverse = errors.New("modular: value has no inverse")

// Gcd returns the greatest common divisor of a and b, computed with the
// Euclidean algorithm. Both values must be non-negative; Gcd(0, b) == b.
func Gcd(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	var r big.Int
	for x.Sign() != 0 {
		// (x, y) <- (y mod x, x)
		r.Mod(y, x)
		y.Set(x)
		x.Set(&r)
	}
	return y
}

// ModInverse returns x in [0, m) such that a*x = 1 mod m, using the
// extended Euclidean algorithm. ErrNoInverse (wrapped) is returned if
// gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, errors.Errorf("modular: invalid modulus %s", m.String())
	}
	var ar big.Int
	ar.Mod(a, m)
	if Gcd(&ar, m).Cmp(big.NewInt(1)) != 0 {
		return nil, errors.Wrapf(ErrNoInverse, "%#x mod %#x", a, m)
	}

	// Invariant: u1*a = u3 (mod m) and v1*a = v3 (mod m).
	u1 := big.NewInt(1)
	u3 := new(big.Int).Set(&ar)
	v1 := new(big.Int)
	v3 := new(big.Int).Set(m)
	var q, t big.Int
	for v3.Sign() != 0 {
		q.Quo(u3, v3)

		t.Mul(&q, v1)
		t.Sub(u1, &t)
		u1, v1 = v1, new(big.Int).Set(&t)

		t.Mul(&q, v3)
		t.Sub(u3, &t)
		u3, v3 = v3, new(big.Int).Set(&t)
	}
	return u1.Mod(u1, m), nil
}
