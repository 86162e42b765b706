package field

import (
	"crypto/sha512"
	"math/big"
)

// =====================================================================
// Custom PRNG (based on SHA-512) for reproducible tests.

type prng struct {
	buf [64]byte
	ptr int
}

// Initialize the PRNG with an explicit seed.
func (p *prng) init(seed string) {
	hv := sha512.Sum512([]byte(seed))
	copy(p.buf[:], hv[:])
	p.ptr = 0
}

// Fill the provided slice with pseudorandom bytes from the PRNG.
func (p *prng) generate(d []byte) {
	for len(d) > 0 {
		if p.ptr == 32 {
			hv := sha512.Sum512(p.buf[:])
			copy(p.buf[:], hv[:])
			p.ptr = 0
		}
		c := copy(d, p.buf[p.ptr:32])
		d = d[c:]
		p.ptr += c
	}
}

// Make a new random (reduced) field element from the PRNG.
func (p *prng) mkgf(d *GFk256) {
	var bb [32]byte
	p.generate(bb[:])
	var x big.Int
	x.SetBytes(bb[:])
	d.SetBig(&x)
}

// Get the test modulus, and R = 2^256, as big integers.
func testModulus() (p, r *big.Int) {
	p, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	r = new(big.Int).Lsh(big.NewInt(1), 256)
	return
}

// Edge-case operands: small values and values close to p.
func edgeValues() []GFk256 {
	p, _ := testModulus()
	var vv []GFk256
	for i := int64(0); i < 4; i++ {
		var a, b GFk256
		a.SetBig(big.NewInt(i))
		b.SetBig(new(big.Int).Sub(p, big.NewInt(i+1)))
		vv = append(vv, a, b)
	}
	return vv
}

// Get the string representation of a field element, which can be
// copy-pasted into Sage (provided that 'K' was defined as the field).
func gfToString(a *GFk256) string {
	return "K(" + a.String() + ")"
}
