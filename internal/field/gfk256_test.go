package field

import (
	"math/big"
	"testing"

	"github.com/doubleodd/go-k256vec/internal/modular"
	"github.com/pkg/errors"
)

// Tests for GFk256 (integers modulo p = 2^256 - 2^32 - 977, Montgomery
// representation with R = 2^256).

// =====================================================================

func TestGFk256Constants(t *testing.T) {
	p, r := testModulus()
	if K256Modulus().Cmp(p) != 0 {
		t.Fatalf("ERR modulus: %s\n", K256Modulus().Text(16))
	}

	// ri*R = 1 mod p
	var z big.Int
	z.Mul(GFk256_RI.Big(), r).Mod(&z, p)
	if z.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("ERR ri*R = %s\n", z.Text(16))
	}

	// n0*p = -1 mod 2^64
	if k256Modulus.n0*k256Modulus.p[0] != 0xFFFFFFFFFFFFFFFF {
		t.Fatalf("ERR n0\n")
	}

	checks := []struct {
		name string
		v    *GFk256
		exp  *big.Int
	}{
		{"ONE", &GFk256_ONE, new(big.Int).Mod(r, p)},
		{"SEVEN", &GFk256_SEVEN, new(big.Int).Mod(new(big.Int).Mul(big.NewInt(7), r), p)},
		{"R2", &GFk256_R2, new(big.Int).Exp(r, big.NewInt(2), p)},
		{"R3", (*GFk256)(&k256Modulus.r3), new(big.Int).Exp(r, big.NewInt(3), p)},
	}
	for _, c := range checks {
		if c.v.Big().Cmp(c.exp) != 0 {
			t.Fatalf("ERR constant %s:\nexp = %s\ngot = %s\n", c.name, c.exp.Text(16), c.v.Big().Text(16))
		}
	}
}

func TestGFk256Add(t *testing.T) {
	var rng prng
	rng.init("test add GFk256")
	p, _ := testModulus()
	edges := edgeValues()
	var a, b, c GFk256
	for i := 0; i < 20000; i++ {
		if i < len(edges)*len(edges) {
			a = edges[i/len(edges)]
			b = edges[i%len(edges)]
		} else {
			rng.mkgf(&a)
			rng.mkgf(&b)
		}
		c.Add(&a, &b)

		var zd big.Int
		zd.Add(a.Big(), b.Big()).Mod(&zd, p)
		if c.Big().Cmp(&zd) != 0 {
			t.Fatalf("ERR add:\na = %s\nb = %s\nc = %s\n", gfToString(&a), gfToString(&b), gfToString(&c))
		}
	}
}

func TestGFk256Sub(t *testing.T) {
	var rng prng
	rng.init("test sub GFk256")
	p, _ := testModulus()
	edges := edgeValues()
	var a, b, c GFk256
	for i := 0; i < 20000; i++ {
		if i < len(edges)*len(edges) {
			a = edges[i/len(edges)]
			b = edges[i%len(edges)]
		} else {
			rng.mkgf(&a)
			rng.mkgf(&b)
		}

		c.Sub(&a, &b)
		var zd big.Int
		zd.Sub(a.Big(), b.Big()).Mod(&zd, p)
		if c.Big().Cmp(&zd) != 0 {
			t.Fatalf("ERR sub:\na = %s\nb = %s\nc = %s\n", gfToString(&a), gfToString(&b), gfToString(&c))
		}

		c.Neg(&a)
		zd.Neg(a.Big()).Mod(&zd, p)
		if c.Big().Cmp(&zd) != 0 {
			t.Fatalf("ERR neg:\na = %s\nc = %s\n", gfToString(&a), gfToString(&c))
		}
	}
}

func TestGFk256Half(t *testing.T) {
	var rng prng
	rng.init("test half GFk256")
	p, _ := testModulus()
	edges := edgeValues()
	var a, c, d GFk256
	for i := 0; i < 20000; i++ {
		if i < len(edges) {
			a = edges[i]
		} else {
			rng.mkgf(&a)
		}
		c.Half(&a)
		d.Add(&c, &c)
		if d.Eq(&a) != 1 {
			t.Fatalf("ERR half:\na = %s\nc = %s\n", gfToString(&a), gfToString(&c))
		}

		// a*2^5
		c.Lsh(&a, 5)
		var zd big.Int
		zd.Lsh(a.Big(), 5).Mod(&zd, p)
		if c.Big().Cmp(&zd) != 0 {
			t.Fatalf("ERR lsh:\na = %s\nc = %s\n", gfToString(&a), gfToString(&c))
		}
	}
}

func TestGFk256Mul(t *testing.T) {
	var rng prng
	rng.init("test mul GFk256")
	p, _ := testModulus()
	ri := GFk256_RI.Big()
	edges := edgeValues()
	var a, b, c, d GFk256
	for i := 0; i < 20000; i++ {
		if i < len(edges)*len(edges) {
			a = edges[i/len(edges)]
			b = edges[i%len(edges)]
		} else {
			rng.mkgf(&a)
			rng.mkgf(&b)
		}

		// Montgomery multiplication is a*b*ri mod p.
		c.Mul(&a, &b)
		var zd big.Int
		zd.Mul(a.Big(), b.Big()).Mul(&zd, ri).Mod(&zd, p)
		if c.Big().Cmp(&zd) != 0 {
			t.Fatalf("ERR mul:\na = %s\nb = %s\nc = %s\n", gfToString(&a), gfToString(&b), gfToString(&c))
		}

		c.Sqr(&a)
		d.Mul(&a, &a)
		if c.Eq(&d) != 1 {
			t.Fatalf("ERR sqr:\na = %s\nc = %s\n", gfToString(&a), gfToString(&c))
		}

		// Chained products: a*b*a in true values needs two ri
		// corrections.
		c.Mul(&a, &b).Mul(&c, &a)
		zd.Mul(a.Big(), b.Big()).Mul(&zd, a.Big()).Mul(&zd, ri).Mul(&zd, ri).Mod(&zd, p)
		if c.Big().Cmp(&zd) != 0 {
			t.Fatalf("ERR mul chain:\na = %s\nb = %s\nc = %s\n", gfToString(&a), gfToString(&b), gfToString(&c))
		}

		c.MulSmall(&a, uint64(i))
		zd.Mul(a.Big(), big.NewInt(int64(i))).Mod(&zd, p)
		if c.Big().Cmp(&zd) != 0 {
			t.Fatalf("ERR mulsmall:\na = %s\nc = %s\n", gfToString(&a), gfToString(&c))
		}
	}
}

func TestGFk256MontRoundTrip(t *testing.T) {
	var rng prng
	rng.init("test mont GFk256")
	p, _ := testModulus()
	var a, b, am, bm, c GFk256
	for i := 0; i < 20000; i++ {
		rng.mkgf(&a)
		rng.mkgf(&b)
		am.ToMont(&a)
		bm.ToMont(&b)

		c.FromMont(&am)
		if c.Eq(&a) != 1 {
			t.Fatalf("ERR from/to:\na = %s\nc = %s\n", gfToString(&a), gfToString(&c))
		}

		c.Mul(&am, &bm).FromMont(&c)
		var zd big.Int
		zd.Mul(a.Big(), b.Big()).Mod(&zd, p)
		if c.Big().Cmp(&zd) != 0 {
			t.Fatalf("ERR mont round trip:\na = %s\nb = %s\nc = %s\n", gfToString(&a), gfToString(&b), gfToString(&c))
		}
	}

	// Montgomery one is neutral for multiplication.
	rng.mkgf(&a)
	c.Mul(&a, &GFk256_ONE)
	if c.Eq(&a) != 1 {
		t.Fatalf("ERR mul by one:\na = %s\nc = %s\n", gfToString(&a), gfToString(&c))
	}
}

func TestGFk256Inv(t *testing.T) {
	var rng prng
	rng.init("test inv GFk256")
	p, r := testModulus()
	var a, c, d GFk256
	for i := 0; i < 2000; i++ {
		if i == 0 {
			a = GFk256_ONE
		} else {
			rng.mkgf(&a)
		}
		if _, err := c.Inv(&a); err != nil {
			t.Fatalf("ERR inv: %v\n", err)
		}

		// Montgomery product of a and its inverse is Montgomery one.
		d.Mul(&a, &c)
		if d.Eq(&GFk256_ONE) != 1 {
			t.Fatalf("ERR inv:\na = %s\nc = %s\n", gfToString(&a), gfToString(&c))
		}

		// Same thing with the plain inverse of the raw value, scaled by R^2.
		var zd big.Int
		zd.ModInverse(a.Big(), p).Mul(&zd, r).Mul(&zd, r).Mod(&zd, p)
		if c.Big().Cmp(&zd) != 0 {
			t.Fatalf("ERR inv (big):\na = %s\nc = %s\n", gfToString(&a), gfToString(&c))
		}
	}

	a = GFk256_ZERO
	c = GFk256_SEVEN
	_, err := c.Inv(&a)
	if errors.Cause(err) != modular.ErrNoInverse {
		t.Fatalf("ERR inv zero: %v\n", err)
	}
	if c.Eq(&GFk256_SEVEN) != 1 {
		t.Fatalf("ERR inv zero modified destination: %s\n", gfToString(&c))
	}
}

func TestGFk256EncodeDecode(t *testing.T) {
	var rng prng
	rng.init("test encode GFk256")
	var a, c GFk256
	for i := 0; i < 1000; i++ {
		rng.mkgf(&a)
		bb := a.Encode(nil)
		if len(bb) != 32 {
			t.Fatalf("ERR encode length: %d\n", len(bb))
		}
		if c.Decode(bb) != 1 || c.Eq(&a) != 1 {
			t.Fatalf("ERR decode:\na = %s\nc = %s\n", gfToString(&a), gfToString(&c))
		}
		if err := c.SetHex(a.String()); err != nil || c.Eq(&a) != 1 {
			t.Fatalf("ERR hex:\na = %s\nc = %s (%v)\n", gfToString(&a), gfToString(&c), err)
		}
	}

	// p itself is not a valid encoding.
	pp := GFk256(k256Modulus.p)
	pb := pp.Bytes()
	c = GFk256_SEVEN
	if c.Decode(pb[:]) != 0 || c.IsZero() != 1 {
		t.Fatalf("ERR decode of p accepted\n")
	}
	if c.Decode(pb[1:]) != 0 {
		t.Fatalf("ERR decode of short input accepted\n")
	}

	for _, s := range []string{"", "0x", "0xZZ", "-0x5", "0x-5"} {
		if err := c.SetHex(s); errors.Cause(err) != ErrInvalidHex {
			t.Fatalf("ERR hex %q accepted: %v\n", s, err)
		}
	}
	if err := c.SetHex("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"); errors.Cause(err) != ErrOutOfRange {
		t.Fatalf("ERR hex p accepted: %v\n", err)
	}
	if err := c.SetHex("0x1" + "0000000000000000000000000000000000000000000000000000000000000000"); errors.Cause(err) != ErrOutOfRange {
		t.Fatalf("ERR hex 2^256 accepted: %v\n", err)
	}
	if err := c.SetHex("0X1000003D1"); err != nil || c.Eq(&GFk256_ONE) != 1 {
		t.Fatalf("ERR hex one: %v\n", err)
	}
	if s := GFk256_ZERO.String(); s != "0x0" {
		t.Fatalf("ERR zero string: %s\n", s)
	}
}
