package scalar

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
)

func TestBits(t *testing.T) {
	k, err := ParseHex("0x826fffff656879890900000000000000000000000000000000fffffe643")
	if err != nil {
		t.Fatalf("ERR parse: %v\n", err)
	}
	orig := new(big.Int).Set(k)
	bb, err := Bits(k)
	if err != nil {
		t.Fatalf("ERR bits: %v\n", err)
	}
	if k.Cmp(orig) != 0 {
		t.Fatalf("ERR bits modified the scalar\n")
	}
	if len(bb) != 236 || len(bb) != k.BitLen() {
		t.Fatalf("ERR bit length: %d\n", len(bb))
	}
	if bb[0] != 1 {
		t.Fatalf("ERR leading bit: %d\n", bb[0])
	}
	// 0x826f... starts with 1000 0010 0110 1111
	exp := []byte{1, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1, 1}
	for i := range exp {
		if bb[i] != exp[i] {
			t.Fatalf("ERR bit %d: %d\n", i, bb[i])
		}
	}
	// ...e643 ends with 0110 0100 0011
	tail := []byte{0, 1, 1, 0, 0, 1, 0, 0, 0, 0, 1, 1}
	for i := range tail {
		if bb[len(bb)-len(tail)+i] != tail[i] {
			t.Fatalf("ERR tail bit %d\n", i)
		}
	}
	if FromBits(bb).Cmp(k) != 0 {
		t.Fatalf("ERR bits round trip\n")
	}
}

func TestBitsSmall(t *testing.T) {
	cases := []struct {
		k   int64
		exp []byte
	}{
		{1, []byte{1}},
		{2, []byte{1, 0}},
		{3, []byte{1, 1}},
		{5, []byte{1, 0, 1}},
		{12, []byte{1, 1, 0, 0}},
	}
	for _, c := range cases {
		bb, err := Bits(big.NewInt(c.k))
		if err != nil {
			t.Fatalf("ERR bits(%d): %v\n", c.k, err)
		}
		if string(bb) != string(c.exp) {
			t.Fatalf("ERR bits(%d) = %v\n", c.k, bb)
		}
	}
}

func TestBitsInvalid(t *testing.T) {
	if _, err := Bits(new(big.Int)); errors.Cause(err) != ErrZeroScalar {
		t.Fatalf("ERR zero scalar: %v\n", err)
	}
	if _, err := Bits(big.NewInt(-3)); errors.Cause(err) != ErrNegativeScalar {
		t.Fatalf("ERR negative scalar: %v\n", err)
	}
}

func TestParseHex(t *testing.T) {
	for _, s := range []string{"ff", "0xff", "0XFF", "00ff"} {
		k, err := ParseHex(s)
		if err != nil || k.Int64() != 255 {
			t.Fatalf("ERR parse %q: %v, %v\n", s, k, err)
		}
	}
	for _, s := range []string{"", "0x", "0xg1", "12 34"} {
		if _, err := ParseHex(s); errors.Cause(err) != ErrInvalidScalar {
			t.Fatalf("ERR parse %q accepted: %v\n", s, err)
		}
	}
}

func TestReverse(t *testing.T) {
	bb := []byte{1, 1, 0, 0, 0}
	Reverse(bb)
	if string(bb) != string([]byte{0, 0, 0, 1, 1}) {
		t.Fatalf("ERR reverse: %v\n", bb)
	}
	Reverse(nil)
}
