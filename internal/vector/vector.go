// Package vector assembles scalar multiplication test vectors: it parses
// the configured inputs, runs the double-and-add driver, recovers affine
// coordinates and renders the result.
package vector

import (
	"math/big"

	gf "github.com/doubleodd/go-k256vec/internal/field"
	"github.com/doubleodd/go-k256vec/internal/scalar"
	"github.com/doubleodd/go-k256vec/k256"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrBaseNotOnCurve is returned when the configured base point does not
// satisfy the curve equation.
var ErrBaseNotOnCurve = errors.New("vector: base point is not on the curve")

// Vector is a computed test vector.
type Vector struct {
	// Scalar and its binary decomposition (most significant bit first).
	Scalar *big.Int
	Bits   []byte

	// Base point and k*Base, Jacobian coordinates in Montgomery form.
	Base   k256.Point
	Result k256.Point

	// Affine coordinates (plain integers) of Base and Result.
	BaseX, BaseY     gf.GFk256
	ResultX, ResultY gf.GFk256

	// Which of the two affine pairs is reported by Affine().
	AffineSource AffineSource
}

// Affine returns the reported affine coordinates, selected by
// AffineSource.
func (v *Vector) Affine() (x, y gf.GFk256) {
	if v.AffineSource == AffineFromResult {
		return v.ResultX, v.ResultY
	}
	return v.BaseX, v.BaseY
}

// Generate computes the test vector described by cfg. A nil logger is
// replaced with a no-op logger.
func Generate(cfg Config, logger *zap.Logger) (*Vector, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var x, y, z gf.GFk256
	for _, c := range []struct {
		name string
		lit  string
		d    *gf.GFk256
	}{
		{"base-x", cfg.BaseX, &x},
		{"base-y", cfg.BaseY, &y},
		{"base-z", cfg.BaseZ, &z},
	} {
		if err := c.d.SetHex(c.lit); err != nil {
			return nil, errors.Wrapf(err, "vector: parsing %s", c.name)
		}
	}

	k, err := scalar.ParseHex(cfg.Scalar)
	if err != nil {
		return nil, errors.Wrap(err, "vector: parsing scalar")
	}

	v := &Vector{
		Scalar:       k,
		AffineSource: cfg.AffineSource,
	}
	v.Base.Set(k256.NewPoint(&x, &y, &z))
	if v.Base.IsInfinity() == 1 || v.Base.IsOnCurve() == 0 {
		return nil, errors.WithStack(ErrBaseNotOnCurve)
	}

	v.Bits, err = scalar.Bits(k)
	if err != nil {
		return nil, errors.Wrap(err, "vector: decomposing scalar")
	}
	logger.Debug("scalar decomposed",
		zap.String("scalar", cfg.Scalar),
		zap.Int("bits", len(v.Bits)))

	v.Result.MulBits(&v.Base, v.Bits)
	X, Y, Z := v.Result.Coordinates()
	logger.Debug("scalar multiplication done",
		zap.Stringer("X", X), zap.Stringer("Y", Y), zap.Stringer("Z", Z))

	if v.BaseX, v.BaseY, err = v.Base.Affine(); err != nil {
		return nil, errors.Wrap(err, "vector: base point")
	}
	if v.ResultX, v.ResultY, err = v.Result.Affine(); err != nil {
		return nil, errors.Wrap(err, "vector: result point")
	}
	logger.Debug("affine coordinates recovered",
		zap.String("source", string(v.AffineSource)))

	if cfg.CrossCheck {
		if err := CrossCheck(v); err != nil {
			return nil, err
		}
		logger.Info("cross-check passed")
	}
	return v, nil
}
