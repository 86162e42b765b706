package vector

import (
	"strings"

	"github.com/pkg/errors"
)

// AffineSource selects which point the printed affine coordinates are
// computed from.
type AffineSource string

const (
	// AffineFromBase prints the affine form of the base point, which
	// is what the historical generator did.
	AffineFromBase AffineSource = "base"

	// AffineFromResult prints the affine form of the multiplication
	// result.
	AffineFromResult AffineSource = "result"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Default inputs: a base point in Jacobian coordinates (Montgomery form,
// with Z != R) and a 236-bit scalar.
const (
	DefaultBaseX  = "0x8bfdde00ea61950fb83d8a3764f84f8b902d59fb05705e90cb152ffff178da27"
	DefaultBaseY  = "0x3c1bdbb650ad240dcbca4b292ec79357f9c5e2ddc5c89a6771ec80aef7441c67"
	DefaultBaseZ  = "0xfd088648e4b25c296c58584716a521d8c22b61c8092bb781b3a9a0e5712d4616"
	DefaultScalar = "0x826fffff656879890900000000000000000000000000000000fffffe643"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("vector: invalid configuration")

// Config holds the inputs of a test vector and how to render it.
type Config struct {
	// Base point, Jacobian coordinates in Montgomery form (hex).
	BaseX string `mapstructure:"base-x"`
	BaseY string `mapstructure:"base-y"`
	BaseZ string `mapstructure:"base-z"`

	// Scalar (hex), strictly positive.
	Scalar string `mapstructure:"scalar"`

	// Point the printed affine coordinates come from.
	AffineSource AffineSource `mapstructure:"affine-source"`

	// Output format: text, json or yaml.
	Format string `mapstructure:"format"`

	// Recompute the result with an independent implementation.
	CrossCheck bool `mapstructure:"cross-check"`
}

// DefaultConfig returns the configuration reproducing the historical
// generator output.
func DefaultConfig() Config {
	return Config{
		BaseX:        DefaultBaseX,
		BaseY:        DefaultBaseY,
		BaseZ:        DefaultBaseZ,
		Scalar:       DefaultScalar,
		AffineSource: AffineFromBase,
		Format:       FormatText,
	}
}

// Validate normalizes and checks the enumerated settings. Numeric
// literals are checked when the vector is generated.
func (c *Config) Validate() error {
	c.AffineSource = AffineSource(strings.ToLower(string(c.AffineSource)))
	c.Format = strings.ToLower(c.Format)
	switch c.AffineSource {
	case AffineFromBase, AffineFromResult:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown affine source %q", c.AffineSource)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown format %q", c.Format)
	}
	return nil
}
