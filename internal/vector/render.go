package vector

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// record is the serialized form of a Vector (json and yaml formats).
type record struct {
	Scalar       string `json:"scalar" yaml:"scalar"`
	Bits         []int  `json:"bits" yaml:"bits,flow"`
	X            string `json:"X" yaml:"X"`
	Y            string `json:"Y" yaml:"Y"`
	Z            string `json:"Z" yaml:"Z"`
	AffineSource string `json:"affine_source" yaml:"affine_source"`
	AffineX      string `json:"x" yaml:"x"`
	AffineY      string `json:"y" yaml:"y"`
}

func newRecord(v *Vector) *record {
	X, Y, Z := v.Result.Coordinates()
	x, y := v.Affine()
	r := &record{
		Scalar:       fmt.Sprintf("%#x", v.Scalar),
		Bits:         make([]int, len(v.Bits)),
		X:            X.String(),
		Y:            Y.String(),
		Z:            Z.String(),
		AffineSource: string(v.AffineSource),
		AffineX:      x.String(),
		AffineY:      y.String(),
	}
	for i, b := range v.Bits {
		r.Bits[i] = int(b)
	}
	return r
}

// Write renders v into w. The text format is the historical layout: the
// bit list, then the Jacobian coordinates X, Y and Z of the result, then
// the affine coordinates x and y.
func Write(w io.Writer, v *Vector, format string) error {
	r := newRecord(v)
	switch strings.ToLower(format) {
	case FormatText, "":
		return writeText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(r), "vector: encoding json")
	case FormatYAML:
		out, err := yaml.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "vector: encoding yaml")
		}
		_, err = w.Write(out)
		return errors.Wrap(err, "vector: writing yaml")
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown format %q", format)
	}
}

func writeText(w io.Writer, r *record) error {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, b := range r.Bits {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", b)
	}
	sb.WriteString("]\n")
	fmt.Fprintf(&sb, "X = %s\n", r.X)
	fmt.Fprintf(&sb, "Y = %s\n", r.Y)
	fmt.Fprintf(&sb, "Z = %s\n", r.Z)
	fmt.Fprintf(&sb, "x = %s\n", r.AffineX)
	fmt.Fprintf(&sb, "y = %s\n", r.AffineY)
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "vector: writing text")
}
