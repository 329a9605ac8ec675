// Package trig computes the per-frame geometry of a point rotating on the
// unit circle: the circle point, its axis projections and, for the ratio
// functions, the axis intercept of the tangent line.
package trig

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned when a variant name is not recognized.
var ErrUnknownVariant = errors.New("trig: unknown variant")

// Variant selects one of the six trigonometric functions.
type Variant int

const (
	Sine Variant = iota
	Cosine
	Tangent
	Cotangent
	Secant
	Cosecant
)

var variantNames = [...]string{"sine", "cosine", "tangent", "cotangent", "secant", "cosecant"}
var variantShort = [...]string{"sin", "cos", "tan", "cot", "sec", "csc"}

func (v Variant) String() string {
	if v < Sine || v > Cosecant {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

// Short returns the conventional three-letter name.
func (v Variant) Short() string {
	if v < Sine || v > Cosecant {
		return "?"
	}
	return variantShort[v]
}

// Valid reports whether v is one of the six variants.
func (v Variant) Valid() bool { return v >= Sine && v <= Cosecant }

// TangentFamily is true for the variants whose defining ratio divides by
// the cosine (tangent, secant).
func (v Variant) TangentFamily() bool { return v == Tangent || v == Secant }

// CotangentFamily is true for the variants whose defining ratio divides by
// the sine (cotangent, cosecant).
func (v Variant) CotangentFamily() bool { return v == Cotangent || v == Cosecant }

// ParseVariant accepts full and three-letter names, case-insensitively.
func ParseVariant(name string) (Variant, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := range variantNames {
		if n == variantNames[i] || n == variantShort[i] {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Variants lists all six variants in declaration order.
func Variants() []Variant {
	return []Variant{Sine, Cosine, Tangent, Cotangent, Secant, Cosecant}
}

// MarshalText lets variants appear by name in YAML and JSON.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
