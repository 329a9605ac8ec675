package trig

import (
	"math"

	"github.com/san-kum/trigsim/internal/geom"
)

// Epsilon is the half-width of the band around a pole inside which the
// ratio functions are treated as undefined.
const Epsilon = 1e-3

// FramePoint is the derived geometry for one angle. Points are already
// mapped to scene coordinates; X and Y are the logical cosine and sine.
type FramePoint struct {
	Variant Variant
	Theta   float64
	X, Y    float64

	Origin geom.Vec
	Circle geom.Vec
	FootX  geom.Vec // projection of Circle on the x-axis
	FootY  geom.Vec // projection of Circle on the y-axis

	// Intercept is the secant x-intercept for tangent/secant and the
	// cosecant y-intercept for cotangent/cosecant.
	Intercept    geom.Vec
	HasIntercept bool

	// Defined is false on a discontinuity frame. Shapes that depend on the
	// intercept must keep their previous geometry.
	Defined bool
	Value   float64
}

// Compute derives the frame geometry of theta for the given variant.
func Compute(theta float64, v Variant, m geom.Mapper) FramePoint {
	x, y := math.Cos(theta), math.Sin(theta)
	fp := FramePoint{
		Variant: v,
		Theta:   theta,
		X:       x,
		Y:       y,
		Origin:  m.Map(0, 0),
		Circle:  m.Map(x, y),
		FootX:   m.Map(x, 0),
		FootY:   m.Map(0, y),
		Defined: true,
	}

	switch {
	case v.TangentFamily():
		if NearCosineZero(theta, x) {
			fp.Defined = false
			return fp
		}
		fp.Intercept = m.Map(1/x, 0)
		fp.HasIntercept = true
		if v == Tangent {
			fp.Value = y / x
		} else {
			fp.Value = 1 / x
		}
	case v.CotangentFamily():
		if NearSineZero(theta, y) {
			fp.Defined = false
			return fp
		}
		fp.Intercept = m.Map(0, 1/y)
		fp.HasIntercept = true
		if v == Cotangent {
			fp.Value = x / y
		} else {
			fp.Value = 1 / y
		}
	case v == Cosine:
		fp.Value = x
	default:
		fp.Value = y
	}
	return fp
}

// NearCosineZero reports whether theta lies in the band around an odd
// multiple of pi/2 where tangent and secant are undefined.
func NearCosineZero(theta, x float64) bool {
	return math.Abs(modPi(theta)-math.Pi/2) < Epsilon || math.Abs(x) <= Epsilon
}

// NearSineZero reports whether theta lies in the band around a multiple of
// pi where cotangent and cosecant are undefined.
func NearSineZero(theta, y float64) bool {
	return math.Abs(modPi(theta)) < Epsilon || math.Abs(y) <= Epsilon
}

// modPi is the floored remainder of theta by pi, in [0, pi).
func modPi(theta float64) float64 {
	r := math.Mod(theta, math.Pi)
	if r < 0 {
		r += math.Pi
	}
	return r
}
