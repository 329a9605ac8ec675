// Package rotation animates a point around the unit circle for one
// trigonometric function: it keeps the function's triangles, chords and dots
// in step with the angle and decides where its brace goes.
package rotation

import (
	"github.com/san-kum/trigsim/internal/geom"
	"github.com/san-kum/trigsim/internal/trig"
)

// Ref names one of the derived points of a frame.
type Ref int

const (
	RefOrigin Ref = iota
	RefCircle
	RefFootX
	RefFootY
	RefIntercept
)

// At resolves the reference against a frame.
func (r Ref) At(fp trig.FramePoint) geom.Vec {
	switch r {
	case RefCircle:
		return fp.Circle
	case RefFootX:
		return fp.FootX
	case RefFootY:
		return fp.FootY
	case RefIntercept:
		return fp.Intercept
	default:
		return fp.Origin
	}
}

// Orientation fixes the direction of a reference segment before the
// perpendicular is taken.
type Orientation int

const (
	AsDrawn Orientation = iota
	BottomToTop
	RightToLeft
)

func (o Orientation) apply(a, b geom.Vec) (geom.Vec, geom.Vec) {
	switch o {
	case BottomToTop:
		if a.Y > b.Y {
			return b, a
		}
	case RightToLeft:
		if a.X < b.X {
			return b, a
		}
	}
	return a, b
}

// Descriptor is everything that makes one variant differ from another.
// Chords[0] is the segment the brace annotates.
type Descriptor struct {
	Variant   trig.Variant
	Triangles [][]Ref
	Chords    [][2]Ref
	Dots      []Ref

	Orient Orientation
	// Sign returns +1 or -1 given the logical circle point.
	Sign func(x, y float64) float64
	// MinLength suppresses the brace while the reference segment is
	// shorter than this fraction of the unit.
	MinLength float64
	// MaxValue suppresses the brace once |value| reaches it. Zero disables.
	MaxValue  float64
	BuffScale float64
	Label     string
}

func flipOn(neg bool) float64 {
	if neg {
		return -1
	}
	return 1
}

// quadrantSign starts from base and flips once for a negative x and once
// for a negative y.
func quadrantSign(base float64) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		return base * flipOn(x < 0) * flipOn(y < 0)
	}
}

var descriptors = [...]Descriptor{
	trig.Sine: {
		Variant:   trig.Sine,
		Triangles: [][]Ref{{RefOrigin, RefFootX, RefCircle}, {RefOrigin, RefFootY, RefCircle}},
		Chords:    [][2]Ref{{RefFootX, RefCircle}, {RefOrigin, RefFootY}},
		Dots:      []Ref{RefFootY, RefFootX},
		Orient:    BottomToTop,
		Sign:      func(x, _ float64) float64 { return flipOn(x < 0) },
		MinLength: 0.1,
		BuffScale: 1,
		Label:     "sin",
	},
	trig.Cosine: {
		Variant:   trig.Cosine,
		Triangles: [][]Ref{{RefOrigin, RefFootX, RefCircle}, {RefOrigin, RefFootY, RefCircle}},
		Chords:    [][2]Ref{{RefFootY, RefCircle}, {RefOrigin, RefFootX}},
		Dots:      []Ref{RefFootX, RefFootY},
		Orient:    RightToLeft,
		Sign:      func(_, y float64) float64 { return flipOn(y < 0) },
		MinLength: 0.1,
		BuffScale: 1,
		Label:     "cos",
	},
	trig.Tangent: {
		Variant:   trig.Tangent,
		Triangles: [][]Ref{{RefOrigin, RefCircle, RefIntercept}, {RefFootX, RefCircle, RefIntercept}},
		Chords:    [][2]Ref{{RefCircle, RefIntercept}, {RefOrigin, RefIntercept}},
		Dots:      []Ref{RefIntercept},
		Sign:      quadrantSign(-1),
		MinLength: 0.1,
		MaxValue:  5,
		BuffScale: 0.5,
		Label:     "tan",
	},
	trig.Cotangent: {
		Variant:   trig.Cotangent,
		Triangles: [][]Ref{{RefOrigin, RefCircle, RefIntercept}, {RefFootY, RefCircle, RefIntercept}},
		Chords:    [][2]Ref{{RefCircle, RefIntercept}, {RefOrigin, RefIntercept}},
		Dots:      []Ref{RefIntercept},
		Sign:      quadrantSign(1),
		MinLength: 0.1,
		MaxValue:  5,
		BuffScale: 0.5,
		Label:     "cot",
	},
	trig.Secant: {
		Variant:   trig.Secant,
		Triangles: [][]Ref{{RefOrigin, RefCircle, RefIntercept}},
		Chords:    [][2]Ref{{RefOrigin, RefIntercept}, {RefCircle, RefIntercept}},
		Dots:      []Ref{RefIntercept},
		Sign:      quadrantSign(1),
		MaxValue:  5,
		BuffScale: 0.5,
		Label:     "sec",
	},
	trig.Cosecant: {
		Variant:   trig.Cosecant,
		Triangles: [][]Ref{{RefOrigin, RefCircle, RefIntercept}},
		Chords:    [][2]Ref{{RefOrigin, RefIntercept}, {RefCircle, RefIntercept}},
		Dots:      []Ref{RefIntercept},
		Sign:      quadrantSign(-1),
		MaxValue:  5,
		BuffScale: 0.5,
		Label:     "csc",
	},
}

// Describe returns the descriptor of v. It panics on an invalid variant;
// requests are validated before they reach here.
func Describe(v trig.Variant) *Descriptor {
	return &descriptors[v]
}

func needsIntercept(refs ...Ref) bool {
	for _, r := range refs {
		if r == RefIntercept {
			return true
		}
	}
	return false
}
