// Package geom holds the 2D vector type and the coordinate mapping between
// logical unit-circle coordinates and rendered scene coordinates.
package geom

import "math"

// Vec is a point or direction in the plane.
type Vec struct {
	X, Y float64
}

var (
	Origin = Vec{0, 0}
	Up     = Vec{0, 1}
	Down   = Vec{0, -1}
	Left   = Vec{-1, 0}
	Right  = Vec{1, 0}
)

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) Dot(o Vec) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Norm returns the unit vector in the direction of v, or the zero vector
// when v has no length.
func (v Vec) Norm() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Perp rotates v clockwise by a quarter turn.
func (v Vec) Perp() Vec { return Vec{v.Y, -v.X} }

// Equal reports whether v and o agree within tol on both axes.
func (v Vec) Equal(o Vec, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec) Vec { return a.Lerp(b, 0.5) }
