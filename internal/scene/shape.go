// Package scene holds the primitive shapes of a unit-circle scene and the
// context that owns them between frames.
package scene

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trigsim/internal/geom"
)

// Draw order of the shape layers.
const (
	ZAxis = iota
	ZCircle
	ZFill
	ZChord
	ZRadius
	ZDot
	ZBrace
	ZLabel
)

// Style is how a shape is painted. A zero Fill means the shape is not filled.
type Style struct {
	Stroke      lipgloss.Color
	Fill        lipgloss.Color
	Width       float64
	Opacity     float64
	FillOpacity float64
	Z           int
}

// Attr is embedded in every shape.
type Attr struct {
	ID    string
	Tag   string // owning variant, empty for base shapes
	Style Style
}

// Attrs returns the embedded attributes.
func (a *Attr) Attrs() *Attr { return a }

// Shape is anything a renderer can draw.
type Shape interface {
	Attrs() *Attr
	Clone() Shape
}

// Polygon is a closed shape defined by its ordered corners.
type Polygon struct {
	Attr
	Corners []geom.Vec
}

// SetCorners redefines the polygon in place.
func (p *Polygon) SetCorners(corners ...geom.Vec) {
	p.Corners = append(p.Corners[:0], corners...)
}

func (p *Polygon) Clone() Shape {
	c := *p
	c.Corners = append([]geom.Vec(nil), p.Corners...)
	return &c
}

// Line is a segment between two endpoints.
type Line struct {
	Attr
	From, To geom.Vec
}

// SetEndpoints redefines the segment in place.
func (l *Line) SetEndpoints(from, to geom.Vec) {
	l.From, l.To = from, to
}

// Len returns the segment length in scene units.
func (l *Line) Len() float64 { return l.To.Sub(l.From).Len() }

func (l *Line) Clone() Shape { c := *l; return &c }

// Dot is a point marker.
type Dot struct {
	Attr
	At     geom.Vec
	Radius float64
}

func (d *Dot) MoveTo(p geom.Vec) { d.At = p }

func (d *Dot) Clone() Shape { c := *d; return &c }

// Circle is an outlined circle.
type Circle struct {
	Attr
	Center geom.Vec
	Radius float64
}

func (c *Circle) Clone() Shape { n := *c; return &n }

// Label is a text anchored at its center.
type Label struct {
	Attr
	Text string
	At   geom.Vec
	Size float64
}

func (l *Label) Clone() Shape { c := *l; return &c }

// BraceDepth is the distance from a brace's shoulders to its tip.
const BraceDepth = 0.18

// Brace marks the length of a reference segment. It is drawn Buff away from
// the segment on the side Direction points to.
type Brace struct {
	Attr
	From, To  geom.Vec
	Direction geom.Vec // unit length
	Buff      float64
	Label     string
	Size      float64
}

// Path returns the brace outline as a polyline: shoulder, notch, tip, notch,
// shoulder.
func (b *Brace) Path() []geom.Vec {
	d := b.Direction.Norm()
	off := d.Scale(b.Buff)
	a := b.From.Add(off)
	c := b.To.Add(off)
	m := geom.Midpoint(a, c)
	half := d.Scale(BraceDepth / 2)
	notch := m.Add(half)
	return []geom.Vec{
		a,
		a.Add(half),
		notch,
		m.Add(d.Scale(BraceDepth)),
		notch,
		c.Add(half),
		c,
	}
}

// Tip is the point of the brace facing away from the segment.
func (b *Brace) Tip() geom.Vec {
	d := b.Direction.Norm()
	return geom.Midpoint(b.From, b.To).Add(d.Scale(b.Buff + BraceDepth))
}

// LabelAt is where the brace label is centered.
func (b *Brace) LabelAt() geom.Vec {
	return b.Tip().Add(b.Direction.Norm().Scale(b.Size*0.8 + BraceDepth))
}

func (b *Brace) Clone() Shape { c := *b; return &c }
