package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trigsim/internal/export"
	"github.com/san-kum/trigsim/internal/geom"
	"github.com/san-kum/trigsim/internal/scene"
	"github.com/san-kum/trigsim/internal/theme"
	"github.com/san-kum/trigsim/internal/trig"
)

// DrawShapes clears c and draws a scene snapshot onto it, inked with th.
// Shapes are drawn in slice order, so later shapes win a shared cell.
func DrawShapes(c *Canvas, shapes []scene.Shape, th theme.Theme) {
	c.Clear()
	w, h := c.Pixels()
	vp := export.NewViewport(w, h)
	px := func(p geom.Vec) (int, int) {
		x, y := vp.Pixel(p)
		return int(math.Round(x)), int(math.Round(y))
	}

	for _, sh := range shapes {
		a := sh.Attrs()
		// Terminals cannot fade; half-faded shapes drop out.
		if a.Style.Opacity < 0.5 {
			continue
		}
		c.Pen(inkFor(a, th))
		switch s := sh.(type) {
		case *scene.Polygon:
			xs, ys := make([]int, len(s.Corners)), make([]int, len(s.Corners))
			for i, p := range s.Corners {
				xs[i], ys[i] = px(p)
			}
			c.DrawPolygon(xs, ys)
		case *scene.Line:
			x0, y0 := px(s.From)
			x1, y1 := px(s.To)
			c.DrawLine(x0, y0, x1, y1)
		case *scene.Circle:
			x, y := px(s.Center)
			c.DrawCircle(x, y, int(math.Round(vp.Length(s.Radius))))
		case *scene.Dot:
			x, y := px(s.At)
			c.FillCircle(x, y, int(math.Max(1, math.Round(vp.Length(s.Radius)))))
		case *scene.Brace:
			path := s.Path()
			xs, ys := make([]int, len(path)), make([]int, len(path))
			for i, p := range path {
				xs[i], ys[i] = px(p)
			}
			c.DrawPolyline(xs, ys)
			if s.Label != "" {
				x, y := px(s.LabelAt())
				c.Print(x, y, s.Label)
			}
		case *scene.Label:
			x, y := px(s.At)
			c.Print(x, y, s.Text)
		}
	}
	c.Pen("")
}

// inkFor picks the terminal color of a shape from th rather than from the
// shape's own stroke, so the view can switch themes without touching the
// scene.
func inkFor(a *scene.Attr, th theme.Theme) lipgloss.Color {
	if a.Tag != "" {
		if v, err := trig.ParseVariant(a.Tag); err == nil {
			return th.Variant(v)
		}
	}
	switch a.Style.Z {
	case scene.ZAxis:
		return th.Axis
	case scene.ZCircle:
		return th.Circle
	case scene.ZRadius:
		return th.Radius
	case scene.ZDot:
		return th.Point
	case scene.ZBrace:
		return th.Brace
	}
	return th.Text
}
