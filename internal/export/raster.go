package export

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trigsim/internal/geom"
	"github.com/san-kum/trigsim/internal/scene"
	"github.com/san-kum/trigsim/internal/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const circleSegments = 64

// Rasterizer paints snapshots into RGBA images. It is not safe for
// concurrent use; give each worker its own.
type Rasterizer struct {
	vp    Viewport
	theme theme.Theme
	z     *vector.Rasterizer
}

func NewRasterizer(width, height int, th theme.Theme) *Rasterizer {
	return &Rasterizer{
		vp:    NewViewport(width, height),
		theme: th,
		z:     vector.NewRasterizer(width, height),
	}
}

// Rasterize renders one snapshot with a throwaway rasterizer.
func Rasterize(shapes []scene.Shape, th theme.Theme, width, height int) *image.RGBA {
	return NewRasterizer(width, height, th).Render(shapes)
}

func (r *Rasterizer) Render(shapes []scene.Shape) *image.RGBA {
	bounds := image.Rect(0, 0, r.vp.W, r.vp.H)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(theme.RGBA(r.theme.Background)), image.Point{}, draw.Src)

	for _, s := range shapes {
		st := s.Attrs().Style
		if st.Opacity <= 0 {
			continue
		}
		sw := math.Max(1, r.vp.StrokeWidth(st.Width))
		switch sh := s.(type) {
		case *scene.Polygon:
			if len(sh.Corners) < 3 {
				continue
			}
			if st.Fill != "" {
				r.begin()
				r.poly(r.pixels(sh.Corners), true)
				r.paint(img, st.Fill, st.FillOpacity*st.Opacity)
			}
			r.begin()
			r.polyline(append(r.pixels(sh.Corners), r.pixel(sh.Corners[0])), sw)
			r.paint(img, st.Stroke, st.Opacity)
		case *scene.Line:
			r.begin()
			r.polyline([][2]float64{r.pixel(sh.From), r.pixel(sh.To)}, sw)
			r.paint(img, st.Stroke, st.Opacity)
		case *scene.Circle:
			r.begin()
			c := r.pixel(sh.Center)
			rad := r.vp.Length(sh.Radius)
			r.poly(circle(c, rad+sw/2), true)
			r.poly(circle(c, math.Max(0, rad-sw/2)), false)
			r.paint(img, st.Stroke, st.Opacity)
		case *scene.Dot:
			r.begin()
			r.poly(circle(r.pixel(sh.At), math.Max(1.5, r.vp.Length(sh.Radius))), true)
			r.paint(img, st.Fill, st.FillOpacity*st.Opacity)
		case *scene.Brace:
			r.begin()
			r.polyline(r.pixels(sh.Path()), sw)
			r.paint(img, st.Stroke, st.Opacity)
			r.text(img, sh.LabelAt(), sh.Label, st.Stroke, st.Opacity)
		case *scene.Label:
			r.text(img, sh.At, sh.Text, st.Stroke, st.Opacity)
		}
	}
	return img
}

func (r *Rasterizer) begin() {
	r.z.Reset(r.vp.W, r.vp.H)
}

func (r *Rasterizer) paint(img *image.RGBA, c lipgloss.Color, opacity float64) {
	r.z.DrawOp = draw.Over
	r.z.Draw(img, img.Bounds(), image.NewUniform(withAlpha(c, opacity)), image.Point{})
}

func withAlpha(c lipgloss.Color, opacity float64) color.NRGBA {
	rgba := theme.RGBA(c)
	a := math.Max(0, math.Min(1, opacity))
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(math.Round(a * 255))}
}

func (r *Rasterizer) pixel(p geom.Vec) [2]float64 {
	x, y := r.vp.Pixel(p)
	return [2]float64{x, y}
}

func (r *Rasterizer) pixels(pts []geom.Vec) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = r.pixel(p)
	}
	return out
}

// poly adds a closed path wound in the requested sense. Paths of opposite
// sense cancel where they overlap.
func (r *Rasterizer) poly(pts [][2]float64, positive bool) {
	if len(pts) < 3 {
		return
	}
	if (signedArea(pts) >= 0) != positive {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	r.z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p[0]), float32(p[1]))
	}
	r.z.ClosePath()
}

// polyline strokes connected segments with round joins.
func (r *Rasterizer) polyline(pts [][2]float64, width float64) {
	half := width / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b[0]-a[0], b[1]-a[1]
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		r.poly([][2]float64{
			{a[0] + nx, a[1] + ny},
			{b[0] + nx, b[1] + ny},
			{b[0] - nx, b[1] - ny},
			{a[0] - nx, a[1] - ny},
		}, true)
	}
	if half >= 1 {
		for _, p := range pts {
			r.poly(circle(p, half), true)
		}
	}
}

func (r *Rasterizer) text(img *image.RGBA, at geom.Vec, s string, c lipgloss.Color, opacity float64) {
	if s == "" {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(withAlpha(c, opacity)),
		Face: face,
	}
	x, y := r.vp.Pixel(at)
	w := d.MeasureString(s).Round()
	d.Dot = fixed.P(int(math.Round(x))-w/2, int(math.Round(y))+face.Ascent/2)
	d.DrawString(s)
}

func circle(c [2]float64, radius float64) [][2]float64 {
	pts := make([][2]float64, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = [2]float64{c[0] + radius*math.Cos(a), c[1] + radius*math.Sin(a)}
	}
	return pts
}

func signedArea(pts [][2]float64) float64 {
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return area / 2
}
