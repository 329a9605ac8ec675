package scene

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/trigsim/internal/geom"
	"github.com/san-kum/trigsim/internal/theme"
	"github.com/san-kum/trigsim/internal/trig"
)

var (
	ErrSlotsInUse    = errors.New("scene: shapes already registered for variant")
	ErrNegativeBuff  = errors.New("scene: buff must not be negative")
	ErrInvalidLayout = errors.New("scene: invalid text group layout")
)

// DotRadius is the rendered radius of point markers.
const DotRadius = 0.06

// Slots are the shapes one rotation variant owns while it runs.
type Slots struct {
	Variant   trig.Variant
	Triangles []*Polygon
	Chords    []*Line
	Dots      []*Dot
}

// Shapes lists the slot shapes in draw order.
func (s *Slots) Shapes() []Shape {
	out := make([]Shape, 0, len(s.Triangles)+len(s.Chords)+len(s.Dots))
	for _, p := range s.Triangles {
		out = append(out, p)
	}
	for _, l := range s.Chords {
		out = append(out, l)
	}
	for _, d := range s.Dots {
		out = append(out, d)
	}
	return out
}

// Options configure a new Context.
type Options struct {
	Mapper       geom.Mapper
	InitialAngle float64
	Buff         float64
	Theme        theme.Theme
}

// Context is the unit-circle scene: the coordinate mapping, the static base
// shapes, the rotating radius and the per-variant shape slots.
type Context struct {
	mapper  geom.Mapper
	initial float64
	buff    float64
	theme   theme.Theme
	angle   float64

	axes   [2]*Line
	circle *Circle
	radius *Line
	point  *Dot

	slots      map[trig.Variant]*Slots
	annotation *Brace
	extras     []Shape
}

// New builds a context with its base shapes placed at the initial angle.
func New(opts Options) (*Context, error) {
	if opts.Buff < 0 {
		return nil, fmt.Errorf("%w: %f", ErrNegativeBuff, opts.Buff)
	}
	if opts.Mapper.Unit() <= 0 {
		return nil, errors.New("scene: mapper is not initialized")
	}
	if opts.Theme.Name == "" {
		opts.Theme = theme.ThemeClassic
	}

	m := opts.Mapper
	c := &Context{
		mapper:  m,
		initial: opts.InitialAngle,
		buff:    opts.Buff,
		theme:   opts.Theme,
		slots:   make(map[trig.Variant]*Slots),
	}
	reach := 1.25
	c.axes[0] = &Line{Attr: Attr{ID: "axis-x"}, From: m.Map(-reach, 0), To: m.Map(reach, 0)}
	c.axes[1] = &Line{Attr: Attr{ID: "axis-y"}, From: m.Map(0, -reach), To: m.Map(0, reach)}
	c.circle = &Circle{Attr: Attr{ID: "unit-circle"}, Center: m.Origin(), Radius: m.Unit()}
	c.radius = &Line{Attr: Attr{ID: "radius"}}
	c.point = &Dot{Attr: Attr{ID: "circle-point"}, Radius: DotRadius}
	c.restyle()
	c.SetAngle(opts.InitialAngle)
	return c, nil
}

func (c *Context) Mapper() geom.Mapper   { return c.mapper }
func (c *Context) InitialAngle() float64 { return c.initial }
func (c *Context) Buff() float64         { return c.buff }
func (c *Context) Theme() theme.Theme    { return c.theme }
func (c *Context) Angle() float64        { return c.angle }

// SetAngle moves the base radius and circle point to theta.
func (c *Context) SetAngle(theta float64) {
	c.angle = theta
	p := c.mapper.Map(math.Cos(theta), math.Sin(theta))
	c.radius.SetEndpoints(c.mapper.Origin(), p)
	c.point.MoveTo(p)
}

// SetTheme repaints every shape currently in the scene.
func (c *Context) SetTheme(t theme.Theme) {
	c.theme = t
	c.restyle()
}

func (c *Context) restyle() {
	t := c.theme
	for _, a := range c.axes {
		a.Style = Style{Stroke: t.Axis, Width: 1, Opacity: 1, Z: ZAxis}
	}
	c.circle.Style = Style{Stroke: t.Circle, Width: 2, Opacity: 1, Z: ZCircle}
	c.radius.Style = Style{Stroke: t.Radius, Width: 2, Opacity: 1, Z: ZRadius}
	c.point.Style = Style{Stroke: t.Point, Fill: t.Point, Width: 1, Opacity: 1, FillOpacity: 1, Z: ZDot}
	for v, s := range c.slots {
		paintSlots(t, v, s)
	}
	if c.annotation != nil {
		c.annotation.Style = c.BraceStyle()
	}
	for _, s := range c.extras {
		if l, ok := s.(*Label); ok {
			l.Style.Stroke = t.Text
		}
	}
}

func paintSlots(t theme.Theme, v trig.Variant, s *Slots) {
	col := t.Variant(v)
	for _, p := range s.Triangles {
		p.Style = Style{Stroke: col, Fill: col, Width: 1, Opacity: 1, FillOpacity: 0.25, Z: ZFill}
	}
	for i, l := range s.Chords {
		w := 3.0
		if i > 0 {
			w = 2
		}
		l.Style = Style{Stroke: col, Width: w, Opacity: 1, Z: ZChord}
	}
	for _, d := range s.Dots {
		d.Style = Style{Stroke: col, Fill: col, Width: 1, Opacity: 1, FillOpacity: 1, Z: ZDot}
	}
}

// BraceStyle is the style annotations are drawn with.
func (c *Context) BraceStyle() Style {
	return Style{Stroke: c.theme.Brace, Width: 2, Opacity: 1, Z: ZBrace}
}

// AddShapes registers the slots of a variant, tagging and painting them.
// A variant can hold only one set of slots at a time.
func (c *Context) AddShapes(v trig.Variant, s *Slots) error {
	if _, ok := c.slots[v]; ok {
		return fmt.Errorf("%w: %s", ErrSlotsInUse, v)
	}
	s.Variant = v
	for _, sh := range s.Shapes() {
		sh.Attrs().Tag = v.String()
	}
	paintSlots(c.theme, v, s)
	c.slots[v] = s
	return nil
}

// RemoveShapes detaches the slots of a variant. It is a no-op when none are
// registered.
func (c *Context) RemoveShapes(v trig.Variant) {
	delete(c.slots, v)
}

// Slots returns the registered slots of a variant.
func (c *Context) Slots(v trig.Variant) (*Slots, bool) {
	s, ok := c.slots[v]
	return s, ok
}

// SetAnnotation replaces the current annotation. A nil brace clears it.
func (c *Context) SetAnnotation(b *Brace) {
	c.annotation = nil
	if b == nil {
		return
	}
	b.Style = c.BraceStyle()
	if b.ID == "" {
		b.ID = "brace"
	}
	c.annotation = b
}

func (c *Context) ClearAnnotation()   { c.annotation = nil }
func (c *Context) Annotation() *Brace { return c.annotation }

// Add puts free-standing shapes, such as text, into the scene.
func (c *Context) Add(shapes ...Shape) {
	c.extras = append(c.extras, shapes...)
}

// Remove takes free-standing shapes out of the scene.
func (c *Context) Remove(shapes ...Shape) {
	keep := c.extras[:0]
	for _, s := range c.extras {
		drop := false
		for _, r := range shapes {
			if s == r {
				drop = true
				break
			}
		}
		if !drop {
			keep = append(keep, s)
		}
	}
	for i := len(keep); i < len(c.extras); i++ {
		c.extras[i] = nil
	}
	c.extras = keep
}

// Snapshot returns deep copies of every shape in the scene, sorted by Z.
// Shapes on the same layer keep insertion order.
func (c *Context) Snapshot() []Shape {
	var out []Shape
	add := func(s Shape) { out = append(out, s.Clone()) }

	add(c.axes[0])
	add(c.axes[1])
	add(c.circle)
	for _, v := range trig.Variants() {
		if s, ok := c.slots[v]; ok {
			for _, sh := range s.Shapes() {
				add(sh)
			}
		}
	}
	add(c.radius)
	add(c.point)
	if c.annotation != nil {
		add(c.annotation)
	}
	for _, s := range c.extras {
		add(s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Attrs().Style.Z < out[j].Attrs().Style.Z
	})
	return out
}
