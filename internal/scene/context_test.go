package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/trigsim/internal/geom"
	"github.com/san-kum/trigsim/internal/theme"
	"github.com/san-kum/trigsim/internal/trig"
)

func newContext(t *testing.T) *Context {
	t.Helper()
	m, err := geom.NewMapper(geom.Origin, 2)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(Options{Mapper: m, Buff: 0.2, Theme: theme.ThemeOcean})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func testSlots() *Slots {
	return &Slots{
		Triangles: []*Polygon{{Attr: Attr{ID: "tri"}}},
		Chords:    []*Line{{Attr: Attr{ID: "chord"}}},
		Dots:      []*Dot{{Attr: Attr{ID: "dot"}}},
	}
}

func TestNewRejectsNegativeBuff(t *testing.T) {
	m, _ := geom.NewMapper(geom.Origin, 1)
	if _, err := New(Options{Mapper: m, Buff: -1}); !errors.Is(err, ErrNegativeBuff) {
		t.Errorf("expected ErrNegativeBuff, got %v", err)
	}
	if _, err := New(Options{}); err == nil {
		t.Error("expected error for zero mapper")
	}
}

func TestAddShapesRejectsOverlap(t *testing.T) {
	c := newContext(t)
	if err := c.AddShapes(trig.Sine, testSlots()); err != nil {
		t.Fatal(err)
	}
	if err := c.AddShapes(trig.Sine, testSlots()); !errors.Is(err, ErrSlotsInUse) {
		t.Errorf("expected ErrSlotsInUse, got %v", err)
	}
	if err := c.AddShapes(trig.Cosine, testSlots()); err != nil {
		t.Errorf("different variant should register: %v", err)
	}

	c.RemoveShapes(trig.Sine)
	if _, ok := c.Slots(trig.Sine); ok {
		t.Error("slots still registered after RemoveShapes")
	}
	if err := c.AddShapes(trig.Sine, testSlots()); err != nil {
		t.Errorf("re-register after removal: %v", err)
	}
}

func TestAddShapesTagsAndPaints(t *testing.T) {
	c := newContext(t)
	s := testSlots()
	if err := c.AddShapes(trig.Secant, s); err != nil {
		t.Fatal(err)
	}
	for _, sh := range s.Shapes() {
		a := sh.Attrs()
		if a.Tag != "secant" {
			t.Errorf("%s tagged %q", a.ID, a.Tag)
		}
		if a.Style.Stroke != theme.ThemeOcean.Variant(trig.Secant) {
			t.Errorf("%s stroke %s", a.ID, a.Style.Stroke)
		}
	}
}

func TestSetAngleMovesRadius(t *testing.T) {
	c := newContext(t)
	c.SetAngle(math.Pi / 2)
	snap := c.Snapshot()
	for _, s := range snap {
		if d, ok := s.(*Dot); ok && d.ID == "circle-point" {
			if !d.At.Equal(geom.Vec{X: 0, Y: 2}, 1e-9) {
				t.Errorf("circle point at %v", d.At)
			}
			return
		}
	}
	t.Fatal("circle point missing from snapshot")
}

func TestSnapshotIsDeepAndOrdered(t *testing.T) {
	c := newContext(t)
	s := testSlots()
	s.Triangles[0].SetCorners(geom.Vec{X: 0, Y: 0}, geom.Vec{X: 1, Y: 0}, geom.Vec{X: 1, Y: 1})
	if err := c.AddShapes(trig.Sine, s); err != nil {
		t.Fatal(err)
	}
	c.SetAnnotation(&Brace{From: geom.Origin, To: geom.Right, Direction: geom.Down})

	snap := c.Snapshot()
	for i := 1; i < len(snap); i++ {
		if snap[i-1].Attrs().Style.Z > snap[i].Attrs().Style.Z {
			t.Fatalf("snapshot not z-ordered at %d", i)
		}
	}

	s.Triangles[0].Corners[0] = geom.Vec{X: 9, Y: 9}
	for _, sh := range snap {
		if p, ok := sh.(*Polygon); ok && p.Corners[0].X == 9 {
			t.Error("snapshot shares corners with the live polygon")
		}
	}
}

func TestSetAnnotationReplaces(t *testing.T) {
	c := newContext(t)
	c.SetAnnotation(&Brace{Label: "a"})
	c.SetAnnotation(&Brace{Label: "b"})

	count := 0
	for _, sh := range c.Snapshot() {
		if _, ok := sh.(*Brace); ok {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected 1 brace, got %d", count)
	}
	if c.Annotation().Label != "b" {
		t.Errorf("expected latest brace, got %q", c.Annotation().Label)
	}

	c.SetAnnotation(nil)
	if c.Annotation() != nil {
		t.Error("nil annotation should clear")
	}
}

func TestBracePath(t *testing.T) {
	b := &Brace{From: geom.Vec{X: 0, Y: 0}, To: geom.Vec{X: 2, Y: 0}, Direction: geom.Down, Buff: 0.1}
	path := b.Path()
	if len(path) != 7 {
		t.Fatalf("expected 7 points, got %d", len(path))
	}
	if !path[0].Equal(geom.Vec{X: 0, Y: -0.1}, 1e-12) {
		t.Errorf("first shoulder at %v", path[0])
	}
	tip := path[3]
	if !tip.Equal(b.Tip(), 1e-12) {
		t.Errorf("tip %v != %v", tip, b.Tip())
	}
	if tip.Y >= -0.1 {
		t.Errorf("tip should point down, got %v", tip)
	}
}

func TestSetThemeRepaints(t *testing.T) {
	c := newContext(t)
	s := testSlots()
	if err := c.AddShapes(trig.Tangent, s); err != nil {
		t.Fatal(err)
	}
	c.SetTheme(theme.ThemeSunset)
	if got := s.Chords[0].Style.Stroke; got != theme.ThemeSunset.Variant(trig.Tangent) {
		t.Errorf("chord not repainted: %s", got)
	}
}
