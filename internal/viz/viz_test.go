package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/trigsim/internal/anim"
	"github.com/san-kum/trigsim/internal/geom"
	"github.com/san-kum/trigsim/internal/rotation"
	"github.com/san-kum/trigsim/internal/scene"
	"github.com/san-kum/trigsim/internal/theme"
	"github.com/san-kum/trigsim/internal/trig"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 5)
	if !c.IsSet(3, 5) {
		t.Fatal("pixel not set")
	}
	if c.Grid[1][1] == blank {
		t.Error("cell still blank")
	}
	c.Unset(3, 5)
	if c.IsSet(3, 5) || c.Grid[1][1] != blank {
		t.Error("pixel not cleared")
	}
	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestDrawCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 8)
	for _, p := range [][2]int{{28, 20}, {12, 20}, {20, 12}, {20, 28}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("(%d,%d) not on circle", p[0], p[1])
		}
	}
	if c.IsSet(20, 20) {
		t.Error("center should stay empty")
	}
}

func TestDrawPolygonCloses(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawPolygon([]int{0, 10, 0}, []int{0, 0, 10})
	if !c.IsSet(0, 5) {
		t.Error("closing edge missing")
	}
	if !c.IsSet(5, 5) {
		t.Error("hypotenuse missing")
	}
}

func TestPrintOverlay(t *testing.T) {
	c := NewCanvas(6, 2)
	c.Set(0, 0)
	c.Print(0, 0, "sin")
	first := strings.Split(c.String(), "\n")[0]
	if !strings.HasPrefix(first, "sin") {
		t.Errorf("got %q", first)
	}
	c.Print(8, 0, "toolong")
	first = strings.Split(c.String(), "\n")[0]
	if !strings.HasSuffix(first, "to") {
		t.Errorf("clip: got %q", first)
	}
	if !strings.Contains(c.Render(), "sin") {
		t.Error("render lost the text")
	}
}

func newScene(t *testing.T) *scene.Context {
	t.Helper()
	m, err := geom.NewMapper(geom.Origin, 2)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := scene.New(scene.Options{Mapper: m, Buff: 0.1, InitialAngle: 0})
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestDrawShapesPlotsCircle(t *testing.T) {
	c := NewCanvas(width, height)
	DrawShapes(c, newScene(t).Snapshot(), theme.ThemeClassic)

	// 160x96 sub-pixels at 12 per unit: the circle of radius 2 passes near
	// (80+17, 48-17) at 45 degrees.
	lit := false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			lit = lit || c.IsSet(97+dx, 31+dy)
		}
	}
	if !lit {
		t.Error("circle not drawn at 45 degrees")
	}
	if c.IsSet(70, 40) {
		t.Error("pixel inside the circle lit")
	}
}

func TestInkFollowsTheme(t *testing.T) {
	th := theme.ThemeOcean
	if got := inkFor(&scene.Attr{Tag: "tangent"}, th); got != th.Variant(trig.Tangent) {
		t.Errorf("tagged ink = %q", got)
	}
	if got := inkFor(&scene.Attr{Style: scene.Style{Z: scene.ZAxis}}, th); got != th.Axis {
		t.Errorf("axis ink = %q", got)
	}
	if got := inkFor(&scene.Attr{Style: scene.Style{Z: scene.ZLabel}}, th); got != th.Text {
		t.Errorf("label ink = %q", got)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 1}, 2); got != "▁█" {
		t.Errorf("got %q", got)
	}
	if got := Sparkline(nil, 3); got != "───" {
		t.Errorf("empty: got %q", got)
	}
}

func shortSource(t *testing.T) Source {
	return func() (*anim.Player, *anim.Script, error) {
		req, err := rotation.NewRequest(rotation.RequestConfig{Variant: "sine", Repeat: 1, ShowBrace: true})
		if err != nil {
			return nil, nil, err
		}
		p, err := anim.NewPlayer(newScene(t), 10)
		if err != nil {
			return nil, nil, err
		}
		return p, &anim.Script{Steps: []anim.Step{
			{Kind: anim.StepRotate, Rotation: req, RunTime: 200 * time.Millisecond},
		}}, nil
	}
}

// drain pulls frames until the run ends and returns how many arrived.
func drain(t *testing.T, m Model) (Model, int) {
	t.Helper()
	n := 0
	for i := 0; i < 100; i++ {
		next, _ := m.Update(m.next()())
		m = next.(Model)
		if m.done {
			return m, n
		}
		n++
	}
	t.Fatal("run never finished")
	return m, n
}

func TestModelPlaysScript(t *testing.T) {
	next, _ := NewModel(shortSource(t), theme.ThemeClassic, 10).Update(restartMsg{})
	m, n := drain(t, next.(Model))
	if n != 3 {
		t.Errorf("frames = %d, want 3", n)
	}
	if m.err != nil {
		t.Fatal(m.err)
	}
	if len(m.values) != 3 {
		t.Errorf("values = %d", len(m.values))
	}
	if v := m.View(); !strings.Contains(v, "DONE") || !strings.Contains(v, "sine") {
		t.Error("view missing status or variant")
	}
}

func TestModelRestartAndTheme(t *testing.T) {
	next, _ := NewModel(shortSource(t), theme.ThemeClassic, 10).Update(restartMsg{})
	m := next.(Model)
	next, _ = m.Update(m.next()())
	m = next.(Model)
	if !m.hasFrame {
		t.Fatal("no frame after first pull")
	}

	stale := m.next()
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(Model)
	if m.hasFrame || len(m.values) != 0 {
		t.Error("restart kept old frames")
	}
	// the abandoned run still delivers; its messages must be ignored
	next, _ = m.Update(stale())
	m = next.(Model)
	if m.hasFrame {
		t.Error("stale frame accepted")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	m = next.(Model)
	if m.theme.Name != theme.Next(theme.ThemeClassic).Name {
		t.Errorf("theme = %s", m.theme.Name)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if m.running {
		t.Error("space did not pause")
	}
	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.waiting || cmd == nil {
		t.Error("paused tick should only reschedule")
	}

	m, n := drain(t, m)
	if n != 3 || m.err != nil {
		t.Errorf("restarted run: frames=%d err=%v", n, m.err)
	}
}
