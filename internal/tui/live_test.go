package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/trigsim/internal/anim"
	"github.com/san-kum/trigsim/internal/geom"
	"github.com/san-kum/trigsim/internal/rotation"
	"github.com/san-kum/trigsim/internal/scene"
	"github.com/san-kum/trigsim/internal/theme"
	"github.com/san-kum/trigsim/internal/trig"
)

func TestLiveRendererThrottles(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer(&out, theme.ThemeMinimal, 10)
	clock := time.Unix(0, 0)
	r.now = func() time.Time { return clock }

	for i := 0; i < 30; i++ {
		if err := r.OnFrame(anim.FrameInfo{Index: i, Name: "wait"}); err != nil {
			t.Fatal(err)
		}
		clock = clock.Add(10 * time.Millisecond)
	}
	if r.Drawn() != 3 {
		t.Errorf("drawn = %d, want 3", r.Drawn())
	}
	if got := strings.Count(out.String(), clearScreen); got != 3 {
		t.Errorf("screens = %d", got)
	}
}

func TestLiveRendererPrintsRotation(t *testing.T) {
	m, err := geom.NewMapper(geom.Origin, 2)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := scene.New(scene.Options{Mapper: m})
	if err != nil {
		t.Fatal(err)
	}
	f := rotation.Frame{Point: trig.Compute(0, trig.Cotangent, m)}

	var out bytes.Buffer
	r := NewLiveRenderer(&out, theme.ThemeClassic, 30)
	r.Start()
	if err := r.OnFrame(anim.FrameInfo{Name: "rotate:cotangent", Shapes: sc.Snapshot(), Rotation: &f}); err != nil {
		t.Fatal(err)
	}
	r.Stop()

	s := out.String()
	if !strings.HasPrefix(s, hideCursor) || !strings.HasSuffix(s, showCursor) {
		t.Error("cursor escapes missing")
	}
	for _, want := range []string{"rotate:cotangent", "cot", "value=undefined"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
