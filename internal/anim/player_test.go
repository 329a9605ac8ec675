package anim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/san-kum/trigsim/internal/geom"
	"github.com/san-kum/trigsim/internal/scene"
)

type recording struct {
	alphas  []float64
	begun   int
	done    int
	failAt  int
	failErr error
}

func (r *recording) Begin() error  { r.begun++; return nil }
func (r *recording) Finish() error { r.done++; return nil }
func (r *recording) Interpolate(a float64) error {
	if r.failErr != nil && len(r.alphas) == r.failAt {
		return r.failErr
	}
	r.alphas = append(r.alphas, a)
	return nil
}

func newPlayer(t *testing.T, fps int) *Player {
	t.Helper()
	m, err := geom.NewMapper(geom.Origin, 1)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := scene.New(scene.Options{Mapper: m, Buff: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlayer(sc, fps)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewPlayerRejectsBadFPS(t *testing.T) {
	m, _ := geom.NewMapper(geom.Origin, 1)
	sc, _ := scene.New(scene.Options{Mapper: m})
	if _, err := NewPlayer(sc, 0); !errors.Is(err, ErrInvalidFPS) {
		t.Errorf("expected ErrInvalidFPS, got %v", err)
	}
}

func TestPlaySamplesEveryFrame(t *testing.T) {
	p := newPlayer(t, 4)
	a := &recording{}
	var seen []int
	p.AddObserver(ObserverFunc(func(fi FrameInfo) error {
		seen = append(seen, fi.Index)
		return nil
	}))

	if err := p.Play(context.Background(), a, time.Second); err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(a.alphas) != len(want) {
		t.Fatalf("got %d frames, want %d", len(a.alphas), len(want))
	}
	for i := range want {
		if a.alphas[i] != want[i] {
			t.Errorf("alpha[%d] = %f, want %f", i, a.alphas[i], want[i])
		}
	}
	if a.begun != 1 || a.done != 1 {
		t.Errorf("begin=%d finish=%d", a.begun, a.done)
	}
	if len(seen) != 5 || seen[4] != 4 || p.Frames() != 5 {
		t.Errorf("observer saw %v, player counted %d", seen, p.Frames())
	}
}

func TestPlayShortRunStillEmitsBothEnds(t *testing.T) {
	p := newPlayer(t, 30)
	a := &recording{}
	if err := p.Play(context.Background(), a, 0); err != nil {
		t.Fatal(err)
	}
	if len(a.alphas) != 2 || a.alphas[0] != 0 || a.alphas[1] != 1 {
		t.Errorf("alphas = %v", a.alphas)
	}
}

func TestPlayWrapsFrameErrors(t *testing.T) {
	p := newPlayer(t, 10)
	boom := errors.New("boom")
	a := &recording{failAt: 3, failErr: boom}

	err := p.Play(context.Background(), a, time.Second)
	var fe *FrameError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FrameError, got %v", err)
	}
	if fe.Frame != 3 || !errors.Is(err, boom) {
		t.Errorf("frame %d, err %v", fe.Frame, fe.Err)
	}
	if a.done != 0 {
		t.Error("Finish called after a failed frame")
	}
}

func TestPlayStopsOnCancel(t *testing.T) {
	p := newPlayer(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	a := &recording{}
	p.AddObserver(ObserverFunc(func(fi FrameInfo) error {
		if fi.Index == 2 {
			cancel()
		}
		return nil
	}))

	if err := p.Play(ctx, a, time.Second); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(a.alphas) != 3 {
		t.Errorf("expected 3 frames before cancel, got %d", len(a.alphas))
	}
}

func TestHold(t *testing.T) {
	p := newPlayer(t, 10)
	if err := p.Hold(context.Background(), 500*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if p.Frames() != 5 {
		t.Errorf("expected 5 held frames, got %d", p.Frames())
	}
}

type countMetric struct{ n int }

func (c *countMetric) Name() string      { return "count" }
func (c *countMetric) Observe(FrameInfo) { c.n++ }
func (c *countMetric) Value() float64    { return float64(c.n) }
func (c *countMetric) Reset()            { c.n = 0 }

func TestMetricsObserveAndReset(t *testing.T) {
	p := newPlayer(t, 2)
	p.AddMetric(&countMetric{})
	if err := p.Play(context.Background(), &recording{}, time.Second); err != nil {
		t.Fatal(err)
	}
	if got := p.Metrics()["count"]; got != 3 {
		t.Errorf("count = %f, want 3", got)
	}
	p.Reset()
	if got := p.Metrics()["count"]; got != 0 || p.Frames() != 0 {
		t.Errorf("after reset count = %f frames = %d", got, p.Frames())
	}
}
