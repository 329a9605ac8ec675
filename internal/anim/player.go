// Package anim drives animations frame by frame: it samples progress,
// hands each frame to observers and runs scripts of steps on one scene.
package anim

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/trigsim/internal/logging"
	"github.com/san-kum/trigsim/internal/rotation"
	"github.com/san-kum/trigsim/internal/scene"
)

// Animation is anything the player can drive across alpha in [0, 1].
type Animation interface {
	Begin() error
	Interpolate(alpha float64) error
	Finish() error
}

// Framer is implemented by animations that expose per-frame rotation
// geometry.
type Framer interface {
	Last() (rotation.Frame, bool)
}

// FrameInfo describes one emitted frame.
type FrameInfo struct {
	Index    int
	Step     int
	Name     string
	Alpha    float64
	Time     float64
	Shapes   []scene.Shape
	Rotation *rotation.Frame
}

// Observer receives every emitted frame in order.
type Observer interface {
	OnFrame(FrameInfo) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(FrameInfo) error

func (f ObserverFunc) OnFrame(fi FrameInfo) error { return f(fi) }

// Metric accumulates a scalar over frames.
type Metric interface {
	Name() string
	Observe(FrameInfo)
	Value() float64
	Reset()
}

// Player samples animations at a fixed frame rate on one scene.
type Player struct {
	scene     *scene.Context
	fps       float64
	rate      RateFunc
	observers []Observer
	metrics   []Metric

	frame int
	step  int
	name  string
}

func NewPlayer(sc *scene.Context, fps int) (*Player, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFPS, fps)
	}
	return &Player{scene: sc, fps: float64(fps), rate: linear}, nil
}

func (p *Player) AddObserver(o Observer) { p.observers = append(p.observers, o) }
func (p *Player) AddMetric(m Metric)     { p.metrics = append(p.metrics, m) }
func (p *Player) SetRate(r RateFunc)     { p.rate = r }
func (p *Player) Scene() *scene.Context  { return p.scene }
func (p *Player) FPS() int               { return int(p.fps) }

// Frames is the number of frames emitted so far.
func (p *Player) Frames() int { return p.frame }

// Metrics returns the current metric values by name.
func (p *Player) Metrics() map[string]float64 {
	out := make(map[string]float64, len(p.metrics))
	for _, m := range p.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Reset rewinds the frame counter and clears every metric.
func (p *Player) Reset() {
	p.frame, p.step = 0, 0
	for _, m := range p.metrics {
		m.Reset()
	}
}

// FrameCount is the number of intervals runTime covers; Play emits one
// more frame than this. It is at least one.
func (p *Player) FrameCount(runTime time.Duration) int {
	n := int(math.Round(runTime.Seconds() * p.fps))
	if n < 1 {
		n = 1
	}
	return n
}

// Play runs a with the player's rate.
func (p *Player) Play(ctx context.Context, a Animation, runTime time.Duration) error {
	return p.PlayWith(ctx, a, runTime, p.rate)
}

// PlayWith runs a from alpha 0 to 1 over runTime. Cancellation is checked
// between frames; Finish is not called after an error.
func (p *Player) PlayWith(ctx context.Context, a Animation, runTime time.Duration, rate RateFunc) error {
	if a == nil {
		return ErrEmptyStep
	}
	if rate == nil {
		rate = linear
	}
	if err := a.Begin(); err != nil {
		return &FrameError{Frame: p.frame, Err: err}
	}

	n := p.FrameCount(runTime)
	framer, _ := a.(Framer)
	for i := 0; i <= n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		alpha := rate(float64(i) / float64(n))
		if err := a.Interpolate(alpha); err != nil {
			return &FrameError{Frame: p.frame, Alpha: alpha, Err: err}
		}

		fi := p.info(alpha)
		if framer != nil {
			if f, ok := framer.Last(); ok {
				fi.Rotation = &f
			}
		}
		if err := p.emit(fi); err != nil {
			return err
		}
	}

	if err := a.Finish(); err != nil {
		return &FrameError{Frame: p.frame, Alpha: 1, Err: err}
	}
	return nil
}

// Hold repeats the current scene for d without animating anything.
func (p *Player) Hold(ctx context.Context, d time.Duration) error {
	n := int(math.Round(d.Seconds() * p.fps))
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := p.emit(p.info(1)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) info(alpha float64) FrameInfo {
	return FrameInfo{
		Index:  p.frame,
		Step:   p.step,
		Name:   p.name,
		Alpha:  alpha,
		Time:   float64(p.frame) / p.fps,
		Shapes: p.scene.Snapshot(),
	}
}

func (p *Player) emit(fi FrameInfo) error {
	for _, m := range p.metrics {
		m.Observe(fi)
	}
	for _, o := range p.observers {
		if err := o.OnFrame(fi); err != nil {
			return &FrameError{Frame: fi.Index, Alpha: fi.Alpha, Err: err}
		}
	}
	p.frame++
	return nil
}

// beginStep labels the frames that follow.
func (p *Player) beginStep(i int, name string) {
	p.step, p.name = i, name
	logging.Logger().Debug("step", "index", i, "name", name, "frame", p.frame)
}
