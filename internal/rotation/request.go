package rotation

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/trigsim/internal/trig"
)

// RequestConfig is the raw, unvalidated form of a Request.
type RequestConfig struct {
	Variant      string
	Clockwise    bool
	Repeat       int
	ShowBrace    bool
	RemoveShapes bool
	RunTime      time.Duration // zero means the player default
}

// Request is one validated rotation run. It cannot be changed once built.
type Request struct {
	variant      trig.Variant
	clockwise    bool
	repeat       int
	showBrace    bool
	removeShapes bool
	runTime      time.Duration
}

// NewRequest validates cfg.
func NewRequest(cfg RequestConfig) (Request, error) {
	v, err := trig.ParseVariant(cfg.Variant)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownVariant, cfg.Variant)
	}
	if cfg.Repeat <= 0 {
		return Request{}, fmt.Errorf("%w: got %d", ErrInvalidRepeat, cfg.Repeat)
	}
	if cfg.RunTime < 0 {
		return Request{}, fmt.Errorf("%w: got %s", ErrInvalidRunTime, cfg.RunTime)
	}
	return Request{
		variant:      v,
		clockwise:    cfg.Clockwise,
		repeat:       cfg.Repeat,
		showBrace:    cfg.ShowBrace,
		removeShapes: cfg.RemoveShapes,
		runTime:      cfg.RunTime,
	}, nil
}

func (r Request) Variant() trig.Variant  { return r.variant }
func (r Request) Clockwise() bool        { return r.clockwise }
func (r Request) Repeat() int            { return r.repeat }
func (r Request) ShowBrace() bool        { return r.showBrace }
func (r Request) RemoveShapes() bool     { return r.removeShapes }
func (r Request) RunTime() time.Duration { return r.runTime }

// Sweep is the signed total angle the rotation covers.
func (r Request) Sweep() float64 {
	s := 2 * math.Pi * float64(r.repeat)
	if r.clockwise {
		return -s
	}
	return s
}

func (r Request) String() string {
	dir := "ccw"
	if r.clockwise {
		dir = "cw"
	}
	return fmt.Sprintf("%s x%d %s", r.variant, r.repeat, dir)
}
