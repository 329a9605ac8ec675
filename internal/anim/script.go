package anim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/trigsim/internal/logging"
	"github.com/san-kum/trigsim/internal/rotation"
	"github.com/san-kum/trigsim/internal/scene"
)

// StepKind selects what a script step does.
type StepKind int

const (
	StepRotate StepKind = iota
	StepScroll
	StepWait
)

func (k StepKind) String() string {
	switch k {
	case StepRotate:
		return "rotate"
	case StepScroll:
		return "scroll"
	case StepWait:
		return "wait"
	}
	return "unknown"
}

// Step is one entry of a script.
type Step struct {
	Kind     StepKind
	Rotation rotation.Request
	Text     string
	RunTime  time.Duration
}

// Name is the label frames of this step carry.
func (s Step) Name() string {
	switch s.Kind {
	case StepRotate:
		return "rotate:" + s.Rotation.Variant().String()
	case StepScroll:
		return "scroll"
	}
	return s.Kind.String()
}

// Default durations when a step leaves RunTime at zero.
const (
	DefaultRotateTime = 4 * time.Second
	DefaultScrollTime = time.Second
	DefaultWaitTime   = time.Second
)

// Text column layout in logical units, to the right of the circle.
const (
	textColumnX    = 1.6
	textColumnY    = -1.0
	textLineHeight = 0.3
	textCapacity   = 5
)

// Script is an ordered list of steps played on one scene.
type Script struct {
	Steps []Step

	text *scene.TextGroup
}

// Run plays every step strictly in order.
func (s *Script) Run(ctx context.Context, p *Player) error {
	start := time.Now()
	for i, step := range s.Steps {
		p.beginStep(i, step.Name())
		if err := s.runStep(ctx, p, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Name(), err)
		}
	}
	logging.Logger().Info("script done", "steps", len(s.Steps), "frames", p.Frames(), "elapsed", time.Since(start))
	return nil
}

func (s *Script) runStep(ctx context.Context, p *Player, step Step) error {
	switch step.Kind {
	case StepRotate:
		d := orDefault(orDefault(step.RunTime, step.Rotation.RunTime()), DefaultRotateTime)
		return p.Play(ctx, rotation.NewSequencer(p.Scene(), step.Rotation), d)
	case StepScroll:
		g, err := s.textGroup(p.Scene())
		if err != nil {
			return err
		}
		g.Push(step.Text)
		return p.PlayWith(ctx, g, orDefault(step.RunTime, DefaultScrollTime), smooth)
	case StepWait:
		return p.Hold(ctx, orDefault(step.RunTime, DefaultWaitTime))
	}
	return fmt.Errorf("%w: kind %d", ErrEmptyStep, step.Kind)
}

func (s *Script) textGroup(sc *scene.Context) (*scene.TextGroup, error) {
	if s.text != nil {
		return s.text, nil
	}
	m := sc.Mapper()
	g, err := scene.NewTextGroup(sc, m.Map(textColumnX, textColumnY), textLineHeight*m.Unit(), textCapacity)
	if err != nil {
		return nil, err
	}
	s.text = g
	return g, nil
}

// Duration is the nominal length of the script, using defaults for steps
// without a run time.
func (s *Script) Duration() time.Duration {
	var total time.Duration
	for _, st := range s.Steps {
		switch st.Kind {
		case StepRotate:
			total += orDefault(orDefault(st.RunTime, st.Rotation.RunTime()), DefaultRotateTime)
		case StepScroll:
			total += orDefault(st.RunTime, DefaultScrollTime)
		case StepWait:
			total += orDefault(st.RunTime, DefaultWaitTime)
		}
	}
	return total
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
