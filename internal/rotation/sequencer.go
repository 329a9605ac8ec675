package rotation

import (
	"github.com/san-kum/trigsim/internal/logging"
	"github.com/san-kum/trigsim/internal/scene"
	"github.com/san-kum/trigsim/internal/trig"
)

// State is the lifecycle of a sequencer.
type State int

const (
	NotStarted State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Frame is the outcome of one interpolation step.
type Frame struct {
	Alpha      float64
	Point      trig.FramePoint
	Annotation *AnnotationSpec
	// Updated is false when intercept shapes kept their previous geometry.
	Updated bool
}

// Sequencer runs one Request on a context.
type Sequencer struct {
	ctx   *scene.Context
	req   Request
	desc  *Descriptor
	slots *scene.Slots
	state State
	last  Frame
	seen  bool
}

func NewSequencer(ctx *scene.Context, req Request) *Sequencer {
	return &Sequencer{
		ctx:  ctx,
		req:  req,
		desc: Describe(req.Variant()),
	}
}

func (s *Sequencer) Request() Request { return s.req }
func (s *Sequencer) State() State     { return s.state }

// Angle maps progress to the current angle.
func (s *Sequencer) Angle(alpha float64) float64 {
	return s.ctx.InitialAngle() + alpha*s.req.Sweep()
}

// Last returns the most recent frame.
func (s *Sequencer) Last() (Frame, bool) { return s.last, s.seen }

// Begin registers the variant's shapes with the context.
func (s *Sequencer) Begin() error {
	switch s.state {
	case Running:
		return ErrAlreadyStarted
	case Finished:
		return ErrFinished
	}
	fp := trig.Compute(s.Angle(0), s.req.Variant(), s.ctx.Mapper())
	slots := s.desc.NewSlots(fp)
	if err := s.ctx.AddShapes(s.req.Variant(), slots); err != nil {
		return err
	}
	s.slots = slots
	s.state = Running
	logging.Logger().Debug("rotation begin", "request", s.req.String())
	return nil
}

// Interpolate advances the rotation to alpha.
func (s *Sequencer) Interpolate(alpha float64) error {
	_, err := s.Step(alpha)
	return err
}

// Step advances the rotation to alpha, clamped to [0, 1], and returns the
// frame it produced.
func (s *Sequencer) Step(alpha float64) (Frame, error) {
	switch s.state {
	case NotStarted:
		return Frame{}, ErrNotStarted
	case Finished:
		return Frame{}, ErrFinished
	}
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}

	m := s.ctx.Mapper()
	theta := s.Angle(alpha)
	fp := trig.Compute(theta, s.req.Variant(), m)
	updated := s.desc.Apply(fp, s.slots)
	s.ctx.SetAngle(theta)

	spec := s.desc.Annotate(alpha, fp, m.Unit(), s.ctx.Buff())
	if s.req.ShowBrace() {
		if spec != nil {
			s.ctx.SetAnnotation(spec.Brace(m.Unit() * 0.12))
		} else {
			s.ctx.ClearAnnotation()
		}
	}

	s.last = Frame{Alpha: alpha, Point: fp, Annotation: spec, Updated: updated}
	s.seen = true
	return s.last, nil
}

// Finish detaches the shapes if the request asks for it and clears the
// annotation.
func (s *Sequencer) Finish() error {
	switch s.state {
	case NotStarted:
		return ErrNotStarted
	case Finished:
		return ErrFinished
	}
	if s.req.RemoveShapes() {
		s.ctx.RemoveShapes(s.req.Variant())
	}
	s.ctx.ClearAnnotation()
	s.state = Finished
	logging.Logger().Debug("rotation finish", "request", s.req.String())
	return nil
}
