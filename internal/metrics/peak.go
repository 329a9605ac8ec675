package metrics

import (
	"math"

	"github.com/san-kum/trigsim/internal/anim"
)

// PeakValue is the largest |value| seen on a defined rotation frame.
type PeakValue struct {
	name string
	peak float64
}

func NewPeakValue() *PeakValue {
	return &PeakValue{name: "peak_value"}
}

func (p *PeakValue) Name() string { return p.name }

func (p *PeakValue) Observe(fi anim.FrameInfo) {
	if fi.Rotation == nil || !fi.Rotation.Point.Defined {
		return
	}
	p.peak = math.Max(p.peak, math.Abs(fi.Rotation.Point.Value))
}

func (p *PeakValue) Value() float64 { return p.peak }

func (p *PeakValue) Reset() { p.peak = 0 }
