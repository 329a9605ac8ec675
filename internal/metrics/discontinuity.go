// Package metrics accumulates per-run statistics over emitted frames.
package metrics

import "github.com/san-kum/trigsim/internal/anim"

// Discontinuities counts rotation frames on which the variant's ratio was
// undefined.
type Discontinuities struct {
	name  string
	count int
}

func NewDiscontinuities() *Discontinuities {
	return &Discontinuities{name: "discontinuities"}
}

func (d *Discontinuities) Name() string { return d.name }

func (d *Discontinuities) Observe(fi anim.FrameInfo) {
	if fi.Rotation != nil && !fi.Rotation.Point.Defined {
		d.count++
	}
}

func (d *Discontinuities) Value() float64 { return float64(d.count) }

func (d *Discontinuities) Reset() { d.count = 0 }

// Defaults returns a fresh set of every metric.
func Defaults() []anim.Metric {
	return []anim.Metric{
		NewDiscontinuities(),
		NewAnnotationCoverage(),
		NewPeakValue(),
	}
}
