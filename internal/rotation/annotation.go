package rotation

import (
	"math"

	"github.com/san-kum/trigsim/internal/geom"
	"github.com/san-kum/trigsim/internal/scene"
	"github.com/san-kum/trigsim/internal/trig"
)

// AnnotationSpec is where the brace of one frame goes.
type AnnotationSpec struct {
	Variant   trig.Variant
	From, To  geom.Vec
	Direction geom.Vec
	Label     string
	Buff      float64
	Value     float64
}

// Brace converts the spec into a scene shape.
func (a *AnnotationSpec) Brace(labelSize float64) *scene.Brace {
	return &scene.Brace{
		Attr:      scene.Attr{ID: a.Variant.Short() + "-brace", Tag: a.Variant.String()},
		From:      a.From,
		To:        a.To,
		Direction: a.Direction,
		Buff:      a.Buff,
		Label:     a.Label,
		Size:      labelSize,
	}
}

// Annotate decides the brace for a frame. It returns nil when the brace is
// hidden: on the first frame, on a discontinuity, while the reference
// segment is too short, or once the value grows past the variant's bound.
func (d *Descriptor) Annotate(alpha float64, fp trig.FramePoint, unit, baseBuff float64) *AnnotationSpec {
	if alpha == 0 || !fp.Defined {
		return nil
	}
	if d.MaxValue > 0 && math.Abs(fp.Value) >= d.MaxValue {
		return nil
	}

	ref := d.Chords[0]
	from, to := d.Orient.apply(ref[0].At(fp), ref[1].At(fp))
	seg := to.Sub(from)
	if d.MinLength > 0 && seg.Len() < d.MinLength*unit {
		return nil
	}

	return &AnnotationSpec{
		Variant:   d.Variant,
		From:      from,
		To:        to,
		Direction: seg.Perp().Norm().Scale(d.Sign(fp.X, fp.Y)),
		Label:     d.Label,
		Buff:      baseBuff * d.BuffScale,
		Value:     fp.Value,
	}
}
