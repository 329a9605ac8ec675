package metrics

import "github.com/san-kum/trigsim/internal/anim"

// AnnotationCoverage is the fraction of rotation frames that carry a brace.
type AnnotationCoverage struct {
	name    string
	braced  int
	samples int
}

func NewAnnotationCoverage() *AnnotationCoverage {
	return &AnnotationCoverage{
		name: "annotation_coverage",
	}
}

func (c *AnnotationCoverage) Name() string {
	return c.name
}

func (c *AnnotationCoverage) Observe(fi anim.FrameInfo) {
	if fi.Rotation == nil {
		return
	}
	if fi.Rotation.Annotation != nil {
		c.braced++
	}
	c.samples++
}

func (c *AnnotationCoverage) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.braced) / float64(c.samples)
}

func (c *AnnotationCoverage) Reset() {
	c.braced = 0
	c.samples = 0
}
