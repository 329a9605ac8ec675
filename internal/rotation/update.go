package rotation

import (
	"fmt"

	"github.com/san-kum/trigsim/internal/scene"
	"github.com/san-kum/trigsim/internal/trig"
)

// NewSlots builds the shapes a variant owns, placed at fp.
func (d *Descriptor) NewSlots(fp trig.FramePoint) *scene.Slots {
	s := &scene.Slots{Variant: d.Variant}
	name := d.Variant.Short()
	for i := range d.Triangles {
		s.Triangles = append(s.Triangles, &scene.Polygon{
			Attr: scene.Attr{ID: fmt.Sprintf("%s-triangle-%d", name, i)},
		})
	}
	for i := range d.Chords {
		s.Chords = append(s.Chords, &scene.Line{
			Attr: scene.Attr{ID: fmt.Sprintf("%s-chord-%d", name, i)},
		})
	}
	for i := range d.Dots {
		s.Dots = append(s.Dots, &scene.Dot{
			Attr:   scene.Attr{ID: fmt.Sprintf("%s-dot-%d", name, i)},
			Radius: scene.DotRadius,
		})
	}
	d.Apply(fp, s)
	return s
}

// Apply moves the owned shapes to fp. A shape that uses the intercept keeps
// its previous geometry when fp has none. It reports whether every shape
// was updated.
func (d *Descriptor) Apply(fp trig.FramePoint, s *scene.Slots) bool {
	all := true
	for i, refs := range d.Triangles {
		if i >= len(s.Triangles) {
			break
		}
		if needsIntercept(refs...) && !fp.HasIntercept {
			all = false
			continue
		}
		corners := s.Triangles[i].Corners[:0]
		for _, r := range refs {
			corners = append(corners, r.At(fp))
		}
		s.Triangles[i].Corners = corners
	}
	for i, ends := range d.Chords {
		if i >= len(s.Chords) {
			break
		}
		if needsIntercept(ends[0], ends[1]) && !fp.HasIntercept {
			all = false
			continue
		}
		s.Chords[i].SetEndpoints(ends[0].At(fp), ends[1].At(fp))
	}
	for i, r := range d.Dots {
		if i >= len(s.Dots) {
			break
		}
		if needsIntercept(r) && !fp.HasIntercept {
			all = false
			continue
		}
		s.Dots[i].MoveTo(r.At(fp))
	}
	return all
}
