// Package export renders scene snapshots to SVG and raster images and
// writes them out as numbered frames, GIFs or MP4 video.
package export

import "github.com/san-kum/trigsim/internal/geom"

// FrameHeight is how many scene units fit vertically in an image. The
// horizontal extent follows from the aspect ratio.
const FrameHeight = 8.0

// Viewport maps scene coordinates, origin at the center and y up, to pixel
// coordinates with y down.
type Viewport struct {
	W, H  int
	scale float64
}

func NewViewport(w, h int) Viewport {
	return Viewport{W: w, H: h, scale: float64(h) / FrameHeight}
}

func (v Viewport) Pixel(p geom.Vec) (x, y float64) {
	return float64(v.W)/2 + p.X*v.scale, float64(v.H)/2 - p.Y*v.scale
}

// Length converts a scene length to pixels.
func (v Viewport) Length(l float64) float64 { return l * v.scale }

// StrokeWidth converts a style width, given in pixels at 720p, to this
// image's pixels.
func (v Viewport) StrokeWidth(w float64) float64 {
	return w * float64(v.H) / 720
}
