package export

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"

	"github.com/san-kum/trigsim/internal/anim"
	"github.com/san-kum/trigsim/internal/theme"
	"github.com/san-kum/trigsim/internal/trig"
)

// GIFWriter collects frames and encodes an animated GIF on Close. Every
// n-th frame is kept to bound the file size.
type GIFWriter struct {
	path    string
	r       *Rasterizer
	every   int
	delay   int
	palette color.Palette
	anim    gif.GIF
}

// NewGIFWriter keeps one frame in every for a player running at fps.
func NewGIFWriter(path string, th theme.Theme, width, height, fps, every int) *GIFWriter {
	if every < 1 {
		every = 1
	}
	delay := 100 * every / fps
	if delay < 2 {
		delay = 2
	}
	return &GIFWriter{
		path:    path,
		r:       NewRasterizer(width, height, th),
		every:   every,
		delay:   delay,
		palette: themePalette(th),
		anim:    gif.GIF{LoopCount: 0},
	}
}

// themePalette puts the theme colors first so they map exactly; the rest
// of the web-safe palette covers blended edges.
func themePalette(th theme.Theme) color.Palette {
	p := color.Palette{
		theme.RGBA(th.Background),
		theme.RGBA(th.Axis),
		theme.RGBA(th.Circle),
		theme.RGBA(th.Radius),
		theme.RGBA(th.Point),
		theme.RGBA(th.Brace),
		theme.RGBA(th.Text),
	}
	for _, v := range trig.Variants() {
		p = append(p, theme.RGBA(th.Variant(v)))
	}
	for _, c := range palette.WebSafe {
		if len(p) == 256 {
			break
		}
		p = append(p, c)
	}
	return p
}

func (w *GIFWriter) OnFrame(fi anim.FrameInfo) error {
	if fi.Index%w.every != 0 {
		return nil
	}
	img := w.r.Render(fi.Shapes)
	pal := image.NewPaletted(img.Bounds(), w.palette)
	draw.Draw(pal, img.Bounds(), img, image.Point{}, draw.Src)
	w.anim.Image = append(w.anim.Image, pal)
	w.anim.Delay = append(w.anim.Delay, w.delay)
	return nil
}

func (w *GIFWriter) Frames() int { return len(w.anim.Image) }

func (w *GIFWriter) Close() error {
	if len(w.anim.Image) == 0 {
		return nil
	}
	f, err := os.Create(w.path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &w.anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
