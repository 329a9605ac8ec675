package export

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/san-kum/trigsim/internal/anim"
	"github.com/san-kum/trigsim/internal/logging"
	"github.com/san-kum/trigsim/internal/system"
	"github.com/san-kum/trigsim/internal/theme"
	"golang.org/x/sync/errgroup"
)

// Format is the file type a FrameWriter produces.
type Format int

const (
	FormatSVG Format = iota
	FormatPNG
)

func (f Format) ext() string {
	if f == FormatPNG {
		return "png"
	}
	return "svg"
}

// FrameWriter writes every frame as a numbered file in a directory. PNG
// frames are encoded on a bounded pool of workers; Close waits for them.
type FrameWriter struct {
	dir    string
	format Format
	theme  theme.Theme
	width  int
	height int

	g       *errgroup.Group
	gctx    context.Context
	written int
}

func NewFrameWriter(ctx context.Context, dir string, format Format, th theme.Theme, width, height int) (*FrameWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	g, gctx := errgroup.WithContext(ctx)
	workers := system.FrameBudget(system.Workers(), uint64(width*height*4), system.MemoryAvailable())
	g.SetLimit(workers)
	logging.Logger().Debug("frame writer", "dir", dir, "format", format.ext(), "workers", workers)
	return &FrameWriter{
		dir:    dir,
		format: format,
		theme:  th,
		width:  width,
		height: height,
		g:      g,
		gctx:   gctx,
	}, nil
}

func (w *FrameWriter) path(index int) string {
	return filepath.Join(w.dir, fmt.Sprintf("frame_%05d.%s", index, w.format.ext()))
}

// OnFrame writes fi. Once an encode has failed it returns that failure
// rather than the cancellation it caused.
func (w *FrameWriter) OnFrame(fi anim.FrameInfo) error {
	if err := w.gctx.Err(); err != nil {
		if werr := w.g.Wait(); werr != nil {
			return werr
		}
		return err
	}
	path := w.path(fi.Index)
	w.written++

	if w.format == FormatSVG {
		return os.WriteFile(path, []byte(SVG(fi.Shapes, w.theme, w.width, w.height)), 0644)
	}

	shapes := fi.Shapes
	w.g.Go(func() error {
		img := Rasterize(shapes, w.theme, w.width, w.height)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", path, err)
		}
		return f.Close()
	})
	return nil
}

// Written is the number of frames handed to the writer.
func (w *FrameWriter) Written() int { return w.written }

// Close waits for pending encodes and returns the first error.
func (w *FrameWriter) Close() error {
	return w.g.Wait()
}
