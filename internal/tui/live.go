// Package tui prints frames straight to the terminal while a script runs,
// for runs that also export or store their frames.
package tui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/san-kum/trigsim/internal/anim"
	"github.com/san-kum/trigsim/internal/theme"
	"github.com/san-kum/trigsim/internal/viz"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer is an anim.Observer that redraws at most frameRate times
// per second. Skipped frames are not drawn at all.
type LiveRenderer struct {
	out       io.Writer
	theme     theme.Theme
	frameRate int
	lastFrame time.Time
	canvas    *viz.Canvas
	drawn     int
	history   []float64

	now func() time.Time
}

func NewLiveRenderer(out io.Writer, th theme.Theme, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 15
	}
	return &LiveRenderer{
		out:       out,
		theme:     th,
		frameRate: frameRate,
		canvas:    viz.NewCanvas(width, height),
		now:       time.Now,
	}
}

func (r *LiveRenderer) OnFrame(fi anim.FrameInfo) error {
	if f := fi.Rotation; f != nil && f.Point.Defined {
		r.history = append(r.history, math.Max(-5, math.Min(5, f.Point.Value)))
		if len(r.history) > width {
			r.history = r.history[1:]
		}
	}

	now := r.now()
	if !r.lastFrame.IsZero() && now.Sub(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return nil
	}
	r.lastFrame = now

	viz.DrawShapes(r.canvas, fi.Shapes, r.theme)
	r.drawn++
	_, err := io.WriteString(r.out, r.render(fi))
	return err
}

// Drawn is the number of frames actually written.
func (r *LiveRenderer) Drawn() int { return r.drawn }

func (r *LiveRenderer) render(fi anim.FrameInfo) string {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  t=%.2fs  frame %d\n", fi.Name, fi.Time, fi.Index))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range strings.Split(strings.TrimSuffix(r.canvas.Render(), "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	if f := fi.Rotation; f != nil {
		value := "undefined"
		if f.Point.Defined {
			value = fmt.Sprintf("%.3f", f.Point.Value)
		}
		b.WriteString(fmt.Sprintf("  %s  theta=%.1f°  value=%s\n", f.Point.Variant.Short(), f.Point.Theta*180/math.Pi, value))
	}
	if len(r.history) > 1 {
		b.WriteString("  " + viz.Sparkline(r.history, width) + "\n")
	}
	return b.String()
}

func (r *LiveRenderer) Start() { io.WriteString(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { io.WriteString(r.out, showCursor) }
