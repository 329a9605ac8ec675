package scene

import (
	"errors"
	"fmt"

	"github.com/san-kum/trigsim/internal/geom"
)

var (
	// ErrNothingQueued is returned by Begin when no line was pushed.
	ErrNothingQueued = errors.New("scene: no text queued")
	// ErrTextEntering is returned by Begin while a line is still entering.
	ErrTextEntering = errors.New("scene: text already entering")
)

// TextGroup is a bounded column of labels that scrolls upward. The newest
// line sits at the anchor; older lines stack above it.
type TextGroup struct {
	ctx        *Context
	anchor     geom.Vec
	lineHeight float64
	capacity   int
	size       float64

	lines   []*Label // newest first
	queue   []string
	entered *Label
	start   []geom.Vec
	next    int
}

// NewTextGroup places a column with its bottom line at anchor.
func NewTextGroup(ctx *Context, anchor geom.Vec, lineHeight float64, capacity int) (*TextGroup, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrInvalidLayout, capacity)
	}
	if lineHeight <= 0 {
		return nil, fmt.Errorf("%w: line height %f", ErrInvalidLayout, lineHeight)
	}
	return &TextGroup{
		ctx:        ctx,
		anchor:     anchor,
		lineHeight: lineHeight,
		capacity:   capacity,
		size:       lineHeight * 0.6,
	}, nil
}

// Push queues a line. It enters the column on the next Begin.
func (g *TextGroup) Push(text string) {
	g.queue = append(g.queue, text)
}

// Lines returns the visible texts, oldest first.
func (g *TextGroup) Lines() []string {
	out := make([]string, len(g.lines))
	for i, l := range g.lines {
		out[len(g.lines)-1-i] = l.Text
	}
	return out
}

func (g *TextGroup) slot(i int) geom.Vec {
	return g.anchor.Add(geom.Up.Scale(g.lineHeight * float64(i)))
}

// Begin dequeues the next line and adds it below the anchor, transparent.
func (g *TextGroup) Begin() error {
	if g.entered != nil {
		return ErrTextEntering
	}
	if len(g.queue) == 0 {
		return ErrNothingQueued
	}
	text := g.queue[0]
	g.queue = g.queue[1:]

	g.start = g.start[:0]
	for _, l := range g.lines {
		g.start = append(g.start, l.At)
	}
	g.entered = &Label{
		Attr: Attr{
			ID:    fmt.Sprintf("text-%d", g.next),
			Style: Style{Stroke: g.ctx.Theme().Text, Opacity: 0, Z: ZLabel},
		},
		Text: text,
		At:   g.slot(-1),
		Size: g.size,
	}
	g.next++
	g.ctx.Add(g.entered)
	return nil
}

// Interpolate slides every line up by one slot. Lines pushed past the
// capacity fade out while the new line fades in.
func (g *TextGroup) Interpolate(alpha float64) error {
	if g.entered == nil {
		return ErrNothingQueued
	}
	alpha = clamp01(alpha)
	lift := geom.Up.Scale(g.lineHeight * alpha)
	for i, l := range g.lines {
		l.At = g.start[i].Add(lift)
		if i+1 >= g.capacity {
			l.Style.Opacity = 1 - alpha
		}
	}
	g.entered.At = g.slot(-1).Add(lift)
	g.entered.Style.Opacity = alpha
	return nil
}

// Finish settles the column and drops lines beyond capacity.
func (g *TextGroup) Finish() error {
	if g.entered == nil {
		return ErrNothingQueued
	}
	g.lines = append([]*Label{g.entered}, g.lines...)
	g.entered = nil
	for i, l := range g.lines {
		l.At = g.slot(i)
		l.Style.Opacity = 1
	}
	if len(g.lines) > g.capacity {
		for _, l := range g.lines[g.capacity:] {
			g.ctx.Remove(l)
		}
		g.lines = g.lines[:g.capacity]
	}
	return nil
}

func clamp01(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
