package viz

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trigsim/internal/anim"
	"github.com/san-kum/trigsim/internal/logging"
	"github.com/san-kum/trigsim/internal/theme"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600

	// plotted values are clipped so asymptotes do not flatten the graph
	valueClip = 5.0
)

// Source builds a fresh player and script on one new scene. The live view
// calls it on start and again on every restart.
type Source func() (*anim.Player, *anim.Script, error)

type TickMsg time.Time

type frameMsg struct {
	gen int
	fi  anim.FrameInfo
}

type doneMsg struct {
	gen int
	err error
}

type restartMsg struct{}

// Model plays a script in the terminal. The script runs on its own
// goroutine and hands frames over one tick at a time, so pausing simply
// stops taking frames.
type Model struct {
	source Source
	fps    int
	theme  theme.Theme
	styles Styles
	canvas *Canvas

	running bool
	waiting bool
	done    bool
	err     error

	gen    int
	frames <-chan anim.FrameInfo
	result <-chan error
	cancel context.CancelFunc

	last     anim.FrameInfo
	hasFrame bool
	values   []float64
	total    time.Duration
}

// NewModel prepares a live view; nothing runs until Init.
func NewModel(src Source, th theme.Theme, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		source:  src,
		fps:     fps,
		theme:   th,
		styles:  NewStyles(th),
		canvas:  NewCanvas(width, height),
		running: true,
		values:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startCmd(), m.tick())
}

// startCmd defers the first run to Update, where the model is mutable.
func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg { return restartMsg{} }
}

// Update handles keys and pulls frames from the running script.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.stop()
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.restart()
		case "t":
			m.theme = theme.Next(m.theme)
			m.styles = NewStyles(m.theme)
		}
	case restartMsg:
		m.restart()
	case TickMsg:
		var cmd tea.Cmd
		if m.running && !m.done && !m.waiting && m.frames != nil {
			m.waiting = true
			cmd = m.next()
		}
		return m, tea.Batch(cmd, m.tick())
	case frameMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.waiting = false
		m.observe(msg.fi)
	case doneMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.waiting, m.done, m.err = false, true, msg.err
		if msg.err != nil {
			logging.Logger().Error("live run", "err", msg.err)
		}
	}
	return m, nil
}

func (m Model) next() tea.Cmd {
	gen, frames, result := m.gen, m.frames, m.result
	return func() tea.Msg {
		fi, ok := <-frames
		if !ok {
			return doneMsg{gen: gen, err: <-result}
		}
		return frameMsg{gen: gen, fi: fi}
	}
}

// restart abandons any run in flight and starts the script from scratch.
func (m *Model) restart() {
	m.stop()
	m.gen++
	m.waiting, m.done, m.err = false, false, nil
	m.hasFrame = false
	m.values = m.values[:0]

	p, script, err := m.source()
	if err != nil {
		m.done, m.err = true, err
		m.frames = nil
		return
	}
	m.total = script.Duration()

	ctx, cancel := context.WithCancel(context.Background())
	frames := make(chan anim.FrameInfo)
	result := make(chan error, 1)
	p.AddObserver(anim.ObserverFunc(func(fi anim.FrameInfo) error {
		select {
		case frames <- fi:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}))
	go func() {
		result <- script.Run(ctx, p)
		close(frames)
	}()
	m.frames, m.result, m.cancel = frames, result, cancel
}

func (m *Model) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Model) observe(fi anim.FrameInfo) {
	m.last, m.hasFrame = fi, true
	if fi.Rotation == nil || !fi.Rotation.Point.Defined {
		return
	}
	v := math.Max(-valueClip, math.Min(valueClip, fi.Rotation.Point.Value))
	m.values = append(m.values, v)
	if len(m.values) > historyCapacity {
		m.values = m.values[1:]
	}
}

func (m Model) status() string {
	switch {
	case m.err != nil:
		return m.styles.Paused.Render("ERROR " + m.err.Error())
	case m.done:
		return m.styles.Done.Render("DONE")
	case !m.running:
		return m.styles.Paused.Render("PAUSED")
	}
	return m.styles.Running.Render("RUNNING")
}

// View renders the canvas next to the stats panel.
func (m Model) View() string {
	if m.hasFrame {
		DrawShapes(m.canvas, m.last.Shapes, m.theme)
	} else {
		m.canvas.Clear()
	}
	canvasView := m.styles.Canvas.Render(m.canvas.Render())

	var s strings.Builder
	title := "TRIGSIM"
	if m.hasFrame && m.last.Name != "" {
		title = strings.ToUpper(m.last.Name)
	}
	s.WriteString(m.styles.Header.Render(title) + "\n")
	s.WriteString(m.status() + "\n\n")

	if len(m.values) > 1 {
		chart := asciigraph.Plot(m.values, asciigraph.Height(6), asciigraph.Width(30), asciigraph.Caption("value"))
		s.WriteString(m.styles.Graph.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(m.styles.Label.Render(label) + m.styles.Value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", m.last.Time))
	if m.total > 0 {
		row("Progress", ProgressBar(m.last.Time/m.total.Seconds(), 16))
	}
	if f := m.last.Rotation; m.hasFrame && f != nil {
		row("Variant", f.Point.Variant.String())
		row("Theta", fmt.Sprintf("%.1f°", f.Point.Theta*180/math.Pi))
		if f.Point.Defined {
			row("Value", fmt.Sprintf("%.3f", f.Point.Value))
		} else {
			row("Value", "undefined")
		}
		brace := "hidden"
		if f.Annotation != nil {
			brace = "shown"
		}
		row("Brace", brace)
	}
	row("Theme", m.theme.Name)

	s.WriteString(m.styles.KeyHint.Render("\nSP:Pause R:Restart\nT:Theme  Q:Quit"))
	statsView := m.styles.Panel.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
