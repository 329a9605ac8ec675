package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trigsim/internal/theme"
)

// Styles are the lipgloss styles of the live view, derived from a theme.
type Styles struct {
	Canvas  lipgloss.Style
	Panel   lipgloss.Style
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Running lipgloss.Style
	Paused  lipgloss.Style
	Done    lipgloss.Style
	Graph   lipgloss.Style
	KeyHint lipgloss.Style
}

func NewStyles(th theme.Theme) Styles {
	return Styles{
		Canvas: lipgloss.NewStyle().Padding(1, 2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, false, false, true).
			BorderForeground(th.Muted).
			Padding(1, 2).
			Width(40),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Circle).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(th.Muted),
		Label:   lipgloss.NewStyle().Foreground(th.Axis).Width(12),
		Value:   lipgloss.NewStyle().Foreground(th.Text),
		Running: lipgloss.NewStyle().Bold(true).Foreground(th.Variants[0]),
		Paused:  lipgloss.NewStyle().Bold(true).Foreground(th.Point),
		Done:    lipgloss.NewStyle().Bold(true).Foreground(th.Muted),
		Graph:   lipgloss.NewStyle().Foreground(th.Variants[2]).Padding(1, 0),
		KeyHint: lipgloss.NewStyle().Foreground(th.Muted).Italic(true),
	}
}

// ProgressBar renders a bar filled to percent in [0, 1].
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Sparkline renders values as a one-line bar chart of at most width runes.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		idx := int((values[i*step] - lo) / rng * float64(len(chars)-1))
		idx = min(max(idx, 0), len(chars)-1)
		b.WriteRune(chars[idx])
	}
	return b.String()
}
