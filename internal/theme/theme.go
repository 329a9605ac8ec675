// Package theme holds the static color tables used by every renderer.
// Themes are values; pick one by name and pass it to the scene context.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trigsim/internal/trig"
)

// Theme defines the color scheme for scenes and the terminal views.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Axis       lipgloss.Color
	Circle     lipgloss.Color
	Radius     lipgloss.Color
	Point      lipgloss.Color
	Brace      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Variants   [6]lipgloss.Color // indexed by trig.Variant
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:       "classic",
		Background: lipgloss.Color("#000000"),
		Axis:       lipgloss.Color("#888888"),
		Circle:     lipgloss.Color("#ffffff"),
		Radius:     lipgloss.Color("#ffffff"),
		Point:      lipgloss.Color("#ffff00"),
		Brace:      lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#444444"),
		Variants: [6]lipgloss.Color{
			"#58c4dd", // blue
			"#fc6255", // red
			"#83c167", // green
			"#9a72ac", // purple
			"#ff862f", // orange
			"#f7d96f", // gold
		},
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Background: lipgloss.Color("#0a0a0a"),
		Axis:       lipgloss.Color("#666666"),
		Circle:     lipgloss.Color("#00ffff"),
		Radius:     lipgloss.Color("#ffffff"),
		Point:      lipgloss.Color("#ffff00"),
		Brace:      lipgloss.Color("#ff00ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#333333"),
		Variants: [6]lipgloss.Color{
			"#ff00ff", "#00ffff", "#ffff00", "#00ff00", "#ff8800", "#ff0000",
		},
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Background: lipgloss.Color("#001100"),
		Axis:       lipgloss.Color("#005500"),
		Circle:     lipgloss.Color("#00ff00"),
		Radius:     lipgloss.Color("#00cc00"),
		Point:      lipgloss.Color("#88ff88"),
		Brace:      lipgloss.Color("#88ff88"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#003300"),
		Variants: [6]lipgloss.Color{
			"#00ff00", "#00cc00", "#88ff88", "#44dd44", "#ccffcc", "#ffff00",
		},
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Background: lipgloss.Color("#ffffff"),
		Axis:       lipgloss.Color("#888888"),
		Circle:     lipgloss.Color("#000000"),
		Radius:     lipgloss.Color("#000000"),
		Point:      lipgloss.Color("#0088ff"),
		Brace:      lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#000000"),
		Muted:      lipgloss.Color("#cccccc"),
		Variants: [6]lipgloss.Color{
			"#0088ff", "#ff4444", "#00aa55", "#8844cc", "#ff8800", "#aa8800",
		},
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Background: lipgloss.Color("#001a33"),
		Axis:       lipgloss.Color("#4488aa"),
		Circle:     lipgloss.Color("#00a8cc"),
		Radius:     lipgloss.Color("#e0f0ff"),
		Point:      lipgloss.Color("#ffd700"),
		Brace:      lipgloss.Color("#e0f0ff"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#224466"),
		Variants: [6]lipgloss.Color{
			"#0077be", "#00ff88", "#ffd700", "#ff4444", "#00a8cc", "#ffcc00",
		},
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Background: lipgloss.Color("#2d1b2e"),
		Axis:       lipgloss.Color("#8b6b8c"),
		Circle:     lipgloss.Color("#feca57"),
		Radius:     lipgloss.Color("#fff5f5"),
		Point:      lipgloss.Color("#ff9ff3"),
		Brace:      lipgloss.Color("#fff5f5"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#4d3b4e"),
		Variants: [6]lipgloss.Color{
			"#ff6b6b", "#feca57", "#5fd068", "#ff9ff3", "#ffc048", "#ff4757",
		},
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// Get returns a theme by name, falling back to classic.
func Get(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// Names returns list of available theme names
func Names() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Next returns the theme after t in Themes, wrapping around.
func Next(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// Variant returns the color used for the shapes of v.
func (t Theme) Variant(v trig.Variant) lipgloss.Color {
	if !v.Valid() {
		return t.Text
	}
	return t.Variants[v]
}

// RGBA converts a hex theme color to an image color.
func RGBA(c lipgloss.Color) color.RGBA {
	r, g, b := parseHex(string(c))
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}
