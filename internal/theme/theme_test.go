package theme

import (
	"image/color"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trigsim/internal/trig"
)

func TestGetFallsBackToClassic(t *testing.T) {
	if got := Get("nonexistent"); got.Name != "classic" {
		t.Errorf("expected classic, got %s", got.Name)
	}
	if got := Get("ocean"); got.Name != "ocean" {
		t.Errorf("expected ocean, got %s", got.Name)
	}
}

func TestNextWraps(t *testing.T) {
	seen := map[string]bool{}
	th := ThemeClassic
	for range Themes {
		seen[th.Name] = true
		th = Next(th)
	}
	if th.Name != ThemeClassic.Name {
		t.Errorf("expected to wrap back to classic, got %s", th.Name)
	}
	if len(seen) != len(Themes) {
		t.Errorf("visited %d themes, want %d", len(seen), len(Themes))
	}
}

func TestEveryThemeColorsEveryVariant(t *testing.T) {
	for _, th := range Themes {
		for _, v := range trig.Variants() {
			if th.Variant(v) == "" {
				t.Errorf("theme %s has no color for %s", th.Name, v)
			}
		}
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#ff8800", color.RGBA{255, 136, 0, 255}},
		{"#58C4DD", color.RGBA{0x58, 0xc4, 0xdd, 255}},
		{"bogus", color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := RGBA(lipgloss.Color(tt.in)); got != tt.want {
			t.Errorf("RGBA(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
