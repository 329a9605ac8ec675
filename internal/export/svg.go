package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trigsim/internal/geom"
	"github.com/san-kum/trigsim/internal/scene"
	"github.com/san-kum/trigsim/internal/theme"
)

// SVG renders a snapshot as a standalone SVG document.
func SVG(shapes []scene.Shape, th theme.Theme, width, height int) string {
	vp := NewViewport(width, height)
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, th.Background))

	for _, s := range shapes {
		st := s.Attrs().Style
		if st.Opacity <= 0 {
			continue
		}
		sw := vp.StrokeWidth(st.Width)
		switch sh := s.(type) {
		case *scene.Polygon:
			if len(sh.Corners) < 3 {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<polygon points="%s" %s %s/>
`, points(vp, sh.Corners), fillAttr(st), strokeAttr(st.Stroke, sw, st.Opacity)))
		case *scene.Line:
			x1, y1 := vp.Pixel(sh.From)
			x2, y2 := vp.Pixel(sh.To)
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" %s stroke-linecap="round"/>
`, x1, y1, x2, y2, strokeAttr(st.Stroke, sw, st.Opacity)))
		case *scene.Circle:
			cx, cy := vp.Pixel(sh.Center)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" %s/>
`, cx, cy, vp.Length(sh.Radius), strokeAttr(st.Stroke, sw, st.Opacity)))
		case *scene.Dot:
			cx, cy := vp.Pixel(sh.At)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.2f"/>
`, cx, cy, vp.Length(sh.Radius), st.Fill, st.FillOpacity*st.Opacity))
		case *scene.Brace:
			sb.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" %s stroke-linejoin="round"/>
`, points(vp, sh.Path()), strokeAttr(st.Stroke, sw, st.Opacity)))
			writeText(&sb, vp, sh.LabelAt(), sh.Label, sh.Size, st.Stroke, st.Opacity)
		case *scene.Label:
			writeText(&sb, vp, sh.At, sh.Text, sh.Size, st.Stroke, st.Opacity)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func points(vp Viewport, pts []geom.Vec) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		x, y := vp.Pixel(p)
		parts[i] = fmt.Sprintf("%.1f,%.1f", x, y)
	}
	return strings.Join(parts, " ")
}

func fillAttr(st scene.Style) string {
	if st.Fill == "" {
		return `fill="none"`
	}
	return fmt.Sprintf(`fill="%s" fill-opacity="%.2f"`, st.Fill, st.FillOpacity*st.Opacity)
}

func strokeAttr(c lipgloss.Color, width, opacity float64) string {
	return fmt.Sprintf(`stroke="%s" stroke-width="%.1f" stroke-opacity="%.2f"`, c, width, opacity)
}

func writeText(sb *strings.Builder, vp Viewport, at geom.Vec, text string, size float64, c lipgloss.Color, opacity float64) {
	if text == "" {
		return
	}
	var esc bytes.Buffer
	_ = xml.EscapeText(&esc, []byte(text))
	x, y := vp.Pixel(at)
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.1f" fill="%s" fill-opacity="%.2f" text-anchor="middle" dominant-baseline="middle">%s</text>
`, x, y, vp.Length(size), c, opacity, esc.String()))
}

// TraceSVG plots a value trace as a polyline scaled to fit the image.
func TraceSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	last := float64(len(values) - 1)
	for i, v := range values {
		x := float64(i) / last * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
