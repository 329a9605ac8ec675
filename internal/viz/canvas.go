package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille pixel grid. Each cell also remembers the ink it was
// last drawn with and may carry a text overlay that hides its dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune

	ink  [][]lipgloss.Color
	text [][]rune
	pen  lipgloss.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		ink:    make([][]lipgloss.Color, h),
		text:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.ink[i] = make([]lipgloss.Color, w)
		c.text[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Pixels is the canvas size in sub-pixels: (Width*2) x (Height*4).
func (c *Canvas) Pixels() (w, h int) { return c.Width * 2, c.Height * 4 }

// Pen sets the ink used by subsequent drawing calls. An empty color
// leaves cells unstyled.
func (c *Canvas) Pen(col lipgloss.Color) { c.pen = col }

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
func (c *Canvas) Set(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if c.pen != "" {
		c.ink[row][col] = c.pen
	}
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] &= ^rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// IsSet reports whether the sub-pixel at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	row, col, ok := c.cell(x, y)
	if !ok {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.ink[i][j] = ""
			c.text[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle draws a circle outline with the midpoint algorithm.
func (c *Canvas) DrawCircle(cx, cy, r int) {
	if r <= 0 {
		c.Set(cx, cy)
		return
	}
	x, y, d := r, 0, 1-r
	for x >= y {
		c.Set(cx+x, cy+y)
		c.Set(cx+y, cy+x)
		c.Set(cx-y, cy+x)
		c.Set(cx-x, cy+y)
		c.Set(cx-x, cy-y)
		c.Set(cx-y, cy-x)
		c.Set(cx+y, cy-x)
		c.Set(cx+x, cy-y)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// FillCircle lights every pixel within r of (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		w := int(math.Sqrt(float64(r*r - dy*dy)))
		for dx := -w; dx <= w; dx++ {
			c.Set(cx+dx, cy+dy)
		}
	}
}

// DrawPolyline connects consecutive points. xs and ys must have the same
// length.
func (c *Canvas) DrawPolyline(xs, ys []int) {
	for i := 1; i < len(xs) && i < len(ys); i++ {
		c.DrawLine(xs[i-1], ys[i-1], xs[i], ys[i])
	}
}

// DrawPolygon is DrawPolyline closed back to the first point.
func (c *Canvas) DrawPolygon(xs, ys []int) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 {
		return
	}
	c.DrawPolyline(xs[:n], ys[:n])
	c.DrawLine(xs[n-1], ys[n-1], xs[0], ys[0])
}

// Print overlays s starting at the cell holding sub-pixel (x, y). Text
// clipped by the right edge is dropped.
func (c *Canvas) Print(x, y int, s string) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	for _, r := range s {
		if col >= c.Width {
			return
		}
		c.text[row][col] = r
		if c.pen != "" {
			c.ink[row][col] = c.pen
		}
		col++
	}
}

func (c *Canvas) glyph(row, col int) rune {
	if t := c.text[row][col]; t != 0 {
		return t
	}
	return c.Grid[row][col]
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			b.WriteRune(c.glyph(row, col))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Render is String with every cell painted in its ink. Runs of equal ink
// share one style.
func (c *Canvas) Render() string {
	var b strings.Builder
	for row := range c.Grid {
		var run strings.Builder
		cur := lipgloss.Color("")
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(cur).Render(run.String()))
			}
			run.Reset()
		}
		for col := range c.Grid[row] {
			ink := c.ink[row][col]
			if c.Grid[row][col] == blank && c.text[row][col] == 0 {
				ink = cur
			}
			if ink != cur {
				flush()
				cur = ink
			}
			run.WriteRune(c.glyph(row, col))
		}
		flush()
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
