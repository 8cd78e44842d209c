package viz

import (
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
const brailleBlank = 0x2800

var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// bayer4 is a 4x4 ordered-dither threshold map, values 0..15.
var bayer4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Canvas is a braille dot grid with one colour per character cell and an
// optional text overlay. Coordinates passed to drawing methods are in dots;
// the canvas is (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]lipgloss.Color
	text          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]lipgloss.Color, h),
		text:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]lipgloss.Color, w)
		c.text[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// DotSize returns the canvas size in dots.
func (c *Canvas) DotSize() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	return row, col, col < c.Width && row < c.Height
}

// Set turns on the dot at (x, y) without changing the cell colour.
func (c *Canvas) Set(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Paint turns on the dot at (x, y) and gives its cell colour col.
func (c *Canvas) Paint(x, y int, clr lipgloss.Color) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = clr
}

// Unset clears a dot.
func (c *Canvas) Unset(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	row, col, ok := c.cell(x, y)
	if !ok {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

// ColorAt returns the colour of the cell holding dot (x, y).
func (c *Canvas) ColorAt(x, y int) lipgloss.Color {
	row, col, ok := c.cell(x, y)
	if !ok {
		return ""
	}
	return c.Colors[row][col]
}

// Clear resets dots, colours and text.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Colors[i][j] = ""
			c.text[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, clr lipgloss.Color) {
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
		c.Paint(x0, y0, clr)
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

// DrawDisc fills a disc of radius r dots centred on (cx, cy).
func (c *Canvas) DrawDisc(cx, cy int, r float64, clr lipgloss.Color) {
	ri := int(r)
	r2 := r * r
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx*dx+dy*dy) <= r2 {
				c.Paint(cx+dx, cy+dy, clr)
			}
		}
	}
}

// FillPolygon scan-fills the polygon pts (even-odd rule). density in [0,1]
// selects the share of interior dots lit through an ordered dither, so a
// low density reads as translucent.
func (c *Canvas) FillPolygon(pts []Point, density float64, clr lipgloss.Color) {
	if len(pts) < 3 || density <= 0 {
		return
	}
	threshold := int(density*16 + 0.5)

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	w, h := c.DotSize()
	minY = max(minY, 0)
	maxY = min(maxY, h-1)

	xs := make([]int, 0, len(pts))
	for y := minY; y <= maxY; y++ {
		xs = scanline(pts, float64(y)+0.5, xs[:0])
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(xs[i], 0); x <= min(xs[i+1], w-1); x++ {
				if bayer4[y%4][x%4] < threshold {
					c.Paint(x, y, clr)
				}
			}
		}
	}
}

// scanline returns the sorted x crossings of the horizontal line at y.
func scanline(pts []Point, y float64, xs []int) []int {
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		ay, by := float64(a.Y), float64(b.Y)
		if (ay <= y && by > y) || (by <= y && ay > y) {
			t := (y - ay) / (by - ay)
			x := float64(a.X) + t*float64(b.X-a.X)
			xs = append(xs, int(x+0.5))
		}
	}
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
	return xs
}

// Text writes s starting at character cell (col, row). Text cells hide the
// braille beneath them.
func (c *Canvas) Text(col, row int, s string, clr lipgloss.Color) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.Width {
			c.text[row][col] = r
			c.Colors[row][col] = clr
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

// String returns the canvas without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			b.WriteRune(c.glyph(row, col))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render returns the canvas with each run of equally coloured cells styled
// through lipgloss.
func (c *Canvas) Render() string {
	var b strings.Builder
	var run strings.Builder
	for row := range c.Grid {
		cur := c.Colors[row][0]
		for col := range c.Grid[row] {
			clr := c.Colors[row][col]
			if clr != cur {
				b.WriteString(styled(run.String(), cur))
				run.Reset()
				cur = clr
			}
			run.WriteRune(c.glyph(row, col))
		}
		b.WriteString(styled(run.String(), cur))
		run.Reset()
		b.WriteByte('\n')
	}
	return b.String()
}

func styled(s string, clr lipgloss.Color) string {
	if clr == "" || s == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(clr).Render(s)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
