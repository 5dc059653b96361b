package viz

import (
	"image/color"
	"sort"
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

const brailleBlank = 0x2800

// Canvas is a Braille pixel canvas. Every character cell also carries the
// color of the last pixel drawn into it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.RGBA
	// Pen is the color used by Set, DrawLine and FillPolygon.
	Pen color.RGBA
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Pen: color.RGBA{255, 255, 255, 255}}
	c.Resize(w, h)
	return c
}

// Resize reallocates the canvas to w x h character cells and clears it.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Colors = make([][]color.RGBA, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.RGBA, w)
	}
	c.Clear()
}

// PixelSize returns the canvas size in sub-pixels.
func (c *Canvas) PixelSize() (int, int) { return c.Width * 2, c.Height * 4 }

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = c.Pen
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] &= ^rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < brailleBlank {
		c.Grid[row][col] = brailleBlank
	}
}

// IsSet reports whether the sub-pixel at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Colors[i][j] = color.RGBA{}
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

// FillPolygon fills a polygon with an even-odd scanline pass.
func (c *Canvas) FillPolygon(xs, ys []int) {
	n := len(xs)
	if n < 3 || len(ys) != n {
		return
	}
	_, ph := c.PixelSize()
	minY, maxY := ys[0], ys[0]
	for _, y := range ys {
		minY = min(minY, y)
		maxY = max(maxY, y)
	}
	minY = max(minY, 0)
	maxY = min(maxY, ph-1)

	var nodes []int
	for y := minY; y <= maxY; y++ {
		nodes = nodes[:0]
		fy := float64(y) + 0.5
		j := n - 1
		for i := 0; i < n; i++ {
			yi, yj := float64(ys[i]), float64(ys[j])
			if (yi < fy && yj >= fy) || (yj < fy && yi >= fy) {
				x := float64(xs[i]) + (fy-yi)/(yj-yi)*float64(xs[j]-xs[i])
				nodes = append(nodes, int(x+0.5))
			}
			j = i
		}
		sort.Ints(nodes)
		for k := 0; k+1 < len(nodes); k += 2 {
			for x := nodes[k]; x <= nodes[k+1]; x++ {
				c.Set(x, y)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the canvas with each cell colored by lipgloss on bg.
// Runs of equal color share one style.
func (c *Canvas) Render(bg color.RGBA) string {
	base := lipgloss.NewStyle().Background(lipgloss.Color(hexRGBA(bg)))
	var b strings.Builder
	for r, row := range c.Grid {
		start := 0
		for start < len(row) {
			fg := c.Colors[r][start]
			end := start + 1
			for end < len(row) && c.Colors[r][end] == fg {
				end++
			}
			style := base
			if fg.A != 0 {
				style = style.Foreground(lipgloss.Color(hexRGBA(fg)))
			}
			b.WriteString(style.Render(string(row[start:end])))
			start = end
		}
		if r < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
