// Package viz renders composed views in the terminal: asciigraph time
// panels, Braille phase planes, and a rotatable 3-D phase portrait.
package viz

import (
	"strings"

	"github.com/san-kum/butterfly/internal/view"
)

// Braille patterns pack a 2x4 dot grid into one rune (offset 0x2800).
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille sub-pixel drawing surface: (Width*2) x (Height*4)
// addressable dots over Width x Height runes.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the dot at sub-pixel coordinates (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line between sub-pixel points using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
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

// Polyline plots a series prefix through the panel bounds, so that the
// drawing shares the composed scale with every other renderer of the
// same view.
func (c *Canvas) Polyline(xs, ys []float64, xb, yb view.Bounds, prefix int) {
	if prefix > len(xs) {
		prefix = len(xs)
	}
	if prefix < 2 {
		return
	}
	rangeX := xb.Max - xb.Min
	rangeY := yb.Max - yb.Min
	if rangeX == 0 || rangeY == 0 {
		return
	}
	cw, ch := c.Width*2, c.Height*4
	px, py := c.mapPoint(xs[0], ys[0], xb, yb, rangeX, rangeY, cw, ch)
	for i := 1; i < prefix; i++ {
		nx, ny := c.mapPoint(xs[i], ys[i], xb, yb, rangeX, rangeY, cw, ch)
		c.DrawLine(px, py, nx, ny)
		px, py = nx, ny
	}
}

func (c *Canvas) mapPoint(x, y float64, xb, yb view.Bounds, rangeX, rangeY float64, cw, ch int) (int, int) {
	sx := int((x - xb.Min) / rangeX * float64(cw-1))
	sy := ch - 1 - int((y-yb.Min)/rangeY*float64(ch-1))
	return sx, sy
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
