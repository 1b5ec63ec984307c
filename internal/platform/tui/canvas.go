package tui

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Glyphs used to rasterize the field.
const (
	glyphSolid  = '█'
	glyphShip   = '▲'
	glyphBolt   = '|'
	glyphDot    = '·'
	glyphBright = '*'
	glyphMedium = '+'
	glyphDim    = '.'
	glyphEmpty  = ' '
	alphaBright = 0.66
	alphaMedium = 0.33
)

// Canvas rasterizes logical field coordinates onto a region of a Screen.
// A cell is covered when its center lies inside a primitive; primitives too
// small to cover any center still mark the cell under their own center.
type Canvas struct {
	screen *core.Screen
	fieldW float64
	fieldH float64

	// Viewport in screen cells
	x, y       int
	cols, rows int
}

// NewCanvas creates a canvas mapping a fieldW x fieldH field onto the whole screen.
func NewCanvas(screen *core.Screen, fieldW, fieldH float64) *Canvas {
	c := &Canvas{screen: screen, fieldW: fieldW, fieldH: fieldH}
	c.SetViewport(0, 0, screen.Width(), screen.Height())
	return c
}

// SetViewport selects the screen region the field is drawn into.
func (c *Canvas) SetViewport(x, y, cols, rows int) {
	c.x, c.y = x, y
	c.cols, c.rows = max(cols, 1), max(rows, 1)
}

// cellSize returns the field size of one cell.
func (c *Canvas) cellSize() (sx, sy float64) {
	return c.fieldW / float64(c.cols), c.fieldH / float64(c.rows)
}

// span returns the cell indices whose centers lie in [lo, hi).
func span(lo, hi, size float64) (first, last int) {
	first = int(math.Ceil(lo/size - 0.5))
	last = int(math.Ceil(hi/size-0.5)) - 1
	return first, last
}

// ToCell maps a field point to the cell containing it, relative to the viewport.
func (c *Canvas) ToCell(fx, fy float64) (col, row int) {
	sx, sy := c.cellSize()
	return int(math.Floor(fx / sx)), int(math.Floor(fy / sy))
}

// set writes a cell inside the viewport; anything outside is clipped.
func (c *Canvas) set(col, row int, r rune, color core.Color) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.screen.SetColored(c.x+col, c.y+row, r, color)
}

// Clear blanks the viewport.
func (c *Canvas) Clear(color core.Color) {
	for row := range c.rows {
		for col := range c.cols {
			c.set(col, row, glyphEmpty, color)
		}
	}
}

// DrawRect fills a rectangle. Rectangles smaller than a cell in both
// directions draw as a thin glyph so stars and bullets stay readable.
func (c *Canvas) DrawRect(x, y, w, h float64, color core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	sx, sy := c.cellSize()
	glyph := rune(glyphSolid)
	if w < sx && h < sy {
		glyph = glyphDot
		if h > w {
			glyph = glyphBolt
		}
	}

	c0, c1 := span(x, x+w, sx)
	r0, r1 := span(y, y+h, sy)
	if c0 > c1 {
		c0, _ = c.ToCell(x+w/2, 0)
		c1 = c0
	}
	if r0 > r1 {
		_, r0 = c.ToCell(0, y+h/2)
		r1 = r0
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			c.set(col, row, glyph, color)
		}
	}
}

// DrawTriangle fills a triangle.
func (c *Canvas) DrawTriangle(pts [3]core.Point, color core.Color) {
	sx, sy := c.cellSize()
	minX := min(pts[0].X, pts[1].X, pts[2].X)
	maxX := max(pts[0].X, pts[1].X, pts[2].X)
	minY := min(pts[0].Y, pts[1].Y, pts[2].Y)
	maxY := max(pts[0].Y, pts[1].Y, pts[2].Y)

	c0, c1 := span(minX, maxX, sx)
	r0, r1 := span(minY, maxY, sy)
	drawn := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			p := core.Point{X: (float64(col) + 0.5) * sx, Y: (float64(row) + 0.5) * sy}
			if inTriangle(p, pts) {
				c.set(col, row, glyphShip, color)
				drawn = true
			}
		}
	}
	if !drawn {
		col, row := c.ToCell((pts[0].X+pts[1].X+pts[2].X)/3, (pts[0].Y+pts[1].Y+pts[2].Y)/3)
		c.set(col, row, glyphShip, color)
	}
}

// inTriangle reports whether p lies inside or on the edge of the triangle.
func inTriangle(p core.Point, t [3]core.Point) bool {
	cross := func(a, b core.Point) float64 {
		return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	}
	d1 := cross(t[0], t[1])
	d2 := cross(t[1], t[2])
	d3 := cross(t[2], t[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// DrawCircle fills a circle. Alpha picks a fainter glyph as it fades;
// fully transparent circles are skipped.
func (c *Canvas) DrawCircle(x, y, r float64, color core.Color, alpha float64) {
	if alpha <= 0 || r <= 0 {
		return
	}
	glyph := rune(glyphDim)
	switch {
	case alpha > alphaBright:
		glyph = glyphBright
	case alpha > alphaMedium:
		glyph = glyphMedium
	}

	sx, sy := c.cellSize()
	c0, c1 := span(x-r, x+r, sx)
	r0, r1 := span(y-r, y+r, sy)
	drawn := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			dx := (float64(col)+0.5)*sx - x
			dy := (float64(row)+0.5)*sy - y
			if dx*dx+dy*dy <= r*r {
				c.set(col, row, glyph, color)
				drawn = true
			}
		}
	}
	if !drawn {
		col, row := c.ToCell(x, y)
		c.set(col, row, glyph, color)
	}
}
