package tui

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// newTestCanvas maps an 800x600 field onto 80x30 cells of 10x20 units.
func newTestCanvas() (*core.Screen, *Canvas) {
	s := core.NewScreen(80, 30)
	return s, NewCanvas(s, 800, 600)
}

func countRune(s *core.Screen, r rune) int {
	n := 0
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) == r {
				n++
			}
		}
	}
	return n
}

func TestCanvasDrawRectCoversCellCenters(t *testing.T) {
	s, c := newTestCanvas()
	// Enemy-sized rect: x 100..140, y 50..80 covers cols 10..13, rows 2..3
	c.DrawRect(100, 50, 40, 30, core.ColorRed)

	for row := 2; row <= 3; row++ {
		for col := 10; col <= 13; col++ {
			cell := s.GetCell(col, row)
			if cell.Rune != glyphSolid || cell.Color != core.ColorRed {
				t.Errorf("cell (%d, %d) should be a red block, got %q", col, row, cell.Rune)
			}
		}
	}
	if got := countRune(s, glyphSolid); got != 8 {
		t.Errorf("expected 8 covered cells, got %d", got)
	}
}

func TestCanvasTinyPrimitivesStillShow(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		want       rune
	}{
		{"star", 37, 53, 1, 1, glyphDot},
		{"bullet", 398, 542, 4, 10, glyphBolt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c := newTestCanvas()
			c.DrawRect(tt.x, tt.y, tt.w, tt.h, core.ColorWhite)
			col, row := c.ToCell(tt.x+tt.w/2, tt.y+tt.h/2)
			if got := s.Get(col, row); got != tt.want {
				t.Errorf("expected %q at (%d, %d), got %q", tt.want, col, row, got)
			}
			if got := countRune(s, tt.want); got != 1 {
				t.Errorf("tiny primitive should cover exactly one cell, got %d", got)
			}
		})
	}
}

func TestCanvasClipsToViewport(t *testing.T) {
	s, c := newTestCanvas()
	c.SetViewport(0, 1, 80, 28)

	c.DrawRect(-100, -100, 2000, 2000, core.ColorRed)

	if s.Get(0, 0) != ' ' || s.Get(0, 29) != ' ' {
		t.Error("drawing should not leave the viewport")
	}
	if s.Get(0, 1) != glyphSolid || s.Get(79, 28) != glyphSolid {
		t.Error("viewport should be fully covered")
	}
}

func TestCanvasTriangle(t *testing.T) {
	s, c := newTestCanvas()
	// Player ship at (375, 550), 50x30
	pts := [3]core.Point{{X: 400, Y: 550}, {X: 375, Y: 580}, {X: 425, Y: 580}}
	c.DrawTriangle(pts, core.ColorGreen)

	n := countRune(s, glyphShip)
	if n == 0 {
		t.Fatal("ship should cover at least one cell")
	}
	// Nothing may be drawn outside the triangle's bounding box (cols 37..42, rows 27..29)
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) == glyphShip && (x < 37 || x > 42 || y < 27 || y > 29) {
				t.Errorf("ship cell outside its bounds at (%d, %d)", x, y)
			}
		}
	}
}

func TestCanvasCircleAlpha(t *testing.T) {
	tests := []struct {
		alpha float64
		want  rune
	}{
		{1, glyphBright},
		{0.5, glyphMedium},
		{0.1, glyphDim},
	}
	for _, tt := range tests {
		s, c := newTestCanvas()
		c.DrawCircle(405, 305, 3, core.ColorOrange, tt.alpha)
		if got := s.Get(40, 15); got != tt.want {
			t.Errorf("alpha %v: expected %q, got %q", tt.alpha, tt.want, got)
		}
	}

	s, c := newTestCanvas()
	c.DrawCircle(405, 305, 3, core.ColorOrange, 0)
	if countRune(s, ' ') != 80*30 {
		t.Error("transparent circle should draw nothing")
	}
}

func TestInTriangle(t *testing.T) {
	tri := [3]core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	if !inTriangle(core.Point{X: 2, Y: 2}, tri) {
		t.Error("interior point should be inside")
	}
	if !inTriangle(core.Point{X: 5, Y: 0}, tri) {
		t.Error("edge point should be inside")
	}
	if inTriangle(core.Point{X: 8, Y: 8}, tri) {
		t.Error("point past the hypotenuse should be outside")
	}
}
