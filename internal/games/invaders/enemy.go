package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Enemy is a single invader in the formation.
type Enemy struct {
	X, Y      float64
	W, H      float64
	Speed     float64
	Dir       float64 // +1 right, -1 left
	Row       int
	Health    int
	MaxHealth int
}

// Update moves the enemy horizontally by one step.
func (e *Enemy) Update() {
	e.X += e.Speed * e.Dir
}

// ShiftDown drops the enemy one row and reverses its direction.
func (e *Enemy) ShiftDown(step float64) {
	e.Y += step
	e.Dir = -e.Dir
}

// Alive reports whether the enemy still has health.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Rect returns the enemy hitbox.
func (e *Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Center returns the middle of the hitbox.
func (e *Enemy) Center() core.Point {
	return e.Rect().Center()
}

// Color returns the tier color for the enemy's row.
func (e *Enemy) Color() core.Color {
	switch {
	case e.Row < 2:
		return core.ColorRed
	case e.Row < 4:
		return core.ColorOrange
	default:
		return core.ColorYellow
	}
}
