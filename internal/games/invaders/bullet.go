package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Bullet is a projectile fired by the player or an enemy.
// The sign of Speed encodes direction: negative travels up.
type Bullet struct {
	X, Y       float64
	W, H       float64
	Speed      float64
	FromPlayer bool
	Damage     int
}

// Update moves the bullet one tick along its direction.
func (b *Bullet) Update() {
	b.Y += b.Speed
}

// OffScreen reports whether the bullet left the vertical field bounds.
func (b Bullet) OffScreen(fieldH float64) bool {
	return b.Y < 0 || b.Y > fieldH
}

// Rect returns the bullet hitbox.
func (b Bullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Color returns the draw color: green for the player, red for enemies.
func (b Bullet) Color() core.Color {
	if b.FromPlayer {
		return core.ColorGreen
	}
	return core.ColorRed
}

// updateBullets advances every bullet and drops those that left the field.
// Returns the retained slice, reusing the backing array.
func updateBullets(bullets []Bullet, fieldH float64) []Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Update()
		if !b.OffScreen(fieldH) {
			kept = append(kept, b)
		}
	}
	return kept
}
