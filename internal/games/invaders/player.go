package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player is the ship at the bottom of the field.
type Player struct {
	X, Y        float64
	W, H        float64
	Speed       float64
	Bullets     []Bullet
	Cooldown    int
	MaxCooldown int
	PowerUp     bool // One-way latch, cleared only by a new Player

	bullet config.BulletConfig
	fieldW float64
	fieldH float64
}

// NewPlayer creates a player centered horizontally above the bottom margin.
func NewPlayer(cfg config.InvadersConfig) *Player {
	pc := cfg.Player
	return &Player{
		X:           cfg.Field.Width/2 - pc.Width/2,
		Y:           cfg.Field.Height - pc.Height - pc.BottomMargin,
		W:           pc.Width,
		H:           pc.Height,
		Speed:       pc.Speed,
		MaxCooldown: pc.MaxCooldown,
		bullet:      cfg.Bullets,
		fieldW:      cfg.Field.Width,
		fieldH:      cfg.Field.Height,
	}
}

// Update applies one tick of input. It returns true if a bullet was fired.
func (p *Player) Update(in core.InputFrame) bool {
	// Move only when the step keeps the ship inside the field
	if in.Has(core.ActionLeft) && p.X-p.Speed >= 0 {
		p.X -= p.Speed
	}
	if in.Has(core.ActionRight) && p.X+p.Speed <= p.fieldW-p.W {
		p.X += p.Speed
	}

	fired := false
	if in.Has(core.ActionFire) && p.Cooldown == 0 {
		p.shoot()
		p.Cooldown = p.MaxCooldown
		fired = true
	}
	if p.Cooldown > 0 {
		p.Cooldown--
	}

	p.Bullets = updateBullets(p.Bullets, p.fieldH)
	return fired
}

// shoot spawns a bullet at the ship's nose.
func (p *Player) shoot() {
	damage := p.bullet.Damage
	if p.PowerUp {
		damage = p.bullet.PowerDamage
	}
	p.Bullets = append(p.Bullets, Bullet{
		X:          p.X + p.W/2 - p.bullet.Width/2,
		Y:          p.Y,
		W:          p.bullet.Width,
		H:          p.bullet.Height,
		Speed:      p.bullet.PlayerSpeed,
		FromPlayer: true,
		Damage:     damage,
	})
}

// Rect returns the player hitbox.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Shape returns the ship triangle: nose at top center, base along the bottom.
func (p *Player) Shape() [3]core.Point {
	return [3]core.Point{
		{X: p.X + p.W/2, Y: p.Y},
		{X: p.X, Y: p.Y + p.H},
		{X: p.X + p.W, Y: p.Y + p.H},
	}
}
