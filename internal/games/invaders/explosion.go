package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// particlePalette holds the hues an explosion particle can take.
var particlePalette = []core.Color{
	core.ColorRed,
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorBrightYellow,
	core.ColorWhite,
}

// Particle is one fragment of an explosion.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  core.Color
}

// Explosion is a short-lived cosmetic particle burst.
type Explosion struct {
	X, Y      float64
	Particles []Particle
	Age       int
	Lifetime  int

	gravity float64
	shrink  float64
}

// NewExplosion bursts particles outward from (x, y) in random directions.
func NewExplosion(x, y float64, cfg config.ExplosionConfig, rng RandomSource) *Explosion {
	ex := &Explosion{
		X:         x,
		Y:         y,
		Particles: make([]Particle, cfg.Particles),
		Lifetime:  cfg.Lifetime,
		gravity:   cfg.Gravity,
		shrink:    cfg.Shrink,
	}
	for i := range ex.Particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)
		ex.Particles[i] = Particle{
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Radius: cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius),
			Color:  particlePalette[rng.Intn(len(particlePalette))],
		}
	}
	return ex
}

// Update ages the explosion and moves every particle.
func (ex *Explosion) Update() {
	ex.Age++
	for i := range ex.Particles {
		p := &ex.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.VY += ex.gravity
		p.Radius *= ex.shrink
	}
}

// Finished reports whether the explosion reached its lifetime.
func (ex *Explosion) Finished() bool {
	return ex.Age >= ex.Lifetime
}

// Alpha fades linearly from 1 to 0 over the lifetime.
func (ex *Explosion) Alpha() float64 {
	if ex.Lifetime <= 0 {
		return 0
	}
	return 1 - float64(ex.Age)/float64(ex.Lifetime)
}
