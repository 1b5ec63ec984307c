package invaders

import "github.com/vovakirdan/tui-invaders/internal/config"

// Formation owns the enemy grid: movement, collective bounce and enemy fire.
type Formation struct {
	Enemies []Enemy

	cfg    config.FormationConfig
	bullet config.BulletConfig
	fieldW float64
	rng    RandomSource

	speed        float64 // Horizontal speed assigned to newly spawned enemies
	fireTimer    int
	fireInterval int
}

// NewFormation creates an empty formation. Call Spawn to fill the grid.
func NewFormation(cfg config.InvadersConfig, rng RandomSource) *Formation {
	return &Formation{
		cfg:          cfg.Formation,
		bullet:       cfg.Bullets,
		fieldW:       cfg.Field.Width,
		rng:          rng,
		speed:        cfg.Formation.EnemySpeed,
		fireInterval: cfg.EnemyFire.Interval,
	}
}

// Spawn replaces the enemies with a full grid at the starting position.
func (f *Formation) Spawn() {
	c := f.cfg
	f.Enemies = make([]Enemy, 0, c.Rows*c.Cols)
	for row := range c.Rows {
		for col := range c.Cols {
			f.Enemies = append(f.Enemies, Enemy{
				X:         c.StartX + float64(col)*c.SpacingX,
				Y:         c.StartY + float64(row)*c.SpacingY,
				W:         c.EnemyWidth,
				H:         c.EnemyHeight,
				Speed:     f.speed,
				Dir:       1,
				Row:       row,
				Health:    c.EnemyHealth,
				MaxHealth: c.EnemyHealth,
			})
		}
	}
}

// SetPace changes the speed of future spawns and the fire interval.
// The fire timer is clamped so it stays within [0, interval].
func (f *Formation) SetPace(speed float64, fireInterval int) {
	f.speed = speed
	f.fireInterval = max(fireInterval, 1)
	f.fireTimer = min(f.fireTimer, f.fireInterval)
}

// ResetTimer restarts the enemy fire countdown.
func (f *Formation) ResetTimer() {
	f.fireTimer = 0
}

// Advance moves every enemy, then shifts the whole grid down and reverses it
// if any enemy touched a side. Returns true when the shift happened.
func (f *Formation) Advance() bool {
	if len(f.Enemies) == 0 {
		return false
	}
	for i := range f.Enemies {
		f.Enemies[i].Update()
	}

	// Bounds are checked after the move, so the grid can sit one step past
	// the edge for the frame that triggers the shift.
	left, right := f.Bounds()
	if right < f.fieldW && left > 0 {
		return false
	}
	for i := range f.Enemies {
		f.Enemies[i].ShiftDown(f.cfg.ShiftDown)
	}
	return true
}

// Bounds returns the leftmost left edge and rightmost right edge of the grid.
// An empty grid reports (fieldW, 0), which never triggers a shift.
func (f *Formation) Bounds() (left, right float64) {
	left, right = f.fieldW, 0
	for i := range f.Enemies {
		r := f.Enemies[i].Rect()
		left = min(left, r.X)
		right = max(right, r.Right())
	}
	return left, right
}

// Fire advances the fire timer. When the interval elapses, a random enemy
// fires from its lower-center edge. No time passes while the grid is empty.
func (f *Formation) Fire() (Bullet, bool) {
	if len(f.Enemies) == 0 {
		return Bullet{}, false
	}
	f.fireTimer++
	if f.fireTimer < f.fireInterval {
		return Bullet{}, false
	}
	f.fireTimer = 0

	e := &f.Enemies[f.rng.Intn(len(f.Enemies))]
	return Bullet{
		X:      e.X + e.W/2 - f.bullet.Width/2,
		Y:      e.Y + e.H,
		W:      f.bullet.Width,
		H:      f.bullet.Height,
		Speed:  f.bullet.EnemySpeed,
		Damage: f.bullet.Damage,
	}, true
}

// Reached reports whether any enemy's lower edge is at or below y.
func (f *Formation) Reached(y float64) bool {
	for i := range f.Enemies {
		if f.Enemies[i].Rect().Bottom() >= y {
			return true
		}
	}
	return false
}

// removeDead drops enemies whose health ran out.
func (f *Formation) removeDead() {
	kept := f.Enemies[:0]
	for _, e := range f.Enemies {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	f.Enemies = kept
}
