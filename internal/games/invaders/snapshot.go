package invaders

import "math"

// Snapshot contains the simulation state relevant to gameplay.
// Explosions are cosmetic and only counted. Positions are stored as
// float64 bits so equal snapshots hash equally.
type Snapshot struct {
	Tick      uint64
	State     string
	Score     int
	Wave      int
	PowerUp   bool
	PlayerX   uint64
	Cooldown  int
	FireTimer int

	// Each enemy is 4 values: X, Y, Dir, Health
	EnemyData []uint64
	// Each bullet is 2 values: X, Y
	PlayerBulletData []uint64
	EnemyBulletData  []uint64

	ExplosionCount int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemies := g.formation.Enemies
	enemyData := make([]uint64, 0, len(enemies)*4)
	for _, e := range enemies {
		enemyData = append(enemyData,
			math.Float64bits(e.X),
			math.Float64bits(e.Y),
			math.Float64bits(e.Dir),
			uint64(e.Health), //#nosec G115 -- health of a live enemy is positive
		)
	}

	return Snapshot{
		Tick:             uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:            g.state.String(),
		Score:            g.score,
		Wave:             g.wave,
		PowerUp:          g.player.PowerUp,
		PlayerX:          math.Float64bits(g.player.X),
		Cooldown:         g.player.Cooldown,
		FireTimer:        g.formation.fireTimer,
		EnemyData:        enemyData,
		PlayerBulletData: bulletData(g.player.Bullets),
		EnemyBulletData:  bulletData(g.enemyBullets),
		ExplosionCount:   len(g.explosions),
	}
}

func bulletData(bullets []Bullet) []uint64 {
	data := make([]uint64, 0, len(bullets)*2)
	for _, b := range bullets {
		data = append(data, math.Float64bits(b.X), math.Float64bits(b.Y))
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cooldown)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FireTimer) //#nosec G115 -- hash computation
	h = h*31 + snap.PlayerX
	if snap.PowerUp {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + v
	}
	for _, v := range snap.PlayerBulletData {
		h = h*31 + v
	}
	for _, v := range snap.EnemyBulletData {
		h = h*31 + v
	}

	h = h*31 + uint64(snap.ExplosionCount) //#nosec G115 -- hash computation
	return h
}
