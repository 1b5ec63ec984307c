package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// resolveCollisions applies this tick's hits. It returns true if the player
// was hit, in which case the game is already over.
//
// Removals are marked during the pair scan and applied afterwards, so every
// bullet and enemy is visited exactly once regardless of what else dies.
func (g *Game) resolveCollisions() bool {
	enemies := g.formation.Enemies
	bullets := g.player.Bullets
	consumed := make([]bool, len(bullets))
	killed := false

	for bi := range bullets {
		b := &bullets[bi]
		hitbox := b.Rect()
		for ei := range enemies {
			e := &enemies[ei]
			if !e.Alive() || !hitbox.Intersects(e.Rect()) {
				continue
			}
			// A bullet damages only the first enemy it overlaps.
			consumed[bi] = true
			e.Health -= b.Damage
			if !e.Alive() {
				g.killEnemy(e)
				killed = true
			}
			break
		}
	}

	kept := bullets[:0]
	for bi, b := range bullets {
		if !consumed[bi] {
			kept = append(kept, b)
		}
	}
	g.player.Bullets = kept
	if killed {
		g.formation.removeDead()
	}

	playerBox := g.player.Rect()
	for _, b := range g.enemyBullets {
		if b.Rect().Intersects(playerBox) {
			g.gameOver()
			return true
		}
	}

	if g.score > g.cfg.Scoring.PowerUpThreshold && !g.player.PowerUp {
		g.player.PowerUp = true
		g.audio.Play(core.CuePowerUp)
	}
	return false
}

// killEnemy spawns the explosion and awards the kill.
func (g *Game) killEnemy(e *Enemy) {
	c := e.Center()
	g.explosions = append(g.explosions, NewExplosion(c.X, c.Y, g.cfg.Explosion, g.fxRNG))
	g.score += g.cfg.Scoring.KillPoints
	g.audio.Play(core.CueExplosion)
	g.reporter.ReportScore(g.score)
}
