// Package invaders implements a Space Invaders-style shooter.
// The player ship fires upward at a descending grid of enemies that sweeps
// side to side and fires back at random.
package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// State is the game's lifecycle phase.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is the simulation root. It owns every entity collection.
type Game struct {
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager

	state        State
	player       *Player
	formation    *Formation
	enemyBullets []Bullet
	explosions   []*Explosion
	score        int
	wave         int
	tickCount    int

	audio    Audio
	reporter Reporter
	fireRNG  RandomSource // Chooses which enemy fires
	fxRNG    RandomSource // Particle effects only
}

// Option configures a Game at construction.
type Option func(*Game)

// WithAudio sets the cue player.
func WithAudio(a Audio) Option {
	return func(g *Game) {
		if a != nil {
			g.audio = a
		}
	}
}

// WithReporter sets the score and lifecycle listener.
func WithReporter(r Reporter) Option {
	return func(g *Game) {
		if r != nil {
			g.reporter = r
		}
	}
}

// WithRandom sets the source used to pick the firing enemy.
func WithRandom(r RandomSource) Option {
	return func(g *Game) {
		if r != nil {
			g.fireRNG = r
		}
	}
}

// WithEffectsRandom sets the source used for explosion particles.
func WithEffectsRandom(r RandomSource) Option {
	return func(g *Game) {
		if r != nil {
			g.fxRNG = r
		}
	}
}

// WithSeed seeds both built-in random sources.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.fireRNG = NewSimpleRNG(seed)
		g.fxRNG = NewSimpleRNG(seed ^ 0x5eed)
	}
}

// New creates a game in the start state with a full enemy grid.
func New(cfg config.InvadersConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		audio:      nopAudio{},
		reporter:   nopReporter{},
		fireRNG:    NewSimpleRNG(1),
		fxRNG:      NewSimpleRNG(2),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.formation = NewFormation(cfg, g.fireRNG)
	g.reset()
	g.state = StateStart
	return g
}

// reset puts every entity back to the beginning of a session.
func (g *Game) reset() {
	g.player = NewPlayer(g.cfg)
	g.enemyBullets = nil
	g.explosions = nil
	g.score = 0
	g.wave = 1
	g.tickCount = 0
	g.formation.ResetTimer()
	g.applyPace()
	g.formation.Spawn()
}

// applyPace hands the current difficulty to the formation.
func (g *Game) applyPace() {
	speed := g.difficulty.EnemySpeed(g.cfg.Formation.EnemySpeed, g.score, g.wave)
	interval := g.difficulty.FireInterval(g.cfg.EnemyFire.Interval, g.score, g.wave)
	g.formation.SetPace(speed, interval)
}

// Start leaves the start screen. It returns true if the game began playing,
// meaning the caller must schedule the first tick.
func (g *Game) Start() bool {
	if g.state != StateStart {
		return false
	}
	g.state = StatePlaying
	return true
}

// Restart begins a fresh session: new player, zero score, cleared bullets
// and explosions, a full grid. It returns true if the loop was stopped and
// the caller must schedule a tick.
func (g *Game) Restart() bool {
	wasPlaying := g.state == StatePlaying
	g.reset()
	g.state = StatePlaying
	g.reporter.ReportScore(g.score)
	return !wasPlaying
}

// Step advances the game by one tick. Outside the playing state it only
// reports the current state.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	if g.player.Update(in) {
		if g.player.PowerUp {
			g.audio.Play(core.CuePowerShoot)
		} else {
			g.audio.Play(core.CueShoot)
		}
	}

	g.formation.Advance()

	if b, ok := g.formation.Fire(); ok {
		g.enemyBullets = append(g.enemyBullets, b)
		g.audio.Play(core.CueEnemyShoot)
	}

	g.enemyBullets = updateBullets(g.enemyBullets, g.cfg.Field.Height)
	g.updateExplosions()

	if g.resolveCollisions() {
		return core.StepResult{State: g.State()}
	}

	if len(g.formation.Enemies) == 0 {
		g.nextWave()
	}

	if g.formation.Reached(g.player.Y) {
		g.gameOver()
	}

	return core.StepResult{State: g.State()}
}

// updateExplosions ages explosions and drops finished ones.
func (g *Game) updateExplosions() {
	kept := g.explosions[:0]
	for _, ex := range g.explosions {
		ex.Update()
		if !ex.Finished() {
			kept = append(kept, ex)
		}
	}
	g.explosions = kept
}

// nextWave refills the cleared grid. Waves never end the game.
func (g *Game) nextWave() {
	g.wave++
	g.applyPace()
	g.formation.Spawn()
	g.reporter.ReportWave(g.wave)
}

// gameOver ends the session and stops the loop.
func (g *Game) gameOver() {
	g.state = StateGameOver
	g.audio.Play(core.CueGameOver)
	g.reporter.ReportGameOver(g.score)
}

// Render draws the field. The starfield is always drawn; entities only
// while playing, in order: player, enemies, enemy bullets, explosions.
func (g *Game) Render(dst Surface) {
	dst.Clear(core.ColorBlack)

	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	for i := range g.cfg.Stars.Count {
		x := math.Mod(float64(i)*g.cfg.Stars.StepX, w)
		y := math.Mod(float64(i)*g.cfg.Stars.StepY, h)
		dst.DrawRect(x, y, 1, 1, core.ColorWhite)
	}

	if g.state != StatePlaying {
		return
	}

	dst.DrawTriangle(g.player.Shape(), core.ColorGreen)
	for _, b := range g.player.Bullets {
		dst.DrawRect(b.X, b.Y, b.W, b.H, b.Color())
	}

	for i := range g.formation.Enemies {
		e := &g.formation.Enemies[i]
		dst.DrawRect(e.X, e.Y, e.W, e.H, e.Color())
	}

	for _, b := range g.enemyBullets {
		dst.DrawRect(b.X, b.Y, b.W, b.H, b.Color())
	}

	for _, ex := range g.explosions {
		alpha := ex.Alpha()
		for _, p := range ex.Particles {
			dst.DrawCircle(p.X, p.Y, p.Radius, p.Color, alpha)
		}
	}
}

// State returns the current game state summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Wave:     g.wave,
		PowerUp:  g.player.PowerUp,
		Playing:  g.state == StatePlaying,
		GameOver: g.state == StateGameOver,
	}
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() State {
	return g.state
}

// Field returns the logical field size.
func (g *Game) Field() (width, height float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}
