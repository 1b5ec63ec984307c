package core

// Cue names a sound effect the simulation asks the platform to play.
type Cue int

const (
	CueShoot      Cue = iota // Player fired a normal bullet
	CuePowerShoot            // Player fired a powered-up bullet
	CueEnemyShoot            // An enemy fired
	CueExplosion             // An enemy was destroyed
	CuePowerUp               // Power-up latch activated
	CueGameOver              // Session ended
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CuePowerShoot:
		return "power-shoot"
	case CueEnemyShoot:
		return "enemy-shoot"
	case CueExplosion:
		return "explosion"
	case CuePowerUp:
		return "power-up"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
