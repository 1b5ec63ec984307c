package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration.
// It matches defaults/invaders.yaml and is used when the embedded file
// cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       30,
			Speed:        5,
			BottomMargin: 20,
			MaxCooldown:  15,
		},
		Bullets: BulletConfig{
			Width:       4,
			Height:      10,
			PlayerSpeed: -8,
			EnemySpeed:  4,
			Damage:      1,
			PowerDamage: 3,
		},
		Formation: FormationConfig{
			Rows:        5,
			Cols:        10,
			StartX:      100,
			StartY:      50,
			SpacingX:    60,
			SpacingY:    50,
			EnemyWidth:  40,
			EnemyHeight: 30,
			EnemySpeed:  1,
			ShiftDown:   20,
			EnemyHealth: 1,
		},
		EnemyFire: EnemyFireConfig{
			Interval: 60,
		},
		Explosion: ExplosionConfig{
			Particles: 20,
			Lifetime:  30,
			Gravity:   0.1,
			Shrink:    0.95,
			MinSpeed:  1,
			MaxSpeed:  5,
			MinRadius: 2,
			MaxRadius: 5,
		},
		Scoring: ScoringConfig{
			KillPoints:       10,
			PowerUpThreshold: 100,
		},
		Stars: StarsConfig{
			Count: 50,
			StepX: 37,
			StepY: 53,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:       1.0,
				FireIntervalReduction: 40,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
