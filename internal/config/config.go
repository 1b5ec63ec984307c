// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders game.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all tunable constants of the simulation.
// Units are logical field pixels and ticks.
type InvadersConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Formation  FormationConfig  `yaml:"formation"`
	EnemyFire  EnemyFireConfig  `yaml:"enemy_fire"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Stars      StarsConfig      `yaml:"stars"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical play field.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between ship and field bottom
	MaxCooldown  int     `yaml:"max_cooldown"`  // Ticks between shots
}

// BulletConfig defines both player and enemy bullets.
type BulletConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"` // Negative = upward
	EnemySpeed  float64 `yaml:"enemy_speed"`  // Positive = downward
	Damage      int     `yaml:"damage"`
	PowerDamage int     `yaml:"power_damage"`
}

// FormationConfig defines the enemy grid.
type FormationConfig struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	SpacingX    float64 `yaml:"spacing_x"`
	SpacingY    float64 `yaml:"spacing_y"`
	EnemyWidth  float64 `yaml:"enemy_width"`
	EnemyHeight float64 `yaml:"enemy_height"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	ShiftDown   float64 `yaml:"shift_down"`
	EnemyHealth int     `yaml:"enemy_health"`
}

// EnemyFireConfig defines the enemy fire timer.
type EnemyFireConfig struct {
	Interval int `yaml:"interval"` // Ticks between enemy shots
}

// ExplosionConfig defines the cosmetic particle burst.
type ExplosionConfig struct {
	Particles int     `yaml:"particles"`
	Lifetime  int     `yaml:"lifetime"` // Ticks
	Gravity   float64 `yaml:"gravity"`
	Shrink    float64 `yaml:"shrink"` // Radius multiplier per tick, in (0, 1)
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

// ScoringConfig defines score rewards and the power-up latch.
type ScoringConfig struct {
	KillPoints       int `yaml:"kill_points"`
	PowerUpThreshold int `yaml:"power_up_threshold"` // Power-up activates once score exceeds this
}

// StarsConfig defines the fixed background pattern.
type StarsConfig struct {
	Count int     `yaml:"count"`
	StepX float64 `yaml:"step_x"`
	StepY float64 `yaml:"step_y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "wave", or "none"
	MaxAt int    `yaml:"max_at"` // Score/wave at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier       float64 `yaml:"speed_multiplier"`        // Multiplier added to enemy speed at max difficulty
	FireIntervalReduction int     `yaml:"fire_interval_reduction"` // Ticks removed from the fire interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports every value that would break the simulation.
func (c InvadersConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field must have positive size, got %vx%v", c.Field.Width, c.Field.Height)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player must have positive size")
	check(c.Player.Speed >= 0, "player speed must not be negative")
	check(c.Player.MaxCooldown >= 0, "player max_cooldown must not be negative")
	check(c.Bullets.Width > 0 && c.Bullets.Height > 0, "bullets must have positive size")
	check(c.Bullets.PlayerSpeed < 0, "bullets player_speed must be negative (upward), got %v", c.Bullets.PlayerSpeed)
	check(c.Bullets.EnemySpeed > 0, "bullets enemy_speed must be positive (downward), got %v", c.Bullets.EnemySpeed)
	check(c.Bullets.Damage >= 1 && c.Bullets.PowerDamage >= 1, "bullet damage must be at least 1")
	check(c.Formation.Rows > 0 && c.Formation.Cols > 0, "formation must have at least one row and column")
	check(c.Formation.EnemyWidth > 0 && c.Formation.EnemyHeight > 0, "enemies must have positive size")
	check(c.Formation.EnemyHealth >= 1, "enemy_health must be at least 1")
	check(c.EnemyFire.Interval > 0, "enemy_fire interval must be positive, got %d", c.EnemyFire.Interval)
	check(c.Explosion.Particles >= 0, "explosion particles must not be negative, got %d", c.Explosion.Particles)
	check(c.Explosion.Lifetime > 0, "explosion lifetime must be positive")
	check(c.Explosion.MinSpeed <= c.Explosion.MaxSpeed, "explosion min_speed %v exceeds max_speed %v", c.Explosion.MinSpeed, c.Explosion.MaxSpeed)
	check(c.Explosion.MinRadius <= c.Explosion.MaxRadius, "explosion min_radius %v exceeds max_radius %v", c.Explosion.MinRadius, c.Explosion.MaxRadius)
	check(c.Explosion.Shrink > 0 && c.Explosion.Shrink < 1, "explosion shrink must be in (0, 1), got %v", c.Explosion.Shrink)
	check(c.Scoring.KillPoints > 0, "kill_points must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
