package config

import "math"

// Minimum enemy fire interval regardless of difficulty.
const minFireInterval = 10

// DifficultyManager calculates wave parameters based on score or wave count.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/wave.
// With progression disabled the level is always 0, so base values apply unchanged.
func (d *DifficultyManager) Level(score, wave int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "wave":
		progress = float64(wave-1) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeed returns the horizontal enemy speed for a new wave.
func (d *DifficultyManager) EnemySpeed(baseSpeed float64, score, wave int) float64 {
	level := d.Level(score, wave)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// FireInterval returns the enemy fire interval for a new wave.
func (d *DifficultyManager) FireInterval(baseInterval, score, wave int) int {
	level := d.Level(score, wave)
	reduction := int(level * float64(d.cfg.Scaling.FireIntervalReduction))
	result := baseInterval - reduction
	if result < minFireInterval && baseInterval >= minFireInterval {
		result = minFireInterval
	}
	if result < 1 {
		result = 1
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
