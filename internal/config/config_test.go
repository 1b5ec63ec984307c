package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded defaults differ from DefaultInvadersConfig:\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
		want   string
	}{
		{"zero field", func(c *InvadersConfig) { c.Field.Width = 0 }, "field"},
		{"empty grid", func(c *InvadersConfig) { c.Formation.Rows = 0 }, "formation"},
		{"zero fire interval", func(c *InvadersConfig) { c.EnemyFire.Interval = 0 }, "enemy_fire"},
		{"downward player bullet", func(c *InvadersConfig) { c.Bullets.PlayerSpeed = 8 }, "player_speed"},
		{"shrink of one", func(c *InvadersConfig) { c.Explosion.Shrink = 1 }, "shrink"},
		{"negative particles", func(c *InvadersConfig) { c.Explosion.Particles = -1 }, "particles"},
		{"inverted speed range", func(c *InvadersConfig) { c.Explosion.MinSpeed = c.Explosion.MaxSpeed + 1 }, "min_speed"},
		{"inverted radius range", func(c *InvadersConfig) { c.Explosion.MinRadius = c.Explosion.MaxRadius + 1 }, "min_radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestParseRejectsNegativeParticles(t *testing.T) {
	if _, err := Parse([]byte("explosion:\n  particles: -1\n")); err == nil {
		t.Error("negative particle count should be rejected before a game is built")
	}
	cfg, err := Parse([]byte("explosion:\n  particles: 0\n"))
	if err != nil {
		t.Fatalf("zero particles should be allowed: %v", err)
	}
	if cfg.Explosion.Particles != 0 {
		t.Errorf("expected 0 particles, got %d", cfg.Explosion.Particles)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("enemy_fire:\n  interval: 30\nformation:\n  rows: 3\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.EnemyFire.Interval != 30 {
		t.Errorf("interval should be overridden to 30, got %d", cfg.EnemyFire.Interval)
	}
	if cfg.Formation.Rows != 3 {
		t.Errorf("rows should be overridden to 3, got %d", cfg.Formation.Rows)
	}
	if cfg.Formation.Cols != 10 {
		t.Errorf("cols should keep default 10, got %d", cfg.Formation.Cols)
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  kill_points: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders failed: %v", err)
	}
	if cfg.Scoring.KillPoints != 25 {
		t.Errorf("kill points should be 25, got %d", cfg.Scoring.KillPoints)
	}
}

func TestLoadInvadersCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("enemy_fire:\n  interval: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadInvaders(bad)
	if err == nil {
		t.Fatal("invalid custom file should be an error")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error should carry the config prefix, got %q", err)
	}
}

func TestMarshalRoundTripsDefaults(t *testing.T) {
	data, err := Marshal(DefaultInvadersConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "enemy_fire:") {
		t.Errorf("marshalled YAML should use snake_case keys:\n%s", data)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse of marshalled defaults failed: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Error("marshalled defaults should parse back unchanged")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	cfg := DefaultInvadersConfig()
	ApplyInvadersPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled {
		t.Error("hard preset should enable difficulty")
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset initial level should be 0.7, got %v", cfg.Difficulty.InitialLevel)
	}

	ApplyInvadersPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable difficulty")
	}

	before := cfg
	ApplyInvadersPreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset should leave config unchanged")
	}
}
