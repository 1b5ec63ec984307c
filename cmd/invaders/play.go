package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of invaders.

Controls:
  Left/A, Right/D  - Move
  Space/Up         - Fire
  Enter            - Start
  R                - Restart
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, speeds up each wave
  normal - Start at 30% difficulty, speeds up each wave
  hard   - Start at 70% difficulty, speeds up each wave
  fixed  - No progression, classic constant pace

Examples:
  invaders play
  invaders play --difficulty normal
  invaders play --seed 42 --mute
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultConfig().Volume, "Sound volume from 0 to 1")
}

// loadGameConfig loads the configuration and applies the difficulty preset.
func loadGameConfig(path, difficulty string) (config.InvadersConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.InvadersConfig{}, err
	}
	cfg, err := config.LoadInvaders(path)
	if err != nil {
		return config.InvadersConfig{}, err
	}
	config.ApplyInvadersPreset(&cfg, preset)
	return cfg, nil
}

// openAudio returns the speaker synth, or a silent player if sound is off
// or unavailable. The cleanup func is always safe to call.
func openAudio(mute bool, volume float64, logger *log.Logger) (invaders.Audio, func()) {
	if mute {
		return audio.Nop{}, func() {}
	}
	cfg := audio.DefaultConfig()
	cfg.Volume = min(max(volume, 0), 1)
	synth, err := audio.New(cfg)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return audio.Nop{}, func() {}
	}
	return synth, synth.Close
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, logCloser, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = play(logger)
	logCloser.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one session. Every error is logged before it is returned.
func play(logger *log.Logger) error {
	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	player, closeAudio := openAudio(flagMute, flagVolume, logger)
	defer closeAudio()

	progression := config.NewDifficultyManager(gameCfg.Difficulty).IsEnabled()
	logger.Info("session starting",
		"cols", width, "rows", height, "fps", flagFPS,
		"difficulty", flagDifficulty, "progression", progression)

	err = tui.Run(tui.Options{
		Config:  gameCfg,
		Runtime: rt,
		Audio:   player,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("game exited with error", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
