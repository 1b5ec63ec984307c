// invaders is a Space Invaders-style shooter for the terminal.
//
// Usage:
//
//	invaders play            - Play the game
//	invaders config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Set log file (default: ~/.invaders/invaders.log)
//	--log-level <level>   - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - shoot down the descending grid in your terminal",
	Long: `Invaders is a terminal take on the classic arcade shooter. Move your
ship along the bottom of the screen and shoot the enemy grid before it
reaches you. Clearing the grid brings the next wave.

Available commands:
  play     - Play the game
  config   - Print the effective configuration

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-invaders.yaml --mute
  invaders config > ~/.invaders/configs/invaders.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.invaders/invaders.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
