// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play      - Play a game
//	tetris shapes    - List the configured pieces
//	tetris config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>          - Custom config YAML
//	--fps <rate>             - Set tick rate (default: 60)
//	--seed <value>           - Set RNG seed for reproducible gameplay
//	--fall-interval <secs>   - Override the gravity interval
//	--log-file <path>        - Write logs to a file
//	--debug                  - Log every locked piece
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagConfig       string
	flagFPS          int
	flagSeed         int64
	flagFallInterval float64
	flagLogFile      string
	flagDebug        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `Stack falling pieces, clear full rows, and score until the board
tops out.

Available commands:
  play     - Start a game
  shapes   - Show the piece set
  config   - Print the effective configuration as YAML

Examples:
  tetris play
  tetris play --seed 42
  tetris play --fall-interval 0.3 --log-file tetris.log --debug
  tetris config > ~/.tetris/tetris.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().Float64Var(&flagFallInterval, "fall-interval", 0, "Seconds between gravity steps (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config search path and applies flag overrides.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	return config.Overrides{FallInterval: flagFallInterval}.Apply(cfg)
}

// newLogger opens the log destination. Without --log-file output is
// discarded, since the terminal belongs to the game. The returned func
// closes the file.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
