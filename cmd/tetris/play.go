package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Left/H          - Move left
  Right/L         - Move right
  Down/J          - Soft drop
  Up/K/Space      - Rotate
  Q/Ctrl+C        - Quit

The final score stays on screen for a few seconds after the game ends.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	settings, err := tetris.NewSettings(cfg)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	minW, minH := tetris.MinScreenSize(settings.Cols, settings.Rows)
	logger.Debug("terminal size", "width", width, "height", height, "min_width", minW, "min_height", minH+1)

	state, err := tui.Run(tetris.New(settings), tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		GameOverDelay: cfg.Timing.GameOverDuration(),
		Logger:        logger,
	})
	if err != nil {
		logger.Error("game aborted", "error", err)
		return err
	}

	fmt.Printf("Final score: %d\n", state.Score)
	return nil
}
