package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ValidationError contains details about a rejected configuration value.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks every section and joins all problems found.
func (c TetrisConfig) Validate() error {
	var errs []error
	errs = append(errs, c.Board.validate()...)
	errs = append(errs, c.Timing.validate()...)
	if c.Scoring.PointsPerRow < 0 {
		errs = append(errs, invalid("BAD_SCORING", "points_per_row must not be negative, got %d", c.Scoring.PointsPerRow))
	}
	if c.Board.BlockSize > 0 && (c.Spawn.X < 0 || c.Spawn.X >= c.Board.Cols()) {
		errs = append(errs, invalid("BAD_SPAWN", "spawn.x %d outside [0, %d)", c.Spawn.X, c.Board.Cols()))
	}
	if len(c.Shapes) == 0 {
		errs = append(errs, invalid("NO_SHAPES", "at least one shape is required"))
	}
	for i, s := range c.Shapes {
		errs = append(errs, s.validate(i)...)
	}
	return errors.Join(errs...)
}

func (b BoardConfig) validate() []error {
	if b.BlockSize <= 0 {
		return []error{invalid("BAD_BOARD", "block_size must be positive, got %d", b.BlockSize)}
	}
	var errs []error
	if b.Width < b.BlockSize || b.Width%b.BlockSize != 0 {
		errs = append(errs, invalid("BAD_BOARD", "width %d is not a positive multiple of block_size %d", b.Width, b.BlockSize))
	}
	if b.Height < b.BlockSize || b.Height%b.BlockSize != 0 {
		errs = append(errs, invalid("BAD_BOARD", "height %d is not a positive multiple of block_size %d", b.Height, b.BlockSize))
	}
	return errs
}

func (t TimingConfig) validate() []error {
	var errs []error
	if t.FallInterval <= 0 {
		errs = append(errs, invalid("BAD_TIMING", "fall_interval must be positive, got %v", t.FallInterval))
	}
	if t.GameOverDelay < 0 {
		errs = append(errs, invalid("BAD_TIMING", "game_over_delay must not be negative, got %v", t.GameOverDelay))
	}
	return errs
}

func (s ShapeConfig) validate(index int) []error {
	label := s.Name
	if label == "" {
		label = fmt.Sprintf("#%d", index)
	}

	var errs []error
	if _, ok := core.ParseColor(s.Color); !ok {
		errs = append(errs, invalid("BAD_COLOR", "shape %s: unknown color %q", label, s.Color))
	}
	if len(s.Rows) == 0 {
		return append(errs, invalid("BAD_SHAPE", "shape %s: no rows", label))
	}

	width := len(s.Rows[0])
	occupied := 0
	for i, row := range s.Rows {
		if len(row) != width || width == 0 {
			errs = append(errs, invalid("BAD_SHAPE", "shape %s: row %d has width %d, expected %d", label, i, len(row), width))
			continue
		}
		for _, ch := range row {
			switch ch {
			case '1':
				occupied++
			case '0':
			default:
				errs = append(errs, invalid("BAD_SHAPE", "shape %s: row %d contains %q, only 0 and 1 allowed", label, i, ch))
			}
		}
	}
	if occupied == 0 {
		errs = append(errs, invalid("BAD_SHAPE", "shape %s: no occupied cells", label))
	}
	return errs
}
