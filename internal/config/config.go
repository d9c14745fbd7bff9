// Package config provides YAML-based configuration loading for the
// game constants: board size, timing, scoring, spawn point and shapes.
package config

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Shapes  []ShapeConfig `yaml:"shapes"`
}

// BoardConfig defines the playfield in layout units.
type BoardConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	BlockSize int `yaml:"block_size"`
}

// Cols returns the number of grid columns.
func (b BoardConfig) Cols() int {
	return b.Width / b.BlockSize
}

// Rows returns the number of grid rows.
func (b BoardConfig) Rows() int {
	return b.Height / b.BlockSize
}

// TimingConfig defines real-time intervals, in seconds.
type TimingConfig struct {
	FallInterval  float64 `yaml:"fall_interval"`
	GameOverDelay float64 `yaml:"game_over_delay"`
}

// FallDuration returns the gravity interval as a duration.
func (t TimingConfig) FallDuration() time.Duration {
	return seconds(t.FallInterval)
}

// GameOverDuration returns how long the final screen is shown.
func (t TimingConfig) GameOverDuration() time.Duration {
	return seconds(t.GameOverDelay)
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// ScoringConfig defines points awarded per cleared row.
type ScoringConfig struct {
	PointsPerRow int `yaml:"points_per_row"`
}

// SpawnConfig is the top-left anchor of freshly spawned pieces.
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Coord returns the spawn anchor as a grid coordinate.
func (s SpawnConfig) Coord() core.Coord {
	return core.C(s.X, s.Y)
}

// ShapeConfig is one polyomino: rows of '0'/'1' characters and a color name.
type ShapeConfig struct {
	Name  string   `yaml:"name"`
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// Cells converts the row strings to an occupancy matrix.
// Call Validate first; any character other than '1' reads as empty.
func (s ShapeConfig) Cells() [][]bool {
	cells := make([][]bool, len(s.Rows))
	for i, row := range s.Rows {
		cells[i] = make([]bool, len(row))
		for j, ch := range row {
			cells[i][j] = ch == '1'
		}
	}
	return cells
}

// ColorValue returns the parsed color, or ColorDefault if unknown.
func (s ShapeConfig) ColorValue() core.Color {
	c, _ := core.ParseColor(s.Color)
	return c
}
