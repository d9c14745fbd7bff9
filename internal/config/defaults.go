package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
// Matches defaults/tetris.yaml and is used when the embedded file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:     300,
			Height:    600,
			BlockSize: 30,
		},
		Timing: TimingConfig{
			FallInterval:  0.5,
			GameOverDelay: 3.0,
		},
		Scoring: ScoringConfig{
			PointsPerRow: 100,
		},
		Spawn: SpawnConfig{X: 3, Y: 0},
		Shapes: []ShapeConfig{
			{Name: "I", Color: "cyan", Rows: []string{"1111"}},
			{Name: "O", Color: "yellow", Rows: []string{"11", "11"}},
			{Name: "T", Color: "magenta", Rows: []string{"010", "111"}},
			{Name: "L", Color: "green", Rows: []string{"100", "111"}},
			{Name: "J", Color: "blue", Rows: []string{"001", "111"}},
			{Name: "S", Color: "red", Rows: []string{"110", "011"}},
			{Name: "Z", Color: "white", Rows: []string{"011", "110"}},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
