package config

import "fmt"

// Overrides are command-line values applied on top of a loaded config.
// Zero fields leave the loaded value in place.
type Overrides struct {
	FallInterval float64 // Seconds
}

// Apply returns cfg with the non-zero overrides applied, revalidated.
func (o Overrides) Apply(cfg TetrisConfig) (TetrisConfig, error) {
	if o.FallInterval != 0 {
		cfg.Timing.FallInterval = o.FallInterval
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid override: %w", err)
	}
	return cfg, nil
}
