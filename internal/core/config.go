package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second of the render loop (default 60)
	Seed     int64 // RNG seed for piece selection
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Score    int  // Current score
	GameOver bool // A piece could not spawn
	Quit     bool // The player asked to leave
}

// Done reports whether the run loop should stop.
func (s GameState) Done() bool {
	return s.GameOver || s.Quit
}
