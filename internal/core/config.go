package core

// RuntimeConfig describes the host surface a game runs on.
// Scenes use it for layout and for deterministic random placement.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	DesignW  float64 // Design resolution width scenes lay out in
	DesignH  float64 // Design resolution height
	TickRate int     // Frames per second requested from the host
	Seed     int64   // RNG seed for deterministic scenes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		DesignW:  80,
		DesignH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes a running demo for the host's status bar and
// score persistence.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the time manager is paused
}
