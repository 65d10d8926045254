package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for frame timing and deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Frontend width (pixels for the window, cells for terminals)
	ScreenH  int   // Frontend height
	TickRate int   // Frames per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  300,
		ScreenH:  400,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Landed int // Pieces that landed during this frame
}
