package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState summarizes a running game for the platform layer.
type GameState struct {
	Score    int
	Kills    int
	Ticks    int
	GameOver bool // the run ended, won or lost
	Won      bool
	Paused   bool
}

// StepResult is returned by every simulation step.
type StepResult struct {
	State GameState
}
