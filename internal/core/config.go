package core

import "time"

// RuntimeConfig is what the platform hands a game on every Reset.
// The board itself never looks at the screen size; only the renderer does.
type RuntimeConfig struct {
	ScreenW  int   // Columns available to the game
	ScreenH  int   // Rows available to the game, footer excluded
	TickRate int   // Steps per second; <= 0 means DefaultTickRate
	Seed     int64 // Shape RNG seed; 0 lets the platform pick one from the clock
}

// DefaultTickRate is the step rate used when none is configured.
const DefaultTickRate = 60

// DefaultConfig returns an 80x24 screen at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// TickInterval returns the simulated time covered by one Step.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is polled by the platform after each Step.
// There is no score: a game ends only when a new piece cannot spawn.
type GameState struct {
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
