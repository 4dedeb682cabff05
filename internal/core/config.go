package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to convert ticks into time.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickDuration returns the wall-clock length of one simulation tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Outcome describes a finished puzzle round.
type Outcome struct {
	DiskCount int           // Disks in the puzzle
	Moves     int           // Moves actually made
	Optimal   int           // Minimal number of moves for DiskCount
	Auto      bool          // Solved by the auto-solver rather than by hand
	Duration  time.Duration // Time from round start to solution
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	DiskCount   int      // Disks in the current puzzle
	Moves       int      // Moves made this round
	Solved      bool     // All disks sit on the target peg
	AutoPlaying bool     // Auto-solve owns the board; manual input is ignored
	Outcome     *Outcome // Set once per round, when the puzzle is first solved
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
