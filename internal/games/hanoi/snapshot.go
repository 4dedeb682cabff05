package hanoi

import (
	"fmt"
	"strings"
)

// Phase names the coarse state of a round.
type Phase string

const (
	PhasePlaying   Phase = "playing"
	PhaseArmed     Phase = "armed"
	PhaseAutoSolve Phase = "auto_solve"
	PhaseSolved    Phase = "solved"
	PhaseTooSmall  Phase = "paused_small_window"
)

// Snapshot captures the complete game state for tests and text front ends.
type Snapshot struct {
	Tick        uint64
	Pegs        [PegCount][]int // Bottom to top
	DiskCount   int
	Moves       int
	Optimal     int
	Selected    int // Armed peg or NoPeg
	Cursor      int
	Remaining   int // Unplayed solver moves
	Message     string
	MessageKind MessageKind
	Locked      bool
	Phase       Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhaseTooSmall
	case g.puzzle.AutoPlaying():
		phase = PhaseAutoSolve
	case g.puzzle.IsSolved():
		phase = PhaseSolved
	case g.puzzle.Selected() != NoPeg:
		phase = PhaseArmed
	}

	return Snapshot{
		Tick:        g.ticks,
		Pegs:        g.puzzle.Pegs(),
		DiskCount:   g.puzzle.DiskCount(),
		Moves:       g.puzzle.MoveCount(),
		Optimal:     g.puzzle.OptimalMoveCount(),
		Selected:    g.puzzle.Selected(),
		Cursor:      g.cursor,
		Remaining:   g.player.Remaining(),
		Message:     g.message,
		MessageKind: g.messageKind,
		Locked:      g.controlsLocked,
		Phase:       phase,
	}
}

// Solved reports whether all disks are on the target peg.
func (s Snapshot) Solved() bool {
	return len(s.Pegs[TargetPeg]) == s.DiskCount
}

// String renders the snapshot as plain text, one peg per line:
//
//	Disks: 3  Moves: 1/7  Phase: playing
//	Peg 1: 3 2
//	Peg 2:
//	Peg 3: 1
func (s Snapshot) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Disks: %d  Moves: %d/%d  Phase: %s", s.DiskCount, s.Moves, s.Optimal, s.Phase)
	if s.Phase == PhaseAutoSolve {
		fmt.Fprintf(&b, "  Remaining: %d", s.Remaining)
	}
	b.WriteByte('\n')

	for i, stack := range s.Pegs {
		marker := " "
		if i == s.Selected {
			marker = "*"
		}
		fmt.Fprintf(&b, "%sPeg %d:", marker, i+1)
		for _, size := range stack {
			fmt.Fprintf(&b, " %d", size)
		}
		b.WriteByte('\n')
	}

	if s.Message != "" {
		fmt.Fprintf(&b, "[%s] %s\n", s.MessageKind, s.Message)
	}
	return b.String()
}
