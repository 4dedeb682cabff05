// Package hanoi implements the Tower of Hanoi puzzle: the board state machine,
// the optimal solution generator with timed playback, and the game that ties
// manual play and auto-solve together.
package hanoi

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-hanoi/internal/config"
)

// Board dimensions.
const (
	PegCount = 3
	NoPeg    = -1 // No peg is armed

	MinDisks = config.MinDisks
	MaxDisks = config.MaxDisks
)

// SourcePeg and TargetPeg are where disks start and where they must end up.
const (
	SourcePeg    = 0
	AuxiliaryPeg = 1
	TargetPeg    = 2
)

var (
	// ErrInvalidMove is wrapped by every rejected move.
	ErrInvalidMove = errors.New("invalid move")

	// ErrPegOutOfRange is returned when a peg index is not in 0..PegCount-1.
	ErrPegOutOfRange = errors.New("peg index out of range")
)

// MoveError describes why a move was rejected.
type MoveError struct {
	From, To int
	Reason   string
}

func (e *MoveError) Error() string {
	return e.Reason
}

// Unwrap lets callers match any rejection with errors.Is(err, ErrInvalidMove).
func (e *MoveError) Unwrap() error {
	return ErrInvalidMove
}

// Puzzle holds the authoritative board state and decides move legality.
// A Puzzle is owned by a single caller and is not safe for concurrent use.
type Puzzle struct {
	pegs        [PegCount][]int // bottom to top, strictly decreasing
	diskCount   int
	moveCount   int
	selected    int
	autoPlaying bool
}

// NewPuzzle creates a puzzle with diskCount disks stacked on the source peg.
func NewPuzzle(diskCount int) *Puzzle {
	p := &Puzzle{}
	p.Reset(diskCount)
	return p
}

// Reset starts a fresh puzzle. The disk count is clamped to [MinDisks, MaxDisks];
// all disks go onto the source peg, largest at the bottom. Move count,
// selection and the auto-play flag are cleared.
func (p *Puzzle) Reset(diskCount int) {
	diskCount = config.ClampDisks(diskCount)

	source := make([]int, 0, diskCount)
	for size := diskCount; size >= 1; size-- {
		source = append(source, size)
	}

	p.pegs = [PegCount][]int{source, nil, nil}
	p.diskCount = diskCount
	p.moveCount = 0
	p.selected = NoPeg
	p.autoPlaying = false
}

// DiskCount returns the number of disks in play.
func (p *Puzzle) DiskCount() int {
	return p.diskCount
}

// MoveCount returns the number of successful moves since the last reset.
func (p *Puzzle) MoveCount() int {
	return p.moveCount
}

// OptimalMoveCount returns 2^n - 1 for the current disk count.
func (p *Puzzle) OptimalMoveCount() int {
	return OptimalMoves(p.diskCount)
}

// IsSolved reports whether every disk sits on the target peg.
// Disks are conserved, so checking the target peg's height suffices.
func (p *Puzzle) IsSolved() bool {
	return len(p.pegs[TargetPeg]) == p.diskCount
}

// TopDisk returns the size of the topmost disk on peg, or 0 if the peg is empty.
func (p *Puzzle) TopDisk(peg int) (int, error) {
	if !validPeg(peg) {
		return 0, fmt.Errorf("%w: %d", ErrPegOutOfRange, peg)
	}
	stack := p.pegs[peg]
	if len(stack) == 0 {
		return 0, nil
	}
	return stack[len(stack)-1], nil
}

// ValidateMove checks whether the top disk of from may be placed on to.
// It returns nil for a legal move and a *MoveError otherwise.
func (p *Puzzle) ValidateMove(from, to int) error {
	if !validPeg(from) || !validPeg(to) {
		return &MoveError{From: from, To: to, Reason: fmt.Sprintf("Invalid peg: %s → %s", pegLabel(from), pegLabel(to))}
	}
	if from == to {
		return &MoveError{From: from, To: to, Reason: fmt.Sprintf("Peg %d is both source and destination", from+1)}
	}

	moving, _ := p.TopDisk(from)
	if moving == 0 {
		return &MoveError{From: from, To: to, Reason: fmt.Sprintf("Peg %d is empty", from+1)}
	}

	// An empty destination accepts any disk
	below, _ := p.TopDisk(to)
	if below != 0 && below < moving {
		return &MoveError{
			From:   from,
			To:     to,
			Reason: fmt.Sprintf("Cannot place disk %d on smaller disk %d", moving, below),
		}
	}

	return nil
}

// ApplyMove moves the top disk of from onto to. An illegal move leaves the
// puzzle untouched and returns the validation error.
func (p *Puzzle) ApplyMove(from, to int) error {
	if err := p.ValidateMove(from, to); err != nil {
		return err
	}

	src := p.pegs[from]
	disk := src[len(src)-1]
	p.pegs[from] = src[:len(src)-1]
	p.pegs[to] = append(p.pegs[to], disk)
	p.moveCount++

	return nil
}

// SelectPeg arms a peg as the pending move source. NoPeg clears the selection.
func (p *Puzzle) SelectPeg(peg int) {
	p.selected = peg
}

// Selected returns the armed peg or NoPeg.
func (p *Puzzle) Selected() int {
	return p.selected
}

// SetAutoPlaying sets the flag that tells the owner to ignore manual input.
// The puzzle itself does not enforce it.
func (p *Puzzle) SetAutoPlaying(on bool) {
	p.autoPlaying = on
}

// AutoPlaying reports whether auto-solve currently owns the board.
func (p *Puzzle) AutoPlaying() bool {
	return p.autoPlaying
}

// Peg returns a copy of one peg's stack, bottom to top.
// Out-of-range indices yield nil.
func (p *Puzzle) Peg(peg int) []int {
	if !validPeg(peg) {
		return nil
	}
	return append([]int(nil), p.pegs[peg]...)
}

// Pegs returns a deep copy of all three stacks.
func (p *Puzzle) Pegs() [PegCount][]int {
	var out [PegCount][]int
	for i := range p.pegs {
		out[i] = append([]int{}, p.pegs[i]...)
	}
	return out
}

// Clone returns an independent copy of the puzzle.
func (p *Puzzle) Clone() *Puzzle {
	c := *p
	c.pegs = p.Pegs()
	return &c
}

func validPeg(peg int) bool {
	return peg >= 0 && peg < PegCount
}

// pegLabel renders a peg index for messages, 1-based when valid.
func pegLabel(peg int) string {
	if validPeg(peg) {
		return fmt.Sprintf("%d", peg+1)
	}
	return fmt.Sprintf("#%d", peg)
}
