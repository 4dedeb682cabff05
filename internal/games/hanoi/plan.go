package hanoi

import "fmt"

// Move relocates the top disk of peg From onto peg To.
type Move struct {
	From int
	To   int
}

// String renders the move with 1-based peg numbers, e.g. "1 → 3".
func (m Move) String() string {
	return fmt.Sprintf("%d → %d", m.From+1, m.To+1)
}

// OptimalMoves returns the minimal number of moves for n disks, 2^n - 1.
// Non-positive n needs no moves.
func OptimalMoves(n int) int {
	if n <= 0 {
		return 0
	}
	return 1<<n - 1
}

// Solve returns the optimal move sequence that transfers n disks from the
// source peg to the target peg using the auxiliary peg. The result is
// deterministic and has exactly OptimalMoves(n) entries; n <= 0 yields an
// empty plan.
func Solve(n int) []Move {
	plan := make([]Move, 0, OptimalMoves(n))
	return solveInto(plan, n, SourcePeg, TargetPeg, AuxiliaryPeg)
}

// solveInto appends the moves for transferring n disks from -> to via spare.
// Recursion depth equals n, which is bounded by MaxDisks for real puzzles.
func solveInto(plan []Move, n, from, to, spare int) []Move {
	if n <= 0 {
		return plan
	}
	if n == 1 {
		return append(plan, Move{From: from, To: to})
	}
	plan = solveInto(plan, n-1, from, spare, to)
	plan = append(plan, Move{From: from, To: to})
	return solveInto(plan, n-1, spare, to, from)
}
