package hanoi

import (
	"reflect"
	"testing"
)

func TestOptimalMoves(t *testing.T) {
	tests := []struct {
		disks int
		want  int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 3},
		{3, 7},
		{10, 1023},
		{15, 32767},
	}

	for _, tt := range tests {
		if got := OptimalMoves(tt.disks); got != tt.want {
			t.Errorf("OptimalMoves(%d) = %d, want %d", tt.disks, got, tt.want)
		}
	}
}

func TestSolveCanonicalPlans(t *testing.T) {
	tests := []struct {
		name  string
		disks int
		want  []Move
	}{
		{"no disks", 0, []Move{}},
		{"one disk", 1, []Move{{0, 2}}},
		{"two disks", 2, []Move{{0, 1}, {0, 2}, {1, 2}}},
		{"three disks", 3, []Move{{0, 2}, {0, 1}, {2, 1}, {0, 2}, {1, 0}, {1, 2}, {0, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Solve(tt.disks)
			if len(got) != len(tt.want) {
				t.Fatalf("Solve(%d) has %d moves, want %d", tt.disks, len(got), len(tt.want))
			}
			if len(got) > 0 && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Solve(%d) = %v, want %v", tt.disks, got, tt.want)
			}
		})
	}
}

func TestSolveSolvesEveryDiskCount(t *testing.T) {
	for n := MinDisks; n <= MaxDisks; n++ {
		plan := Solve(n)
		if len(plan) != OptimalMoves(n) {
			t.Fatalf("Solve(%d) has %d moves, want %d", n, len(plan), OptimalMoves(n))
		}

		p := NewPuzzle(n)
		if p.OptimalMoveCount() != OptimalMoves(n) {
			t.Fatalf("OptimalMoveCount() = %d for %d disks", p.OptimalMoveCount(), n)
		}
		for i, m := range plan {
			if err := p.ApplyMove(m.From, m.To); err != nil {
				t.Fatalf("%d disks: move %d (%s) rejected: %v", n, i, m, err)
			}
		}
		if !p.IsSolved() {
			t.Fatalf("%d disks: plan did not solve the puzzle", n)
		}
		if p.MoveCount() != p.OptimalMoveCount() {
			t.Errorf("%d disks: MoveCount() = %d, want %d", n, p.MoveCount(), p.OptimalMoveCount())
		}
	}
}

func TestSolveDeterministic(t *testing.T) {
	p := NewPuzzle(5)
	first := Solve(p.DiskCount())
	for _, m := range first {
		mustMove(t, p, m.From, m.To)
	}

	p.Reset(5)
	second := Solve(p.DiskCount())
	if !reflect.DeepEqual(first, second) {
		t.Error("regenerating the plan for the same disk count produced a different sequence")
	}
}

func TestMoveString(t *testing.T) {
	if got := (Move{From: 0, To: 2}).String(); got != "1 → 3" {
		t.Errorf("String() = %q, want %q", got, "1 → 3")
	}
}
