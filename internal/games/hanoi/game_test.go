package hanoi

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// fakeObserver records observer notifications.
type fakeObserver struct {
	pegs     [PegCount][]int
	armed    int
	updates  int
	messages []string
	kinds    []MessageKind
	locks    []bool
}

func (o *fakeObserver) PegsChanged(pegs [PegCount][]int, armed int) {
	o.pegs = pegs
	o.armed = armed
	o.updates++
}

func (o *fakeObserver) Message(text string, kind MessageKind) {
	o.messages = append(o.messages, text)
	o.kinds = append(o.kinds, kind)
}

func (o *fakeObserver) ControlsLocked(locked bool) {
	o.locks = append(o.locks, locked)
}

func (o *fakeObserver) lastMessage() (string, MessageKind) {
	if len(o.messages) == 0 {
		return "", MessageNormal
	}
	return o.messages[len(o.messages)-1], o.kinds[len(o.kinds)-1]
}

// newTestGame builds a game with a 100ms playback interval and a 10 Hz tick,
// so every Step advances playback by exactly one move.
func newTestGame(t *testing.T, disks int, opts ...Option) *Game {
	t.Helper()
	cfg := config.DefaultHanoiConfig()
	cfg.Disks = disks
	cfg.Playback.IntervalMS = 100

	g := New(cfg, opts...)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10})
	return g
}

func TestGameNew(t *testing.T) {
	obs := &fakeObserver{}
	g := newTestGame(t, 4, WithObserver(obs))

	state := g.State()
	if state.DiskCount != 4 || state.Moves != 0 || state.Solved || state.AutoPlaying || state.Outcome != nil {
		t.Errorf("unexpected initial state: %+v", state)
	}

	msg, kind := g.Message()
	if msg != "Move all 4 disks to peg 3. Optimal: 15 moves." || kind != MessageNormal {
		t.Errorf("intro message = %q (%s)", msg, kind)
	}
	if obs.updates == 0 || obs.armed != NoPeg || len(obs.pegs[SourcePeg]) != 4 {
		t.Errorf("observer not given the initial board: %+v", obs)
	}
	if g.ID() != "hanoi" || g.Title() != "Tower of Hanoi" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestGameNewClampsDiskCount(t *testing.T) {
	cfg := config.DefaultHanoiConfig()
	cfg.Disks = 40
	if g := New(cfg); g.State().DiskCount != MaxDisks {
		t.Errorf("DiskCount = %d, want %d", g.State().DiskCount, MaxDisks)
	}

	g := newTestGame(t, 3)
	g.NewGame(0)
	if g.State().DiskCount != MinDisks {
		t.Errorf("NewGame(0) DiskCount = %d, want %d", g.State().DiskCount, MinDisks)
	}
}

func TestGameNewKeepsDisksSetAfterPreset(t *testing.T) {
	cfg := config.DefaultHanoiConfig()
	config.ApplyHanoiPreset(&cfg, config.DifficultyHard)
	cfg.Disks = 4

	if got := New(cfg).Puzzle().DiskCount(); got != 4 {
		t.Errorf("DiskCount = %d, want 4", got)
	}
}

func TestGameActivatePeg(t *testing.T) {
	tests := []struct {
		name      string
		clicks    []int
		wantPegs  [PegCount][]int
		wantArmed int
		wantMoves int
		wantMsg   string
		wantKind  MessageKind
	}{
		{
			name:      "arm non-empty peg",
			clicks:    []int{0},
			wantPegs:  [PegCount][]int{{3, 2, 1}, {}, {}},
			wantArmed: 0,
			wantMsg:   "Peg 1 selected (disk 1). Choose a destination.",
		},
		{
			name:      "empty peg cannot be armed",
			clicks:    []int{1},
			wantPegs:  [PegCount][]int{{3, 2, 1}, {}, {}},
			wantArmed: NoPeg,
			wantMsg:   "Peg 2 is empty.",
			wantKind:  MessageError,
		},
		{
			name:      "same peg disarms",
			clicks:    []int{0, 0},
			wantPegs:  [PegCount][]int{{3, 2, 1}, {}, {}},
			wantArmed: NoPeg,
			wantMsg:   "Selection cleared.",
		},
		{
			name:      "valid move",
			clicks:    []int{0, 2},
			wantPegs:  [PegCount][]int{{3, 2}, {}, {1}},
			wantArmed: NoPeg,
			wantMoves: 1,
			wantMsg:   "Moved disk 1: 1 → 3.",
		},
		{
			name:      "invalid move disarms with reason",
			clicks:    []int{0, 2, 0, 2},
			wantPegs:  [PegCount][]int{{3, 2}, {}, {1}},
			wantArmed: NoPeg,
			wantMoves: 1,
			wantMsg:   "Cannot place disk 2 on smaller disk 1",
			wantKind:  MessageError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &fakeObserver{}
			g := newTestGame(t, 3, WithObserver(obs))
			for _, peg := range tt.clicks {
				g.ActivatePeg(peg)
			}

			snap := g.Snapshot()
			for i := range tt.wantPegs {
				if tt.wantPegs[i] == nil {
					tt.wantPegs[i] = []int{}
				}
				if !equalInts(snap.Pegs[i], tt.wantPegs[i]) {
					t.Errorf("peg %d = %v, want %v", i+1, snap.Pegs[i], tt.wantPegs[i])
				}
			}
			if snap.Selected != tt.wantArmed {
				t.Errorf("Selected = %d, want %d", snap.Selected, tt.wantArmed)
			}
			if snap.Moves != tt.wantMoves {
				t.Errorf("Moves = %d, want %d", snap.Moves, tt.wantMoves)
			}
			if snap.Message != tt.wantMsg || snap.MessageKind != tt.wantKind {
				t.Errorf("message = %q (%s), want %q (%s)", snap.Message, snap.MessageKind, tt.wantMsg, tt.wantKind)
			}
			if msg, kind := obs.lastMessage(); msg != tt.wantMsg || kind != tt.wantKind {
				t.Errorf("observer message = %q (%s)", msg, kind)
			}
			if obs.armed != tt.wantArmed {
				t.Errorf("observer armed = %d, want %d", obs.armed, tt.wantArmed)
			}
		})
	}
}

func TestGameMove(t *testing.T) {
	tests := []struct {
		name      string
		armFirst  int
		from, to  int
		wantMoves int
		wantMsg   string
		wantKind  MessageKind
	}{
		{"valid", NoPeg, 0, 2, 1, "Moved disk 1: 1 → 3.", MessageNormal},
		{"same peg", NoPeg, 0, 0, 0, "Peg 1 is both source and destination", MessageError},
		{"empty source", NoPeg, 1, 2, 0, "Peg 2 is empty", MessageError},
		{"out of range", NoPeg, 0, 5, 0, "Invalid peg: 1 → #5", MessageError},
		{"drops armed peg", 0, 0, 1, 1, "Moved disk 1: 1 → 2.", MessageNormal},
		{"same peg while armed", 0, 0, 0, 0, "Peg 1 is both source and destination", MessageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &fakeObserver{}
			g := newTestGame(t, 3, WithObserver(obs))
			if tt.armFirst != NoPeg {
				g.ActivatePeg(tt.armFirst)
			}

			g.Move(tt.from, tt.to)

			snap := g.Snapshot()
			if snap.Moves != tt.wantMoves {
				t.Errorf("Moves = %d, want %d", snap.Moves, tt.wantMoves)
			}
			if snap.Selected != NoPeg || obs.armed != NoPeg {
				t.Errorf("Selected = %d, observer armed = %d, want none", snap.Selected, obs.armed)
			}
			if snap.Message != tt.wantMsg || snap.MessageKind != tt.wantKind {
				t.Errorf("message = %q (%s), want %q (%s)", snap.Message, snap.MessageKind, tt.wantMsg, tt.wantKind)
			}
		})
	}
}

func TestGameMoveIgnoredWhileAutoSolving(t *testing.T) {
	g := newTestGame(t, 3)
	g.StartAutoSolve()
	g.Move(0, 2)

	if got := g.Snapshot().Moves; got != 0 {
		t.Errorf("Moves = %d, want 0 while auto-solve runs", got)
	}
}

func TestGameManualWinRecordsOutcomeOnce(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	g := newTestGame(t, 2, WithClock(clock))

	for _, m := range []Move{{0, 1}, {0, 2}} {
		g.ActivatePeg(m.From)
		g.ActivatePeg(m.To)
	}
	if g.State().Outcome != nil {
		t.Fatal("outcome recorded before the puzzle was solved")
	}

	now = now.Add(4 * time.Second)
	g.ActivatePeg(1)
	g.ActivatePeg(2)

	state := g.State()
	if !state.Solved || state.Outcome == nil {
		t.Fatalf("puzzle not solved: %+v", state)
	}
	want := core.Outcome{DiskCount: 2, Moves: 3, Optimal: 3, Auto: false, Duration: 4 * time.Second}
	if *state.Outcome != want {
		t.Errorf("outcome = %+v, want %+v", *state.Outcome, want)
	}
	if msg, kind := g.Message(); kind != MessageWin || !strings.Contains(msg, "optimal") {
		t.Errorf("win message = %q (%s)", msg, kind)
	}

	// Moving off and back on does not record a second outcome.
	first := state.Outcome
	g.ActivatePeg(2)
	g.ActivatePeg(1)
	g.ActivatePeg(1)
	g.ActivatePeg(2)
	if g.State().Outcome != first {
		t.Error("outcome replaced after the round was already won")
	}

	g.NewGame(2)
	if g.State().Outcome != nil {
		t.Error("outcome survived a new game")
	}
}

func TestGameSuboptimalWinMessage(t *testing.T) {
	g := newTestGame(t, 1)
	g.ActivatePeg(0)
	g.ActivatePeg(1)
	g.ActivatePeg(1)
	g.ActivatePeg(2)

	msg, kind := g.Message()
	if msg != "Solved in 2 moves (optimal: 1)." || kind != MessageWin {
		t.Errorf("message = %q (%s)", msg, kind)
	}
}

func TestGameAutoSolveToCompletion(t *testing.T) {
	obs := &fakeObserver{}
	g := newTestGame(t, 3, WithObserver(obs))

	// Progress made before auto-solve is discarded.
	g.ActivatePeg(0)
	g.ActivatePeg(2)

	g.StartAutoSolve()
	if !g.State().AutoPlaying || !g.ControlsLocked() {
		t.Fatal("auto-solve did not lock the board")
	}
	if g.State().Moves != 0 || g.Remaining() != 7 {
		t.Fatalf("auto-solve did not restart the puzzle: moves=%d remaining=%d", g.State().Moves, g.Remaining())
	}
	if len(obs.locks) == 0 || !obs.locks[len(obs.locks)-1] {
		t.Error("observer not told that controls are locked")
	}

	// Manual input is ignored while the solver owns the board.
	g.ActivatePeg(0)
	if g.Snapshot().Selected != NoPeg {
		t.Error("peg armed during auto-solve")
	}

	g.Advance(700 * time.Millisecond)
	if g.State().Moves != 7 || !g.State().AutoPlaying {
		t.Fatalf("after seven ticks: moves=%d auto=%v", g.State().Moves, g.State().AutoPlaying)
	}
	if g.State().Outcome != nil {
		t.Error("win check ran during playback")
	}

	g.Advance(100 * time.Millisecond)
	state := g.State()
	if state.AutoPlaying || g.ControlsLocked() {
		t.Error("controls still locked after completion")
	}
	if state.Outcome == nil || !state.Outcome.Auto || state.Outcome.Moves != 7 {
		t.Errorf("outcome = %+v", state.Outcome)
	}
	msg, kind := g.Message()
	if msg != "Auto-solve complete: 7 moves (optimal 7)." || kind != MessageWin {
		t.Errorf("completion message = %q (%s)", msg, kind)
	}
	if obs.locks[len(obs.locks)-1] {
		t.Error("observer not told that controls are unlocked")
	}
}

func TestGameStopAutoSolve(t *testing.T) {
	g := newTestGame(t, 4)
	g.StartAutoSolve()
	g.Advance(300 * time.Millisecond)

	g.ToggleAutoSolve()

	state := g.State()
	if state.AutoPlaying || g.ControlsLocked() {
		t.Fatal("toggle did not stop auto-solve")
	}
	if state.Moves != 3 {
		t.Errorf("Moves = %d, want 3", state.Moves)
	}
	if msg, _ := g.Message(); msg != "Auto-solve stopped by user after 3 moves." {
		t.Errorf("message = %q", msg)
	}

	g.Advance(time.Second)
	if g.State().Moves != 3 {
		t.Error("moves applied after stop")
	}

	// The board is handed back in its partial state ([[4 3] [] [2 1]]) and
	// manual play resumes.
	g.ActivatePeg(2)
	if g.Snapshot().Selected != 2 {
		t.Error("manual input not accepted after stop")
	}

	g.StopAutoSolve(false)
	if msg, _ := g.Message(); msg != "Auto-solve finished." {
		t.Errorf("natural stop message = %q", msg)
	}
}

func TestGameNewGameCancelsAutoSolve(t *testing.T) {
	g := newTestGame(t, 3)
	g.StartAutoSolve()
	g.Advance(200 * time.Millisecond)

	g.NewGame(5)

	if g.State().AutoPlaying || g.ControlsLocked() || g.Remaining() != 0 {
		t.Fatal("new game left auto-solve running")
	}
	g.Advance(time.Second)
	if g.State().Moves != 0 || g.State().DiskCount != 5 {
		t.Errorf("state after new game: %+v", g.State())
	}
}

func TestGameStep(t *testing.T) {
	press := func(actions ...core.Action) core.InputFrame {
		f := core.NewInputFrame()
		for _, a := range actions {
			f.Set(a)
		}
		return f
	}

	t.Run("peg keys move disks", func(t *testing.T) {
		g := newTestGame(t, 3)
		g.Step(press(core.ActionPeg1))
		res := g.Step(press(core.ActionPeg3))
		if res.State.Moves != 1 {
			t.Errorf("Moves = %d, want 1", res.State.Moves)
		}
	})

	t.Run("cursor and confirm", func(t *testing.T) {
		g := newTestGame(t, 3)
		g.Step(press(core.ActionConfirm)) // arm peg 1
		g.Step(press(core.ActionLeft))    // wraps to peg 3
		g.Step(press(core.ActionConfirm))
		snap := g.Snapshot()
		if snap.Moves != 1 || len(snap.Pegs[TargetPeg]) != 1 || snap.Cursor != TargetPeg {
			t.Errorf("snapshot = %+v", snap)
		}
		g.Step(press(core.ActionRight))
		if g.Snapshot().Cursor != SourcePeg {
			t.Errorf("Cursor = %d, want %d", g.Snapshot().Cursor, SourcePeg)
		}
	})

	t.Run("disk count keys", func(t *testing.T) {
		g := newTestGame(t, 3)
		g.Step(press(core.ActionMoreDisks))
		if g.State().DiskCount != 4 {
			t.Errorf("DiskCount = %d, want 4", g.State().DiskCount)
		}
		g.Step(press(core.ActionFewerDisks))
		g.Step(press(core.ActionFewerDisks))
		if g.State().DiskCount != 2 {
			t.Errorf("DiskCount = %d, want 2", g.State().DiskCount)
		}

		g.NewGame(MaxDisks)
		g.Step(press(core.ActionMoreDisks))
		if g.State().DiskCount != MaxDisks {
			t.Errorf("DiskCount = %d, want %d", g.State().DiskCount, MaxDisks)
		}
	})

	t.Run("auto-solve plays one move per tick and locks input", func(t *testing.T) {
		g := newTestGame(t, 2)
		res := g.Step(press(core.ActionSolve))
		if !res.State.AutoPlaying || res.State.Moves != 1 {
			t.Fatalf("after solve key: %+v", res.State)
		}

		res = g.Step(press(core.ActionRestart, core.ActionPeg1))
		if res.State.Moves != 2 || g.Snapshot().Selected != NoPeg {
			t.Errorf("input accepted while locked: %+v", res.State)
		}

		g.Step(core.NewInputFrame()) // third move
		res = g.Step(core.NewInputFrame())
		if res.State.AutoPlaying || !res.State.Solved || res.State.Outcome == nil {
			t.Errorf("auto-solve did not complete: %+v", res.State)
		}
	})

	t.Run("solve key stops auto-solve", func(t *testing.T) {
		g := newTestGame(t, 3)
		g.Step(press(core.ActionSolve))
		res := g.Step(press(core.ActionSolve))
		if res.State.AutoPlaying || res.State.Moves != 1 {
			t.Errorf("state = %+v", res.State)
		}
	})

	t.Run("restart", func(t *testing.T) {
		g := newTestGame(t, 3)
		g.ActivatePeg(0)
		g.ActivatePeg(1)
		res := g.Step(press(core.ActionRestart))
		if res.State.Moves != 0 || res.State.DiskCount != 3 {
			t.Errorf("state = %+v", res.State)
		}
	})

	t.Run("tick counter", func(t *testing.T) {
		g := newTestGame(t, 3)
		for range 5 {
			g.Step(core.NewInputFrame())
		}
		if g.Snapshot().Tick != 5 {
			t.Errorf("Tick = %d, want 5", g.Snapshot().Tick)
		}
	})
}

func TestGameClickActivatesPeg(t *testing.T) {
	g := newTestGame(t, 3)

	click := func(x, y int) {
		f := core.NewInputFrame()
		f.Click(x, y)
		g.Step(f)
	}

	click(g.layout.centers[SourcePeg], g.layout.baseY-1)
	click(g.layout.centers[AuxiliaryPeg], g.layout.topY)
	if g.State().Moves != 1 || len(g.Snapshot().Pegs[AuxiliaryPeg]) != 1 {
		t.Fatalf("click did not move a disk: %+v", g.Snapshot())
	}

	// Outside every peg area.
	click(0, 0)
	if g.Snapshot().Selected != NoPeg {
		t.Error("click outside the pegs armed a peg")
	}
	if g.PegAt(0, 0) != NoPeg {
		t.Error("PegAt(0, 0) should be NoPeg")
	}
}

func TestGameResizeKeepsPuzzle(t *testing.T) {
	g := newTestGame(t, 3)
	g.ActivatePeg(0)
	g.ActivatePeg(2)

	g.Resize(120, 40)
	if g.State().Moves != 1 {
		t.Errorf("resize reset the puzzle: %+v", g.State())
	}
	if g.Snapshot().Phase != PhasePlaying {
		t.Errorf("Phase = %s, want %s", g.Snapshot().Phase, PhasePlaying)
	}

	g.Resize(20, 5)
	if g.Snapshot().Phase != PhaseTooSmall {
		t.Errorf("Phase = %s, want %s", g.Snapshot().Phase, PhaseTooSmall)
	}
}

func TestSnapshotString(t *testing.T) {
	g := newTestGame(t, 3)
	g.ActivatePeg(0)
	g.ActivatePeg(2)
	g.ActivatePeg(0)

	got := g.Snapshot().String()
	for _, want := range []string{
		"Disks: 3  Moves: 1/7  Phase: armed",
		"*Peg 1: 3 2\n",
		" Peg 2:\n",
		" Peg 3: 1\n",
		"[normal] Peg 1 selected (disk 2).",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("String() missing %q:\n%s", want, got)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
