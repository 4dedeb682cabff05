package hanoi

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// MessageKind classifies a status message for display.
type MessageKind int

const (
	MessageNormal MessageKind = iota
	MessageWin
	MessageError
)

// String returns the lowercase name of the kind.
func (k MessageKind) String() string {
	switch k {
	case MessageWin:
		return "win"
	case MessageError:
		return "error"
	default:
		return "normal"
	}
}

// Observer receives view updates from the game. All methods are called
// synchronously from the goroutine that drives the game.
type Observer interface {
	// PegsChanged delivers the current stacks and the armed peg (or NoPeg).
	PegsChanged(pegs [PegCount][]int, armed int)

	// Message replaces the status line.
	Message(text string, kind MessageKind)

	// ControlsLocked is called when manual input is disabled or re-enabled.
	ControlsLocked(locked bool)
}

// Option configures a Game.
type Option func(*Game)

// WithObserver attaches a view observer.
func WithObserver(o Observer) Option {
	return func(g *Game) {
		g.observer = o
	}
}

// WithLogger sets the logger for game events. Defaults to discarding.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithClock overrides the wall clock used to time rounds.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		if now != nil {
			g.now = now
		}
	}
}

// Game mediates between manual peg activations and the auto-solver.
// The puzzle has a single writer at any time: while auto-solve runs, manual
// activations are ignored and only the player's ticks move disks.
//
// Game is driven from one goroutine (the UI loop); it is not safe for
// concurrent use.
type Game struct {
	cfg      config.HanoiConfig
	puzzle   *Puzzle
	player   *Player
	observer Observer
	logger   *log.Logger
	now      func() time.Time

	runtime        core.RuntimeConfig
	cursor         int
	message        string
	messageKind    MessageKind
	controlsLocked bool

	// Round bookkeeping
	startedAt time.Time
	solved    bool
	outcome   *core.Outcome
	ticks     uint64

	// Layout (computed from screen size)
	layout   layout
	tooSmall bool
}

// New creates a game using cfg. The config is normalized, so out-of-range
// disk counts are clamped.
func New(cfg config.HanoiConfig, opts ...Option) *Game {
	cfg.Normalize()

	g := &Game{
		cfg:     cfg,
		puzzle:  NewPuzzle(cfg.Disks),
		player:  NewPlayer(),
		logger:  log.New(io.Discard),
		now:     time.Now,
		runtime: core.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.NewGame(cfg.Disks)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hanoi"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tower of Hanoi"
}

// Reset adopts new runtime settings and starts a fresh puzzle with the
// configured disk count.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.NewGame(g.cfg.Disks)
}

// Resize adapts the layout to a new screen size without touching the puzzle.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.calculateLayout()
}

// NewGame starts a new puzzle with diskCount disks (clamped). Any running
// auto-solve is cancelled first.
func (g *Game) NewGame(diskCount int) {
	if g.player.IsRunning() || g.puzzle.AutoPlaying() {
		g.player.Stop()
	}
	g.resetRound(diskCount)
	g.lockControls(false)
	g.cursor = SourcePeg

	n := g.puzzle.DiskCount()
	g.say(fmt.Sprintf("Move all %d disks to peg %d. Optimal: %d moves.", n, TargetPeg+1, g.puzzle.OptimalMoveCount()), MessageNormal)
	g.notifyPegs()

	g.logger.Debug("new game", "disks", n, "optimal", g.puzzle.OptimalMoveCount())
}

// resetRound re-initializes the puzzle and the per-round bookkeeping.
func (g *Game) resetRound(diskCount int) {
	g.puzzle.Reset(diskCount)
	g.cfg.Disks = g.puzzle.DiskCount()
	g.startedAt = g.now()
	g.solved = false
	g.outcome = nil
	g.calculateLayout()
}

// ActivatePeg handles a click on a peg. It is ignored while auto-solve runs.
//
// With nothing armed, a non-empty peg becomes armed. Activating the armed
// peg again disarms it. Activating another peg attempts the move and always
// disarms, reporting the rejection reason when the move is illegal.
func (g *Game) ActivatePeg(peg int) {
	if g.puzzle.AutoPlaying() {
		return
	}
	if validPeg(peg) {
		g.cursor = peg
	}

	armed := g.puzzle.Selected()
	if armed == NoPeg {
		g.arm(peg)
		return
	}

	if peg == armed {
		g.puzzle.SelectPeg(NoPeg)
		g.say("Selection cleared.", MessageNormal)
		g.notifyPegs()
		return
	}

	err := g.puzzle.ApplyMove(armed, peg)
	g.puzzle.SelectPeg(NoPeg)
	if err != nil {
		g.logger.Debug("move rejected", "from", armed+1, "to", peg+1, "reason", err)
		g.say(err.Error(), MessageError)
		g.notifyPegs()
		return
	}

	disk, _ := g.puzzle.TopDisk(peg)
	g.say(fmt.Sprintf("Moved disk %d: %s.", disk, Move{From: armed, To: peg}), MessageNormal)
	g.notifyPegs()
	g.checkWin(false)
}

// Move plays a whole move at once, dropping any armed peg first. Illegal
// moves are reported with their rejection reason; nothing is armed.
func (g *Game) Move(from, to int) {
	if g.puzzle.AutoPlaying() {
		return
	}
	g.puzzle.SelectPeg(NoPeg)

	if err := g.puzzle.ValidateMove(from, to); err != nil {
		g.logger.Debug("move rejected", "from", from+1, "to", to+1, "reason", err)
		g.say(err.Error(), MessageError)
		g.notifyPegs()
		return
	}

	g.ActivatePeg(from)
	g.ActivatePeg(to)
}

// arm selects peg as the move source if it holds a disk.
func (g *Game) arm(peg int) {
	top, err := g.puzzle.TopDisk(peg)
	if err != nil {
		g.say(fmt.Sprintf("There is no peg %s.", pegLabel(peg)), MessageError)
		return
	}
	if top == 0 {
		g.say(fmt.Sprintf("Peg %d is empty.", peg+1), MessageError)
		return
	}

	g.puzzle.SelectPeg(peg)
	g.say(fmt.Sprintf("Peg %d selected (disk %d). Choose a destination.", peg+1, top), MessageNormal)
	g.notifyPegs()
}

// StartAutoSolve restarts the puzzle and plays the optimal solution.
// A plan with no moves leaves the game untouched.
func (g *Game) StartAutoSolve() {
	g.player.Stop()
	g.resetRound(g.puzzle.DiskCount())
	g.notifyPegs()

	plan := g.player.Generate(g.puzzle.DiskCount())
	if len(plan) == 0 {
		return
	}

	g.puzzle.SetAutoPlaying(true)
	g.lockControls(true)
	g.say(fmt.Sprintf("Auto-solving %d disks in %d moves...", g.puzzle.DiskCount(), len(plan)), MessageNormal)
	g.logger.Info("auto-solve started", "disks", g.puzzle.DiskCount(), "moves", len(plan), "interval", g.cfg.Interval())

	g.player.StartPlayback(g.applySolverMove, g.finishAutoSolve, g.cfg.Interval())
}

// applySolverMove is the playback move callback. Win checks and messages
// are suppressed until playback completes.
func (g *Game) applySolverMove(m Move) {
	if err := g.puzzle.ApplyMove(m.From, m.To); err != nil {
		// The plan always starts from a fresh board, so this means the board
		// was changed behind the player's back.
		g.logger.Error("solver move rejected", "move", m.String(), "error", err)
		g.StopAutoSolve(false)
		return
	}
	g.notifyPegs()
}

// finishAutoSolve is the playback completion callback.
func (g *Game) finishAutoSolve() {
	g.puzzle.SetAutoPlaying(false)
	g.lockControls(false)
	g.checkWin(true)

	g.say(fmt.Sprintf("Auto-solve complete: %d moves (optimal %d).", g.puzzle.MoveCount(), g.puzzle.OptimalMoveCount()), MessageWin)
	g.logger.Info("auto-solve complete", "moves", g.puzzle.MoveCount(), "optimal", g.puzzle.OptimalMoveCount())
}

// StopAutoSolve cancels playback and hands the board back to the user.
// manual distinguishes a user-requested stop from a natural end.
func (g *Game) StopAutoSolve(manual bool) {
	g.player.Stop()
	g.puzzle.SetAutoPlaying(false)
	g.lockControls(false)

	if manual {
		g.say(fmt.Sprintf("Auto-solve stopped by user after %d moves.", g.puzzle.MoveCount()), MessageNormal)
		g.logger.Info("auto-solve stopped", "moves", g.puzzle.MoveCount())
		return
	}
	g.say("Auto-solve finished.", MessageNormal)
}

// ToggleAutoSolve starts auto-solve when idle and stops it when running.
func (g *Game) ToggleAutoSolve() {
	if g.puzzle.AutoPlaying() {
		g.StopAutoSolve(true)
		return
	}
	g.StartAutoSolve()
}

// Advance feeds elapsed time to the auto-solve player.
func (g *Game) Advance(dt time.Duration) {
	g.player.Advance(dt)
}

// checkWin records the round outcome the first time the puzzle is solved.
func (g *Game) checkWin(auto bool) {
	if g.solved || !g.puzzle.IsSolved() {
		return
	}
	g.solved = true

	moves, optimal := g.puzzle.MoveCount(), g.puzzle.OptimalMoveCount()
	g.outcome = &core.Outcome{
		DiskCount: g.puzzle.DiskCount(),
		Moves:     moves,
		Optimal:   optimal,
		Auto:      auto,
		Duration:  g.now().Sub(g.startedAt),
	}
	g.logger.Info("puzzle solved", "disks", g.puzzle.DiskCount(), "moves", moves, "optimal", optimal, "auto", auto)

	if auto {
		return
	}
	if moves == optimal {
		g.say(fmt.Sprintf("Solved in %d moves. Perfect, that is optimal!", moves), MessageWin)
	} else {
		g.say(fmt.Sprintf("Solved in %d moves (optimal: %d).", moves, optimal), MessageWin)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ticks++

	if in.Has(core.ActionSolve) {
		g.ToggleAutoSolve()
	}

	if !g.controlsLocked {
		g.handleInput(in)
	}

	g.player.Advance(g.runtime.TickDuration())

	return core.StepResult{State: g.State()}
}

// handleInput applies manual actions for one tick.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		g.NewGame(g.puzzle.DiskCount())
		return
	case in.Has(core.ActionMoreDisks):
		g.NewGame(g.puzzle.DiskCount() + 1)
		return
	case in.Has(core.ActionFewerDisks):
		g.NewGame(g.puzzle.DiskCount() - 1)
		return
	}

	if in.Has(core.ActionLeft) {
		g.cursor = (g.cursor + PegCount - 1) % PegCount
	}
	if in.Has(core.ActionRight) {
		g.cursor = (g.cursor + 1) % PegCount
	}

	for peg := range PegCount {
		if in.Has(core.PegAction(peg)) {
			g.ActivatePeg(peg)
		}
	}
	if in.Has(core.ActionConfirm) {
		g.ActivatePeg(g.cursor)
	}
	if in.Has(core.ActionClick) {
		if peg := g.PegAt(in.PointerX, in.PointerY); peg != NoPeg {
			g.ActivatePeg(peg)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		DiskCount:   g.puzzle.DiskCount(),
		Moves:       g.puzzle.MoveCount(),
		Solved:      g.puzzle.IsSolved(),
		AutoPlaying: g.puzzle.AutoPlaying(),
		Outcome:     g.outcome,
	}
}

// Message returns the current status line and its kind.
func (g *Game) Message() (string, MessageKind) {
	return g.message, g.messageKind
}

// ControlsLocked reports whether manual input is currently disabled.
func (g *Game) ControlsLocked() bool {
	return g.controlsLocked
}

// Puzzle returns a copy of the board for inspection.
func (g *Game) Puzzle() *Puzzle {
	return g.puzzle.Clone()
}

// Remaining returns the number of solver moves not yet played.
func (g *Game) Remaining() int {
	return g.player.Remaining()
}

// Interval returns the configured auto-solve interval.
func (g *Game) Interval() time.Duration {
	return g.cfg.Interval()
}

func (g *Game) say(text string, kind MessageKind) {
	g.message = text
	g.messageKind = kind
	if g.observer != nil {
		g.observer.Message(text, kind)
	}
}

func (g *Game) notifyPegs() {
	if g.observer != nil {
		g.observer.PegsChanged(g.puzzle.Pegs(), g.puzzle.Selected())
	}
}

func (g *Game) lockControls(locked bool) {
	if g.controlsLocked == locked {
		return
	}
	g.controlsLocked = locked
	if g.observer != nil {
		g.observer.ControlsLocked(locked)
	}
}
