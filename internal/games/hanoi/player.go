package hanoi

import "time"

// DefaultInterval is the delay between auto-solve moves when none is given.
const DefaultInterval = 600 * time.Millisecond

// Player holds a precomputed solution and plays it back one move per interval.
//
// Playback is clock-agnostic: the owner feeds elapsed time through Advance,
// from the same goroutine that calls every other method. Stop takes effect
// immediately, so no tick can fire after it returns.
type Player struct {
	plan   []Move
	cursor int

	running    bool
	interval   time.Duration
	elapsed    time.Duration
	onMove     func(Move)
	onComplete func()
}

// NewPlayer creates an idle player with an empty plan.
func NewPlayer() *Player {
	return &Player{}
}

// Generate computes the optimal plan for diskCount disks, resets the cursor
// and returns a copy of the plan.
func (p *Player) Generate(diskCount int) []Move {
	p.plan = Solve(diskCount)
	p.cursor = 0
	return p.Plan()
}

// Plan returns a copy of the current plan.
func (p *Player) Plan() []Move {
	return append([]Move(nil), p.plan...)
}

// Cursor returns how many moves have been handed out so far.
func (p *Player) Cursor() int {
	return p.cursor
}

// HasNext reports whether moves remain in the plan.
func (p *Player) HasNext() bool {
	return p.cursor < len(p.plan)
}

// Remaining returns the number of moves not yet handed out.
func (p *Player) Remaining() int {
	return len(p.plan) - p.cursor
}

// NextMove returns the move at the cursor and advances it.
// The second result is false once the plan is exhausted.
func (p *Player) NextMove() (Move, bool) {
	if !p.HasNext() {
		return Move{}, false
	}
	m := p.plan[p.cursor]
	p.cursor++
	return m, true
}

// StartPlayback arms the repeating activation. Each full interval passed to
// Advance is one tick: the next move goes to onMove, and once the plan is
// exhausted playback stops and onComplete runs exactly once.
// A non-positive interval selects DefaultInterval.
func (p *Player) StartPlayback(onMove func(Move), onComplete func(), interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	p.onMove = onMove
	p.onComplete = onComplete
	p.interval = interval
	p.elapsed = 0
	p.running = true
}

// Advance feeds elapsed wall-clock time into playback and fires every tick
// that became due, in plan order.
func (p *Player) Advance(dt time.Duration) {
	if !p.running || dt <= 0 {
		return
	}
	p.elapsed += dt
	for p.running && p.elapsed >= p.interval {
		p.elapsed -= p.interval
		p.tick()
	}
}

// tick performs one activation.
func (p *Player) tick() {
	if m, ok := p.NextMove(); ok {
		if p.onMove != nil {
			p.onMove(m)
		}
		return
	}

	// Exhausted: tear down first so a re-entrant callback sees an idle player
	done := p.onComplete
	p.Stop()
	if done != nil {
		done()
	}
}

// Stop cancels playback and discards the plan. It is safe to call at any
// time, including from inside a callback; a restart needs Generate again.
func (p *Player) Stop() {
	p.running = false
	p.onMove = nil
	p.onComplete = nil
	p.elapsed = 0
	p.plan = nil
	p.cursor = 0
}

// IsRunning reports whether playback is scheduled.
func (p *Player) IsRunning() bool {
	return p.running
}

// Interval returns the active playback interval, or 0 when idle.
func (p *Player) Interval() time.Duration {
	if !p.running {
		return 0
	}
	return p.interval
}
