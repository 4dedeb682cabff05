package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, H - move the peg cursor left
	ActionRight             // Right arrow, L - move the peg cursor right
	ActionConfirm           // Enter, Space - activate the peg under the cursor
	ActionPeg1              // 1 - activate the first peg
	ActionPeg2              // 2 - activate the second peg
	ActionPeg3              // 3 - activate the third peg
	ActionClick             // Left mouse button - activate the peg under the pointer
	ActionSolve             // A - toggle auto-solve
	ActionRestart           // R - start a new puzzle with the same disk count
	ActionMoreDisks         // + - new puzzle with one more disk
	ActionFewerDisks        // - - new puzzle with one disk fewer
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPeg1:
		return "Peg1"
	case ActionPeg2:
		return "Peg2"
	case ActionPeg3:
		return "Peg3"
	case ActionClick:
		return "Click"
	case ActionSolve:
		return "Solve"
	case ActionRestart:
		return "Restart"
	case ActionMoreDisks:
		return "MoreDisks"
	case ActionFewerDisks:
		return "FewerDisks"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PegAction returns the action that activates the peg with the given
// zero-based index, or ActionNone for an index outside 0..2.
func PegAction(peg int) Action {
	switch peg {
	case 0:
		return ActionPeg1
	case 1:
		return ActionPeg2
	case 2:
		return ActionPeg3
	default:
		return ActionNone
	}
}

// InputFrame represents the input state for a single tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// PointerX and PointerY hold the cell of the last click when ActionClick is set.
	PointerX, PointerY int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Click records a pointer press at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Set(ActionClick)
	f.PointerX = x
	f.PointerY = y
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	for _, set := range f.Actions {
		if set {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerX, f.PointerY = 0, 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerX, clone.PointerY = f.PointerX, f.PointerY
	return clone
}
