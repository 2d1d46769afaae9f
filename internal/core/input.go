package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // K, Up arrow - move cursor up
	ActionDown           // J, Down arrow - move cursor down
	ActionLeft           // H, Left arrow - move cursor left
	ActionRight          // L, Right arrow - move cursor right
	ActionSelect         // Space, Enter - flip the card under the cursor
	ActionShuffle        // S - shuffle the deck
	ActionHint           // ?, T - peek at every card once per game
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - start a new game
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionShuffle:
		return "Shuffle"
	case ActionHint:
		return "Hint"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Point is a screen coordinate in character cells.
type Point struct {
	X, Y int
}

// InputFrame represents the player's input during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Click holds the last pointer press of the frame, if any.
	Click *Point
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

// SetClick records a pointer press at (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.Click = &Point{X: x, Y: y}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Click != nil {
		p := *f.Click
		clone.Click = &p
	}
	return clone
}
