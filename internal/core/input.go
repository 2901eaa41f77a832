package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left (held)
	ActionRight          // D, Right arrow - move right (held)
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionJump           // Space, Up arrow - jump in runners, start in the shooter
	ActionConfirm        // Enter - confirm selection, start or resume
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart game
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
	ActionTheme          // T - toggle dark/light theme
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionTheme:
		return "Theme"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered or held during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
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
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// KeyState approximates held keys for hosts that only deliver key presses.
// A terminal sends repeated presses while a key is down, so an action counts
// as held until holdTicks ticks pass without a new press.
// Pressing an opposing direction releases the other one (last write wins).
type KeyState struct {
	lastPress map[Action]int
	tick      int
	holdTicks int
}

// NewKeyState creates a tracker that keeps actions held for holdTicks ticks.
func NewKeyState(holdTicks int) *KeyState {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyState{
		lastPress: make(map[Action]int),
		holdTicks: holdTicks,
	}
}

// Press records a key-down for the action at the current tick.
func (k *KeyState) Press(a Action) {
	switch a {
	case ActionLeft:
		delete(k.lastPress, ActionRight)
	case ActionRight:
		delete(k.lastPress, ActionLeft)
	}
	k.lastPress[a] = k.tick
}

// Release forgets the action immediately.
func (k *KeyState) Release(a Action) {
	delete(k.lastPress, a)
}

// Held reports whether the action is still considered down.
func (k *KeyState) Held(a Action) bool {
	at, ok := k.lastPress[a]
	return ok && k.tick-at < k.holdTicks
}

// Apply sets every held action on the frame.
func (k *KeyState) Apply(f *InputFrame) {
	for a := range k.lastPress {
		if k.Held(a) {
			f.Set(a)
		}
	}
}

// Advance moves to the next tick and drops expired actions.
func (k *KeyState) Advance() {
	k.tick++
	for a, at := range k.lastPress {
		if k.tick-at >= k.holdTicks {
			delete(k.lastPress, a)
		}
	}
}

// Reset releases every action.
func (k *KeyState) Reset() {
	for a := range k.lastPress {
		delete(k.lastPress, a)
	}
}
