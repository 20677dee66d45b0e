package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionAimUp            // W, Up arrow
	ActionAimDown          // S, Down arrow
	ActionAimLeft          // A, Left arrow
	ActionAimRight         // D, Right arrow
	ActionFire             // Space - pull or keep holding the trigger
	ActionCeaseFire        // X - release the trigger
	ActionConfirm          // Enter - start the next round
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R - new session after the last round
	ActionQuit             // Q, Ctrl+C
	ActionPause            // P
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionAimUp:     "AimUp",
	ActionAimDown:   "AimDown",
	ActionAimLeft:   "AimLeft",
	ActionAimRight:  "AimRight",
	ActionFire:      "Fire",
	ActionCeaseFire: "CeaseFire",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
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
