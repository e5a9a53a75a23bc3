package core

// Action represents a semantic key action, abstracted from physical key presses.
// Touch input is delivered separately as touch events; actions cover the
// keyboard shortcuts a terminal host offers on top of it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter, Space - primary action (flap, press button)
	ActionBack           // B, Escape - go back
	ActionPause          // P - open/close the pause dialog
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - stop the game
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
