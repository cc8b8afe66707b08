package game

// Action is a device-independent input event. The entry point maps keys (or
// anything else) onto these; the sim never sees raw input.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionRight
	ActionDown
	ActionLeft
	// ActionConfirm enters locations, attacks, and leaves the result screen.
	ActionConfirm
	// ActionCancel is advertised in the help text but bound to nothing.
	ActionCancel
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionRight:
		return "right"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionConfirm:
		return "confirm"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Direction is a movement direction on the overworld tree.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// direction maps a directional action to its Direction, or DirNone.
func direction(a Action) Direction {
	switch a {
	case ActionUp:
		return DirUp
	case ActionRight:
		return DirRight
	case ActionDown:
		return DirDown
	case ActionLeft:
		return DirLeft
	default:
		return DirNone
	}
}
