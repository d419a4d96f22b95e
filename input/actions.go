// Package input holds the logical input table: the terminal poll goroutine
// latches key presses as logical actions, and the game reads them once per
// tick. Terminals deliver no key-release events, so "held" means pressed
// since the last tick; key autorepeat refreshes the latch while a key stays
// down, which approximates held-state at the tick rate.
package input

// Action is a logical input the game understands, decoupled from key codes.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionFire
	ActionConfirm
	ActionCancel
	ActionInfo
	ActionRestart
	ActionQuit

	actionCount
)

// Name returns the config key used for this action's binding.
func (a Action) Name() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionFire:
		return "fire"
	case ActionConfirm:
		return "confirm"
	case ActionCancel:
		return "cancel"
	case ActionInfo:
		return "info"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Actions lists every bindable action.
func Actions() []Action {
	return []Action{
		ActionLeft, ActionRight, ActionFire, ActionConfirm,
		ActionCancel, ActionInfo, ActionRestart, ActionQuit,
	}
}
