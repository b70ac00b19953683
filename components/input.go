package components

import (
	cfg "github.com/automoto/firstperson/config"
	"github.com/yohamta/donburi"
)

// InputData stores the latest pressed state for every action.
// It changes only when queued events are drained at the start of a tick.
type InputData struct {
	Pressed [cfg.ActionCount]bool

	// Horizontal cursor travel (pixels) drained this tick
	LookDelta float64
}

// Set records the latest state for an action. Invalid actions are ignored.
func (d *InputData) Set(action cfg.ActionID, pressed bool) {
	if !action.Valid() {
		return
	}
	d.Pressed[action] = pressed
}

// IsPressed returns the latest recorded state, false for anything never set.
func (d *InputData) IsPressed(action cfg.ActionID) bool {
	if !action.Valid() {
		return false
	}
	return d.Pressed[action]
}

var Input = donburi.NewComponentType[InputData]()

// ActionEvent is a single press or release delivered by the host.
type ActionEvent struct {
	Action  cfg.ActionID
	Pressed bool
}

// ActionQueueData holds host events that arrived since the last drain.
// Events keeps at most one entry per action.
type ActionQueueData struct {
	Events    []ActionEvent
	LookDelta float64

	// Gamepad state seen on the previous host poll
	GamepadHeld [cfg.ActionCount]bool
}

var ActionQueue = donburi.NewComponentType[ActionQueueData]()
