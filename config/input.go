package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical locomotion action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionTurnLeft
	ActionTurnRight
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:         "none",
	ActionMoveForward:  "forward",
	ActionMoveBackward: "backward",
	ActionMoveLeft:     "left",
	ActionMoveRight:    "right",
	ActionJump:         "jump",
	ActionTurnLeft:     "turn-left",
	ActionTurnRight:    "turn-right",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Valid reports whether a names a real action that can hold state.
func (a ActionID) Valid() bool {
	return a > ActionNone && a < ActionCount
}

// InputBinding represents the keys and gamepad buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64

	// Keys that release the cursor and suspend locomotion
	DisengageKeys []ebiten.Key
}

// ActionForKey maps a raw key to its action. Unbound keys report false.
func (c InputConfig) ActionForKey(key ebiten.Key) (ActionID, bool) {
	for action, binding := range c.Bindings {
		for _, k := range binding.Keys {
			if k == key {
				return action, true
			}
		}
	}
	return ActionNone, false
}

// ActionForGamepadButton maps a standard-layout button to its action.
func (c InputConfig) ActionForGamepadButton(btn ebiten.StandardGamepadButton) (ActionID, bool) {
	for action, binding := range c.Bindings {
		for _, b := range binding.StandardGamepadButtons {
			if b == btn {
				return action, true
			}
		}
	}
	return ActionNone, false
}

// StickActions folds a left stick reading into the move actions it holds.
// Standard layout reports up as negative vertical.
func (c InputConfig) StickActions(horizontal, vertical float64) (held [ActionCount]bool) {
	held[ActionMoveLeft] = horizontal < -c.AnalogDeadzone
	held[ActionMoveRight] = horizontal > c.AnalogDeadzone
	held[ActionMoveForward] = vertical < -c.AnalogDeadzone
	held[ActionMoveBackward] = vertical > c.AnalogDeadzone
	return held
}

// AnyDisengageKey reports whether any of keys suspends locomotion.
func (c InputConfig) AnyDisengageKey(keys []ebiten.Key) bool {
	for _, key := range keys {
		if c.IsDisengageKey(key) {
			return true
		}
	}
	return false
}

// IsDisengageKey reports whether key suspends locomotion.
func (c InputConfig) IsDisengageKey(key ebiten.Key) bool {
	for _, k := range c.DisengageKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW},
				// D-pad Up (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveBackward: {
				Keys: []ebiten.Key{ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionTurnLeft: {
				Keys: []ebiten.Key{ebiten.KeyArrowLeft},
				// LB / L1
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionTurnRight: {
				Keys: []ebiten.Key{ebiten.KeyArrowRight},
				// RB / R1
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
		},
		DisengageKeys: []ebiten.Key{ebiten.KeyEscape},
	}
}
