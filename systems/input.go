package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for polling to avoid allocations
var (
	keyBuffer  []ebiten.Key
	gamepadIDs []ebiten.GamepadID
)

// UpdateInput drains queued host events into the Input component.
// Must run BEFORE UpdateLocomotion in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	queue := getOrCreateActionQueue(ecs)

	for _, ev := range queue.Events {
		input.Set(ev.Action, ev.Pressed)
	}
	queue.Events = queue.Events[:0]

	input.LookDelta = queue.LookDelta
	queue.LookDelta = 0
}

// PushAction queues a press or release for the next engaged tick.
// A later event for an already queued action replaces it, so the queue
// stays bounded while disengaged. Invalid actions are dropped.
func PushAction(ecs *ecs.ECS, action cfg.ActionID, pressed bool) {
	if !action.Valid() {
		return
	}
	queue := getOrCreateActionQueue(ecs)
	for i := range queue.Events {
		if queue.Events[i].Action == action {
			queue.Events[i].Pressed = pressed
			return
		}
	}
	queue.Events = append(queue.Events, components.ActionEvent{Action: action, Pressed: pressed})
}

// PushKey maps a raw key through the bindings table and queues the result.
// Keys without a binding are ignored and report false.
func PushKey(ecs *ecs.ECS, key ebiten.Key, pressed bool) bool {
	action, ok := cfg.Input.ActionForKey(key)
	if !ok {
		return false
	}
	PushAction(ecs, action, pressed)
	return true
}

// PushLook accumulates horizontal cursor travel for the next engaged tick.
func PushLook(ecs *ecs.ECS, dx float64) {
	getOrCreateActionQueue(ecs).LookDelta += dx
}

// CollectKeyboard turns this frame's key transitions into queued events.
// It is the host side of input and must be called from the ebiten update.
func CollectKeyboard(ecs *ecs.ECS) {
	keyBuffer = inpututil.AppendJustPressedKeys(keyBuffer[:0])
	for _, key := range keyBuffer {
		PushKey(ecs, key, true)
	}

	keyBuffer = inpututil.AppendJustReleasedKeys(keyBuffer[:0])
	for _, key := range keyBuffer {
		PushKey(ecs, key, false)
	}
}

// CollectGamepads polls standard-layout gamepads and queues changes in the
// combined button and left stick state of every action.
func CollectGamepads(ecs *ecs.ECS) {
	var held [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		for action, binding := range cfg.Input.Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					held[action] = true
					break
				}
			}
		}

		stick := cfg.Input.StickActions(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		)
		for action, on := range stick {
			held[action] = held[action] || on
		}
	}

	PushGamepadState(ecs, held)
}

// PushGamepadState queues a press or release for every action whose gamepad
// state differs from the previous poll.
func PushGamepadState(ecs *ecs.ECS, held [cfg.ActionCount]bool) {
	queue := getOrCreateActionQueue(ecs)
	prev := queue.GamepadHeld
	queue.GamepadHeld = held

	for action := cfg.ActionID(0); action < cfg.ActionCount; action++ {
		if held[action] != prev[action] {
			PushAction(ecs, action, held[action])
		}
	}
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

func getOrCreateActionQueue(ecs *ecs.ECS) *components.ActionQueueData {
	entry, ok := components.ActionQueue.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.ActionQueue))
	}
	return components.ActionQueue.Get(entry)
}
