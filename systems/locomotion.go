package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/gamemath"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion moves the camera from the current input and advances the
// vertical physics of every player.
// Must run AFTER UpdateInput and BEFORE UpdateCameraSync.
func UpdateLocomotion(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	if clock.DeltaTime <= 0 {
		return
	}

	view, ok := NewCameraRig(ecs)
	if !ok {
		return // no camera yet
	}
	if !view.Engaged() {
		return
	}

	input := GetOrCreateInput(ecs)
	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		stepPlayer(view, input, components.Player.Get(entry), clock)
	})
}

func stepPlayer(view View, input *components.InputData, player *components.PlayerData, clock *components.ClockData) {
	// Mouse look is applied once per tick, not per substep
	if input.LookDelta != 0 {
		view.Turn(input.LookDelta * player.MouseSensitivity)
	}

	steps := clock.Substeps
	if steps < 1 {
		steps = 1
	}
	dt := clock.DeltaTime / float64(steps)
	// Fraction of a reference tick covered by one step
	ticks := dt * clock.ReferenceTPS

	turn := gamemath.Axis(input.IsPressed(cfg.ActionTurnRight), input.IsPressed(cfg.ActionTurnLeft))
	velocity := ComposeVelocity(input, player)
	jump := input.IsPressed(cfg.ActionJump)

	for i := 0; i < steps; i++ {
		if turn != 0 {
			view.Turn(turn * player.TurnSpeed * ticks)
		}
		applyHorizontal(view, velocity, ticks)
		stepVertical(player, jump, dt)
	}
}

// ComposeVelocity returns the local-space velocity for the current input,
// in units per reference tick.
func ComposeVelocity(input *components.InputData, player *components.PlayerData) gamemath.LocalVelocity {
	return gamemath.ComposeLocalVelocity(
		input.IsPressed(cfg.ActionMoveForward),
		input.IsPressed(cfg.ActionMoveBackward),
		input.IsPressed(cfg.ActionMoveLeft),
		input.IsPressed(cfg.ActionMoveRight),
		player.Speed,
		player.DiagonalSpeedFactor,
	)
}

func applyHorizontal(view View, velocity gamemath.LocalVelocity, ticks float64) {
	if velocity.IsZero() {
		return
	}
	if velocity.X != 0 {
		view.MoveRight(velocity.X * ticks)
	}
	if velocity.Z != 0 {
		view.MoveForward(velocity.Z * ticks)
	}
}

func stepVertical(player *components.PlayerData, jump bool, dt float64) {
	state := gamemath.VerticalState{
		Elevation: player.Elevation,
		Velocity:  player.VerticalVelocity,
		Grounded:  player.Grounded,
	}
	next, event := gamemath.StepVertical(state, jump, dt, gamemath.VerticalParams{
		Ground:       player.Height,
		Gravity:      player.Gravity,
		JumpStrength: player.JumpStrength,
	})

	player.Elevation = next.Elevation
	player.VerticalVelocity = next.Velocity
	player.Grounded = next.Grounded

	switch event {
	case gamemath.VerticalJumped:
		log.Debug().Float64("velocity", player.JumpStrength).Msg("jump")
	case gamemath.VerticalLanded, gamemath.VerticalHop:
		log.Debug().Float64("elevation", player.Elevation).Msg("landed")
	}
}
