package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a grounded player resting at the configured eye height.
func CreatePlayer(ecs *ecs.ECS, tuning cfg.LocomotionConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		Height:              tuning.Height,
		Speed:               tuning.Speed,
		DiagonalSpeedFactor: tuning.DiagonalSpeedFactor,
		TurnSpeed:           tuning.TurnSpeed,
		MouseSensitivity:    tuning.MouseSensitivity,
		Gravity:             tuning.Gravity,
		JumpStrength:        tuning.JumpStrength,

		Elevation:        tuning.Height,
		VerticalVelocity: 0,
		Grounded:         true,
	})

	return player
}
