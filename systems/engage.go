package systems

import (
	"github.com/automoto/firstperson/components"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// SetEngaged switches locomotion processing on or off.
// It reports whether the state actually changed.
func SetEngaged(ecs *ecs.ECS, engaged bool) bool {
	engage := GetOrCreateEngage(ecs)
	if engage.Engaged == engaged {
		return false
	}
	engage.Engaged = engaged
	log.Debug().Bool("engaged", engaged).Msg("controller engagement changed")
	return true
}

// IsEngaged reports whether locomotion runs this tick.
func IsEngaged(ecs *ecs.ECS) bool {
	return GetOrCreateEngage(ecs).Engaged
}

// WithEngagedCheck wraps a system to skip execution while disengaged.
// A skipped system must leave every component it owns untouched.
func WithEngagedCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsEngaged(e) {
			return
		}
		system(e)
	}
}

// GetOrCreateEngage returns the singleton Engage component, creating if needed.
func GetOrCreateEngage(ecs *ecs.ECS) *components.EngageData {
	if _, ok := components.Engage.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Engage))
		components.Engage.SetValue(ent, components.EngageData{Engaged: false})
	}

	ent, _ := components.Engage.First(ecs.World)
	return components.Engage.Get(ent)
}
