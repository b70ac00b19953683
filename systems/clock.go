package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Clock))
		components.Clock.SetValue(ent, components.ClockData{
			Substeps:     1,
			ReferenceTPS: cfg.DefaultLocomotion().ReferenceTPS,
			MaxDeltaTime: cfg.DefaultLocomotion().MaxDeltaTime,
		})
	}

	ent, _ := components.Clock.First(ecs.World)
	return components.Clock.Get(ent)
}

// ConfigureClock applies the stepping policy from tuning.
func ConfigureClock(ecs *ecs.ECS, tuning cfg.LocomotionConfig) {
	clock := GetOrCreateClock(ecs)
	clock.Substeps = tuning.Substeps
	clock.ReferenceTPS = tuning.ReferenceTPS
	clock.MaxDeltaTime = tuning.MaxDeltaTime
}

// SetDeltaTime stamps the delta for the tick about to run.
// The value is capped at the configured maximum; non-positive deltas become 0
// and turn the tick into a no-op for integration.
func SetDeltaTime(ecs *ecs.ECS, dt float64) {
	clock := GetOrCreateClock(ecs)
	clock.DeltaTime = gamemath.ClampDelta(dt, clock.MaxDeltaTime)
	clock.Ticks++
}
