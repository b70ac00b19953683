package systems

import (
	"github.com/automoto/firstperson/components"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProps advances decorative animation. It runs while disengaged too.
func UpdateProps(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	if clock.DeltaTime <= 0 {
		return
	}
	dt := float32(clock.DeltaTime)

	components.Spin.Each(ecs.World, func(e *donburi.Entry) {
		spin := components.Spin.Get(e)
		if spin.TweenX != nil {
			spin.RotationX = advanceTurn(spin.TweenX, dt)
		}
		if spin.TweenY != nil {
			spin.RotationY = advanceTurn(spin.TweenY, dt)
		}
	})
}

// advanceTurn steps a one-revolution tween and restarts it when done,
// carrying the time past the end into the next revolution.
func advanceTurn(tw *gween.Tween, dt float32) float64 {
	current, finished := tw.Update(dt)
	for finished {
		overflow := tw.Overflow
		tw.Reset()
		if overflow <= 0 {
			break
		}
		current, finished = tw.Update(overflow)
	}
	return float64(current)
}
