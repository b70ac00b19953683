package factory

import (
	"math"

	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpinningCube spawns the display cube. Spin rates are radians per
// reference tick and are turned into one-revolution tweens measured in seconds.
func CreateSpinningCube(ecs *ecs.ECS, scene cfg.SceneConfig, referenceTPS float64) *donburi.Entry {
	cube := archetypes.SpinningProp.Spawn(ecs)

	components.Spin.SetValue(cube, components.SpinData{
		TweenX: revolution(scene.CubeSpinX, referenceTPS),
		TweenY: revolution(scene.CubeSpinY, referenceTPS),
		X:      scene.CubeX,
		Y:      scene.CubeSize,
		Z:      scene.CubeZ,
		Size:   scene.CubeSize,
	})

	return cube
}

// revolution returns a linear 0..2π tween, or nil when the prop does not spin.
func revolution(radiansPerTick, referenceTPS float64) *gween.Tween {
	if radiansPerTick == 0 || referenceTPS <= 0 {
		return nil
	}
	seconds := 2 * math.Pi / (math.Abs(radiansPerTick) * referenceTPS)
	end := float32(2 * math.Pi)
	if radiansPerTick < 0 {
		end = -end
	}
	return gween.New(0, end, float32(seconds), ease.Linear)
}
