package systems

import (
	"math"
	"testing"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestUpdatePropsSpinsAndWraps(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	GetOrCreateClock(w)
	scene := cfg.Scene
	scene.CubeSpinX = 0
	scene.CubeSpinY = 0.02
	cube := factory.CreateSpinningCube(w, scene, 60)

	spin := components.Spin.Get(cube)
	require.Nil(t, spin.TweenX)
	require.NotNil(t, spin.TweenY)

	SetDeltaTime(w, 0.05)
	UpdateProps(w)
	// 0.02 rad per tick at 60 TPS is 1.2 rad/s
	assert.InDelta(t, 0.06, spin.RotationY, 1e-4)
	assert.Equal(t, 0.0, spin.RotationX)

	for i := 0; i < 200; i++ {
		SetDeltaTime(w, 0.05)
		UpdateProps(w)
		require.LessOrEqual(t, spin.RotationY, 2*math.Pi+1e-4)
	}
}

func TestUpdatePropsKeepsPhaseAcrossRevolutions(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	GetOrCreateClock(w)
	scene := cfg.Scene
	scene.CubeSpinX = 0
	scene.CubeSpinY = 0.02
	cube := factory.CreateSpinningCube(w, scene, 60)
	spin := components.Spin.Get(cube)

	// 10s at 1.2 rad/s crosses one full revolution
	for i := 0; i < 200; i++ {
		SetDeltaTime(w, 0.05)
		UpdateProps(w)
	}
	assert.InDelta(t, math.Mod(12, 2*math.Pi), spin.RotationY, 1e-3)
}

func TestUpdatePropsRunsWhileDisengaged(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	cube := factory.CreateSpinningCube(w, cfg.Scene, 60)

	SetEngaged(w, false)
	SetDeltaTime(w, 0.05)
	UpdateProps(w)
	assert.Greater(t, components.Spin.Get(cube).RotationY, 0.0)
}
