package scenes

import (
	"testing"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerState(t *testing.T, ws *WalkScene) components.PlayerData {
	t.Helper()
	entry, ok := components.Player.First(ws.ECS().World)
	require.True(t, ok)
	return *components.Player.Get(entry)
}

func cameraPose(t *testing.T, ws *WalkScene) components.CameraData {
	t.Helper()
	entry, ok := components.Camera.First(ws.ECS().World)
	require.True(t, ok)
	return *components.Camera.Get(entry)
}

func TestNewSceneStartsGroundedAtEyeHeight(t *testing.T) {
	ws := NewWalkScene(cfg.DefaultLocomotion(), cfg.Scene, false)

	player := playerState(t, ws)
	assert.True(t, player.Grounded)
	assert.Equal(t, 0.0, player.VerticalVelocity)
	assert.Equal(t, 1.8, player.Elevation)

	cam := cameraPose(t, ws)
	assert.Equal(t, components.Vec3{X: cfg.Scene.StartX, Y: 1.8, Z: cfg.Scene.StartZ}, cam.Position)
	assert.False(t, systems.IsEngaged(ws.ECS()))
}

func TestTickJumpRoundTrip(t *testing.T) {
	tuning := cfg.DefaultLocomotion()
	tuning.MaxDeltaTime = 0.1
	ws := NewWalkScene(tuning, cfg.Scene, true)

	systems.PushAction(ws.ECS(), cfg.ActionJump, true)
	ws.Tick(0.1)
	systems.PushAction(ws.ECS(), cfg.ActionJump, false)

	player := playerState(t, ws)
	assert.False(t, player.Grounded)
	assert.InDelta(t, 2.8, player.Elevation, 1e-9)
	assert.InDelta(t, 2.8, cameraPose(t, ws).Position.Y, 1e-9)

	ticks := 1
	for !playerState(t, ws).Grounded {
		ws.Tick(0.1)
		ticks++
		require.Less(t, ticks, 20, "never landed")
	}

	player = playerState(t, ws)
	assert.Equal(t, 8, ticks)
	assert.Equal(t, 1.8, player.Elevation)
	assert.Equal(t, 0.0, player.VerticalVelocity)
	assert.Equal(t, 1.8, cameraPose(t, ws).Position.Y)
}

func TestHeldJumpDoesNotDoubleJump(t *testing.T) {
	tuning := cfg.DefaultLocomotion()
	tuning.MaxDeltaTime = 0.1
	ws := NewWalkScene(tuning, cfg.Scene, true)

	systems.PushAction(ws.ECS(), cfg.ActionJump, true)
	ws.Tick(0.1)
	ws.Tick(0.1)

	// Still held, still airborne: velocity only lost gravity
	assert.InDelta(t, 4, playerState(t, ws).VerticalVelocity, 1e-9)
}

func TestDisengagedSceneIgnoresTicks(t *testing.T) {
	ws := NewWalkScene(cfg.DefaultLocomotion(), cfg.Scene, false)

	systems.PushAction(ws.ECS(), cfg.ActionMoveForward, true)
	systems.PushAction(ws.ECS(), cfg.ActionJump, true)
	before := playerState(t, ws)
	pose := cameraPose(t, ws)

	for i := 0; i < 10; i++ {
		ws.Tick(1.0 / 60)
	}
	assert.Equal(t, before, playerState(t, ws))
	assert.Equal(t, pose, cameraPose(t, ws))

	systems.SetEngaged(ws.ECS(), true)
	ws.Tick(1.0 / 60)
	assert.False(t, playerState(t, ws).Grounded)
	assert.Greater(t, cameraPose(t, ws).Position.Z, pose.Position.Z)
}

func TestScenesAreIndependent(t *testing.T) {
	a := NewWalkScene(cfg.DefaultLocomotion(), cfg.Scene, true)
	b := NewWalkScene(cfg.DefaultLocomotion(), cfg.Scene, true)

	systems.PushAction(a.ECS(), cfg.ActionMoveForward, true)
	a.Tick(1.0 / 60)
	b.Tick(1.0 / 60)

	assert.NotEqual(t, cameraPose(t, a).Position, cameraPose(t, b).Position)
	assert.False(t, systems.GetOrCreateInput(b.ECS()).IsPressed(cfg.ActionMoveForward))
}
