package systems

import (
	"math"
	"testing"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCameraRigNeedsCamera(t *testing.T) {
	_, ok := NewCameraRig(ecs.NewECS(donburi.NewWorld()))
	assert.False(t, ok)
}

func TestCameraRigMovesAlongYaw(t *testing.T) {
	w := newTestWorld(t, cfg.DefaultLocomotion())
	rig, ok := NewCameraRig(w)
	require.True(t, ok)

	rig.Turn(math.Pi / 2)
	assert.InDelta(t, math.Pi/2, rig.Yaw(), epsilon)

	rig.MoveForward(2)
	cam := cameraOf(t, w)
	assert.InDelta(t, -2, cam.Position.X, epsilon)
	assert.InDelta(t, -5, cam.Position.Z, epsilon)

	rig.MoveRight(1)
	assert.InDelta(t, -2, cam.Position.X, epsilon)
	assert.InDelta(t, -6, cam.Position.Z, epsilon)
}

func TestCameraRigWrapsYaw(t *testing.T) {
	w := newTestWorld(t, cfg.DefaultLocomotion())
	rig, _ := NewCameraRig(w)

	rig.Turn(3 * math.Pi / 2)
	assert.InDelta(t, -math.Pi/2, rig.Yaw(), epsilon)
}

func TestCameraRigReflectsEngagement(t *testing.T) {
	w := newTestWorld(t, cfg.DefaultLocomotion())
	rig, _ := NewCameraRig(w)

	assert.True(t, rig.Engaged())
	SetEngaged(w, false)
	assert.False(t, rig.Engaged())
}

func TestUpdateCameraSyncCopiesElevation(t *testing.T) {
	w := newTestWorld(t, cfg.DefaultLocomotion())
	playerOf(t, w).Elevation = 3.25

	UpdateCameraSync(w)
	assert.Equal(t, 3.25, cameraOf(t, w).Position.Y)
	assert.Equal(t, components.Vec3{X: 0, Y: 3.25, Z: -5}, cameraOf(t, w).Position)
}
