package systems

import (
	"math"

	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// View is what locomotion needs from the camera.
// Displacements are applied along the camera's current yaw; callers never
// touch the pose directly.
type View interface {
	Yaw() float64
	MoveForward(distance float64)
	MoveRight(distance float64)
	Turn(delta float64)
	SetElevation(y float64)
	Engaged() bool
}

// CameraRig adapts the Camera and Engage components to View.
type CameraRig struct {
	camera *components.CameraData
	engage *components.EngageData
}

// NewCameraRig binds a rig to the world's camera. It reports false when the
// world has no camera yet.
func NewCameraRig(ecs *ecs.ECS) (*CameraRig, bool) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	return &CameraRig{
		camera: components.Camera.Get(entry),
		engage: GetOrCreateEngage(ecs),
	}, true
}

func (r *CameraRig) Yaw() float64 {
	return r.camera.Yaw
}

func (r *CameraRig) MoveForward(distance float64) {
	f := gamemath.Forward(r.camera.Yaw)
	r.camera.Position.X += f.X * distance
	r.camera.Position.Z += f.Y * distance
}

func (r *CameraRig) MoveRight(distance float64) {
	right := gamemath.Right(r.camera.Yaw)
	r.camera.Position.X += right.X * distance
	r.camera.Position.Z += right.Y * distance
}

// Turn rotates the camera about +y. Yaw is kept in [-π, π].
func (r *CameraRig) Turn(delta float64) {
	r.camera.Yaw = math.Remainder(r.camera.Yaw+delta, 2*math.Pi)
}

func (r *CameraRig) SetElevation(y float64) {
	r.camera.Position.Y = y
}

func (r *CameraRig) Engaged() bool {
	return r.engage.Engaged
}
