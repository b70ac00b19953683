package components

import "github.com/yohamta/donburi"

// Vec3 is a world-space point. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// CameraData is the render pose. Only the camera rig writes it.
type CameraData struct {
	Position Vec3
	Yaw      float64 // Radians about +y, 0 faces +z
}

var Camera = donburi.NewComponentType[CameraData]()
