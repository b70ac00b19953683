package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// LocalVelocity is a movement vector relative to the camera's facing.
// X is lateral (positive = right), Z is forward (positive = ahead).
type LocalVelocity struct {
	X, Z float64
}

// Len returns the magnitude of the vector.
func (v LocalVelocity) Len() float64 {
	return math.Hypot(v.X, v.Z)
}

// IsZero reports whether there is no movement.
func (v LocalVelocity) IsZero() bool {
	return v.X == 0 && v.Z == 0
}

// Axis folds two opposing digital inputs into -1, 0 or +1.
// Pressing both cancels out.
func Axis(positive, negative bool) float64 {
	var a float64
	if positive {
		a++
	}
	if negative {
		a--
	}
	return a
}

// ComposeLocalVelocity turns directional input into a local-space velocity.
// When both axes are active each one is scaled by diagonalFactor/√2, so the
// combined speed is speed*diagonalFactor instead of speed*√2.
func ComposeLocalVelocity(forward, backward, left, right bool, speed, diagonalFactor float64) LocalVelocity {
	forwardAxis := Axis(forward, backward)
	lateralAxis := Axis(right, left)

	scale := speed
	if forwardAxis != 0 && lateralAxis != 0 {
		scale *= diagonalFactor / math.Sqrt2
	}

	return LocalVelocity{
		X: lateralAxis * scale,
		Z: forwardAxis * scale,
	}
}

// Forward returns the unit ground-plane vector the camera faces at yaw.
// X maps to world x and Y maps to world z. Yaw rotates about +y and
// yaw 0 faces +z.
func Forward(yaw float64) dmath.Vec2 {
	return dmath.Vec2{X: -math.Sin(yaw), Y: math.Cos(yaw)}
}

// Right returns the unit ground-plane vector to the camera's right at yaw.
func Right(yaw float64) dmath.Vec2 {
	return dmath.Vec2{X: -math.Cos(yaw), Y: -math.Sin(yaw)}
}

// Project converts a local velocity into a world (x, z) displacement at yaw.
func Project(v LocalVelocity, yaw float64) dmath.Vec2 {
	f := Forward(yaw)
	r := Right(yaw)
	return dmath.Vec2{
		X: f.X*v.Z + r.X*v.X,
		Y: f.Y*v.Z + r.Y*v.X,
	}
}
