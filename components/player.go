package components

import "github.com/yohamta/donburi"

// PlayerData is the logical locomotion state of the first-person player.
// Elevation and VerticalVelocity are written only by the vertical physics step.
type PlayerData struct {
	// Tuning, copied from config at spawn
	Height              float64
	Speed               float64
	DiagonalSpeedFactor float64
	TurnSpeed           float64
	MouseSensitivity    float64
	Gravity             float64
	JumpStrength        float64

	// Vertical state
	Elevation        float64 // Logical eye position above the ground plane
	VerticalVelocity float64
	Grounded         bool
}

var Player = donburi.NewComponentType[PlayerData]()
