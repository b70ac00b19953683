package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render/update layer the walk scene uses.
const Default ecs.LayerID = 0

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// LocomotionConfig contains all first-person movement tuning values
type LocomotionConfig struct {
	// Movement
	Height              float64 `yaml:"height"`              // Resting eye elevation above the ground plane
	Speed               float64 `yaml:"speed"`               // Units per reference tick
	DiagonalSpeedFactor float64 `yaml:"diagonalSpeedFactor"` // Combined speed multiplier when moving diagonally
	TurnSpeed           float64 `yaml:"turnSpeed"`           // Radians per reference tick (arrow keys)
	MouseSensitivity    float64 `yaml:"mouseSensitivity"`    // Radians per pixel of cursor travel

	// Physics
	Gravity      float64 `yaml:"gravity"`      // Units per second squared
	JumpStrength float64 `yaml:"jumpStrength"` // Initial upward velocity, units per second

	// Stepping
	MaxDeltaTime float64 `yaml:"maxDeltaTime"` // Frame delta cap in seconds
	Substeps     int     `yaml:"substeps"`     // Integration steps per frame
	ReferenceTPS float64 `yaml:"referenceTPS"` // Tick rate that Speed and TurnSpeed are expressed in
}

// Validate reports the first out-of-range tuning value.
func (c LocomotionConfig) Validate() error {
	switch {
	case !(c.Height > 0):
		return fmt.Errorf("%w: height must be positive, got %v", ErrInvalidConfig, c.Height)
	case !(c.Speed >= 0):
		return fmt.Errorf("%w: speed must not be negative, got %v", ErrInvalidConfig, c.Speed)
	case !(c.DiagonalSpeedFactor > 0):
		return fmt.Errorf("%w: diagonalSpeedFactor must be positive, got %v", ErrInvalidConfig, c.DiagonalSpeedFactor)
	case !(c.Gravity > 0):
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidConfig, c.Gravity)
	case !(c.JumpStrength >= 0):
		return fmt.Errorf("%w: jumpStrength must not be negative, got %v", ErrInvalidConfig, c.JumpStrength)
	case !(c.MaxDeltaTime > 0):
		return fmt.Errorf("%w: maxDeltaTime must be positive, got %v", ErrInvalidConfig, c.MaxDeltaTime)
	case c.Substeps < 1:
		return fmt.Errorf("%w: substeps must be at least 1, got %d", ErrInvalidConfig, c.Substeps)
	case !(c.ReferenceTPS > 0):
		return fmt.Errorf("%w: referenceTPS must be positive, got %v", ErrInvalidConfig, c.ReferenceTPS)
	}
	return nil
}

// SceneConfig describes the static scene the player walks around in
type SceneConfig struct {
	StartX, StartZ float64 // Initial camera position on the ground plane
	StartYaw       float64 // Radians, 0 faces +z
	FloorSize      float64 // Side length of the square floor plane
	CubeSize       float64
	CubeX, CubeZ   float64
	CubeSpinX      float64 // Radians per reference tick
	CubeSpinY      float64 // Radians per reference tick
}

// HUDConfig contains overlay and map rendering values
type HUDConfig struct {
	BackgroundColor color.RGBA
	FloorColor      color.RGBA
	CubeColor       color.RGBA
	PlayerColor     color.RGBA
	TextColor       color.RGBA
	MapScale        float64 // Pixels per world unit on the top-down map
	FacingLength    float64 // Length of the facing indicator in world units
	FontSize        float64
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartEngaged bool // Skip the click-to-play overlay
	ShowHUD      bool // Draw the numeric readout
}

// Global configuration instances
var C *Config
var Locomotion LocomotionConfig
var Scene SceneConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Pink         = color.RGBA{R: 255, G: 153, B: 153, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Night        = color.RGBA{R: 15, G: 25, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// DefaultLocomotion returns the built-in tuning values.
func DefaultLocomotion() LocomotionConfig {
	return LocomotionConfig{
		Height:              1.8,
		Speed:               0.2,
		DiagonalSpeedFactor: 1.2,
		TurnSpeed:           math.Pi * 0.01,
		MouseSensitivity:    0.003,

		Gravity:      30,
		JumpStrength: 10,

		MaxDeltaTime: 0.05,
		Substeps:     1,
		ReferenceTPS: 60,
	}
}

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Locomotion = DefaultLocomotion()

	Scene = SceneConfig{
		StartX:    0,
		StartZ:    -5,
		StartYaw:  0,
		FloorSize: 10,
		CubeSize:  1,
		CubeX:     0,
		CubeZ:     0,
		CubeSpinX: 0.01,
		CubeSpinY: 0.02,
	}

	HUD = HUDConfig{
		BackgroundColor: Night,
		FloorColor:      White,
		CubeColor:       Pink,
		PlayerColor:     LightBlue,
		TextColor:       White,
		MapScale:        24,
		FacingLength:    1.5,
		FontSize:        12,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		StartEngaged: false,
		ShowHUD:      true,
	}
}
