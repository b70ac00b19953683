package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SpinData drives a prop that rotates forever about its x and y axes.
// Each tween runs one full turn and is reset when it finishes.
type SpinData struct {
	TweenX    *gween.Tween
	TweenY    *gween.Tween
	RotationX float64
	RotationY float64
	X, Y, Z   float64 // Prop centre
	Size      float64
}

var Spin = donburi.NewComponentType[SpinData]()
