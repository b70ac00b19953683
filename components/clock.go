package components

import "github.com/yohamta/donburi"

// ClockData carries the delta of the tick currently being processed
// and the stepping policy used to integrate it.
type ClockData struct {
	DeltaTime float64 // Seconds, already clamped
	Ticks     uint64

	MaxDeltaTime float64
	Substeps     int     // Integration steps per tick
	ReferenceTPS float64 // Tick rate per-tick speeds are expressed in
}

var Clock = donburi.NewComponentType[ClockData]()
