package components

import "github.com/yohamta/donburi"

// EngageData stores whether the controller is capturing input.
type EngageData struct {
	Engaged bool
}

var Engage = donburi.NewComponentType[EngageData]()
