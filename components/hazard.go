package components

import "github.com/yohamta/donburi"

// HazardData marks something that hurts the player on contact.
type HazardData struct {
	Damage float64
	Source Group
}

var Hazard = donburi.NewComponentType[HazardData]()
