package components

import "github.com/yohamta/donburi"

// ShotgunData is the player's weapon. Firing is handled elsewhere.
type ShotgunData struct {
	ViewModel donburi.Entity
}

var Shotgun = donburi.NewComponentType[ShotgunData]()
