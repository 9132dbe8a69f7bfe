package components

import "github.com/yohamta/donburi"

// DamageEventData is a pending hit, consumed by the combat system in the
// frame it was queued.
type DamageEventData struct {
	Amount float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
