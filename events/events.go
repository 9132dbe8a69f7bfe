// Package events declares the gameplay notifications exchanged between
// systems. Queues live inside the donburi world, so they are scoped to the
// session that owns the world and vanish with it.
package events

import (
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// PlayerDeath is published once, on the frame the player newly becomes dead.
type PlayerDeath struct{}

// PlayerHurt is published when a hit is accepted.
type PlayerHurt struct {
	Amount    float64
	Remaining float64
}

var (
	PlayerDeathEvent = devents.NewEventType[PlayerDeath]()
	PlayerHurtEvent  = devents.NewEventType[PlayerHurt]()
)

// ProcessAll delivers every pending event to its subscribers and empties the
// queues.
func ProcessAll(w donburi.World) {
	devents.ProcessAllEvents(w)
}
