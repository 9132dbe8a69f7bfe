package components

import "github.com/yohamta/donburi"

// CharacterControllerData holds movement tuning read by the controller.
type CharacterControllerData struct {
	MaxSpeed     float64
	Acceleration float64
	Velocity     Vector3
}

var CharacterController = donburi.NewComponentType[CharacterControllerData]()

// SpatialListenerData marks the entity spatial audio is heard from.
type SpatialListenerData struct {
	Gain float64
}

var SpatialListener = donburi.NewComponentType[SpatialListenerData]()

type NameData struct {
	Name string
}

var Name = donburi.NewComponentType[NameData]()
