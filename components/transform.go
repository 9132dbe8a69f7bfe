package components

import "github.com/yohamta/donburi"

// Vector3 is a position in world units. Y is up.
type Vector3 struct {
	X, Y, Z float64
}

type TransformData struct {
	Position Vector3
	Yaw      float64 // radians
}

var Transform = donburi.NewComponentType[TransformData]()
