package components

import "github.com/yohamta/donburi"

type CameraData struct {
	Fov float64 // degrees
}

var Camera = donburi.NewComponentType[CameraData]()
