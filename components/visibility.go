package components

import "github.com/yohamta/donburi"

type VisibilityData struct {
	Visible bool
}

var Visibility = donburi.NewComponentType[VisibilityData]()
