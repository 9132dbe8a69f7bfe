package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
	Dead    bool
}

func NewHealth(max float64) HealthData {
	return HealthData{Current: max, Max: max}
}

var Health = donburi.NewComponentType[HealthData]()
