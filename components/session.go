package components

import (
	cfg "github.com/automoto/boomstick/config"
	"github.com/yohamta/donburi"
)

// SessionData tracks the top-level state and a pending transition request.
type SessionData struct {
	State   cfg.GameStateID
	Next    cfg.GameStateID
	HasNext bool
}

var Session = donburi.NewComponentType[SessionData]()

// StatsData accumulates statistics for the current session.
type StatsData struct {
	Deaths      int
	SurvivedFor float64 // seconds alive before the latest death
}

var Stats = donburi.NewComponentType[StatsData]()
