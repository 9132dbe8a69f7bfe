package config

import "github.com/yohamta/donburi/ecs"

// GameStateID identifies the top-level session state
type GameStateID int

const (
	GameStateInGame GameStateID = iota
	GameStateEnd
)

func (s GameStateID) String() string {
	switch s {
	case GameStateInGame:
		return "InGame"
	case GameStateEnd:
		return "End"
	}
	return "Unknown"
}

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)
