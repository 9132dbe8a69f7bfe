package components

import (
	cfg "github.com/automoto/boomstick/config"
	"github.com/yohamta/donburi"
)

// DeathPhase is the step the player's death sequence is in.
type DeathPhase int

const (
	PhaseAlive DeathPhase = iota
	PhaseDyingFirstFrame
	PhaseDying
	PhaseEndRequested
)

func (p DeathPhase) String() string {
	switch p {
	case PhaseAlive:
		return "Alive"
	case PhaseDyingFirstFrame:
		return "DyingFirstFrame"
	case PhaseDying:
		return "Dying"
	case PhaseEndRequested:
		return "EndRequested"
	}
	return "Unknown"
}

// PlayerData is the player's lifecycle record for one session.
type PlayerData struct {
	InvulnerabilityTimer Timer
	DeathTimer           Timer
	Dead                 bool // latched on the first frame Health reports dead, never cleared
	Phase                DeathPhase
}

// NewPlayerData returns a fresh record. The invulnerability timer starts
// finished so the player can be hit right away.
func NewPlayerData() PlayerData {
	return PlayerData{
		InvulnerabilityTimer: NewFinishedTimer(cfg.Player.InvulnerabilityDuration),
		DeathTimer:           NewTimer(cfg.Player.DeathDelay),
		Phase:                PhaseAlive,
	}
}

func (p *PlayerData) IsVulnerable() bool {
	return p.InvulnerabilityTimer.Finished()
}

// MarkHit re-arms invulnerability after an accepted hit.
func (p *PlayerData) MarkHit() {
	p.InvulnerabilityTimer.Reset()
}

var Player = donburi.NewComponentType[PlayerData]()
