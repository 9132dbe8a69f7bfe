package factory

import (
	"time"

	"github.com/automoto/boomstick/archetypes"
	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding session state, the frame clock
// and pause state. step is the fixed frame delta.
func CreateSession(ecs *ecs.ECS, step time.Duration) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{State: cfg.GameStateInGame})
	components.Clock.SetValue(session, components.ClockData{Step: step})
	components.HUD.SetValue(session, components.HUDData{
		HurtFlash: components.NewFinishedTimer(cfg.HUD.HurtFlash),
	})
	return session
}

// CreateSessionAtRate spawns the session with a clock ticking tps times per
// second.
func CreateSessionAtRate(ecs *ecs.ECS, tps int) *donburi.Entry {
	session := CreateSession(ecs, 0)
	components.Clock.Get(session).SetRate(tps)
	return session
}
