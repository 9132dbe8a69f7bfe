package systems

import (
	"log"
	"time"

	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
	"github.com/automoto/boomstick/events"
	"github.com/automoto/boomstick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerDeath runs the player's death sequence. It reads Health after
// combat has resolved this frame's damage.
func UpdatePlayerDeath(ecs *ecs.ECS) {
	dt := FrameDelta(ecs.World)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		player := components.Player.Get(e)
		advanceDeathSequence(ecs.World, player, health, dt)
	})
}

func advanceDeathSequence(w donburi.World, player *components.PlayerData, health *components.HealthData, dt time.Duration) {
	// A Health record that reports alive holds every timer. The latch stays
	// set even if something revives the player.
	if !health.Dead {
		return
	}

	if !player.Dead {
		player.Dead = true
		player.Phase = components.PhaseDyingFirstFrame
		events.PlayerDeathEvent.Publish(w, events.PlayerDeath{})
		log.Printf("Player died, session ends in %v", player.DeathTimer.Remaining())
		return
	}

	if player.Phase == components.PhaseDyingFirstFrame {
		player.Phase = components.PhaseDying
	}

	if player.DeathTimer.Tick(dt).JustFinished() {
		player.Phase = components.PhaseEndRequested
		RequestState(w, cfg.GameStateEnd)
	}
}
