package systems

import (
	"log"

	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
	"github.com/automoto/boomstick/events"
	"github.com/automoto/boomstick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubscribeLifecycleEvents hooks the death and hurt reactions into w. Call
// once per session world.
func SubscribeLifecycleEvents(w donburi.World) {
	events.PlayerDeathEvent.Subscribe(w, OnPlayerDeath)
	events.PlayerDeathEvent.Subscribe(w, OnPlayerDeathStats)
	events.PlayerHurtEvent.Subscribe(w, OnPlayerHurt)
}

// UpdateEvents delivers this frame's events and empties the queues, so an
// event is only ever seen during the frame it was published in.
func UpdateEvents(ecs *ecs.ECS) {
	events.ProcessAll(ecs.World)
}

// OnPlayerDeath hides the view model and drops the camera to the floor.
func OnPlayerDeath(w donburi.World, _ events.PlayerDeath) {
	tags.ViewModel.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Visibility) {
			components.Visibility.Get(e).Visible = false
		}
	})

	cameraEntry, ok := tags.MainCamera.First(w)
	if !ok {
		log.Printf("Warning: no main camera to drop on player death")
		return
	}
	components.Transform.Get(cameraEntry).Position.Y -= cfg.Player.DeathCameraDrop
}

// OnPlayerDeathStats records the death for the session summary.
func OnPlayerDeathStats(w donburi.World, _ events.PlayerDeath) {
	entry, ok := components.Stats.First(w)
	if !ok {
		return
	}
	stats := components.Stats.Get(entry)
	stats.Deaths++

	if clockEntry, ok := components.Clock.First(w); ok {
		stats.SurvivedFor = components.Clock.Get(clockEntry).Elapsed.Seconds()
	}
}

func OnPlayerHurt(w donburi.World, _ events.PlayerHurt) {
	entry, ok := components.HUD.First(w)
	if !ok {
		return
	}
	components.HUD.Get(entry).HurtFlash.Reset()
}
