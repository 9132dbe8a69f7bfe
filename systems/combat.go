package systems

import (
	"github.com/automoto/boomstick/components"
	"github.com/automoto/boomstick/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// QueueDamage adds amount to e's pending hit for this frame.
func QueueDamage(e *donburi.Entry, amount float64) {
	if e.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(e).Amount += amount
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{Amount: amount})
}

// UpdateCombat applies pending hits to Health. Hits on an invulnerable
// player are dropped; accepted hits re-arm the invulnerability window.
func UpdateCombat(ecs *ecs.ECS) {
	// Collect first: removing DamageEvent moves the entry to another archetype.
	var pending []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		pending = append(pending, e)
	}

	for _, e := range pending {
		dmg := components.DamageEvent.Get(e)
		if e.HasComponent(components.Health) {
			applyDamage(ecs.World, e, dmg.Amount)
		}
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}

func applyDamage(w donburi.World, e *donburi.Entry, amount float64) {
	hp := components.Health.Get(e)
	if hp.Dead || amount <= 0 {
		return
	}

	isPlayer := e.HasComponent(components.Player)
	if isPlayer {
		player := components.Player.Get(e)
		if !player.IsVulnerable() {
			return
		}
		player.MarkHit()
	}

	hp.Current = max(hp.Current-amount, 0)
	if hp.Current == 0 {
		hp.Dead = true
	}

	if isPlayer {
		events.PlayerHurtEvent.Publish(w, events.PlayerHurt{Amount: amount, Remaining: hp.Current})
	}
}
