package systems

import (
	"github.com/automoto/boomstick/components"
	"github.com/automoto/boomstick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazardContacts queues damage for every hazard touching a player.
// Only the player's damage-source groups are checked, so walls never hurt.
func UpdateHazardContacts(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		groups := components.CollisionGroups.Get(e)
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}

		sources := groups.DamageSources().ResolvTags()
		if len(sources) == 0 {
			return
		}

		check := obj.Check(0, 0, sources...)
		if check == nil {
			return
		}

		for _, other := range check.ObjectsByTags(sources...) {
			hazard, ok := other.Data.(*donburi.Entry)
			if !ok || !hazard.Valid() || !hazard.HasComponent(components.Hazard) {
				continue
			}
			QueueDamage(e, components.Hazard.Get(hazard).Damage)
		}
	})
}
