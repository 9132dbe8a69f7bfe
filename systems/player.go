package systems

import (
	"github.com/automoto/boomstick/components"
	"github.com/automoto/boomstick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer advances each player's invulnerability window. Re-arming it
// is up to the combat system.
func UpdatePlayer(ecs *ecs.ECS) {
	dt := FrameDelta(ecs.World)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.InvulnerabilityTimer.Tick(dt)
	})
}
