package systems

import (
	"github.com/automoto/boomstick/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves collision bodies to their entity's transform and
// refreshes their place in the space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			continue
		}
		if e.HasComponent(components.Transform) {
			pos := components.Transform.Get(e).Position
			obj.X = pos.X
			obj.Y = pos.Z
		}
		obj.Update()
	}
}
