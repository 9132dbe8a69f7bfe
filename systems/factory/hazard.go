package factory

import (
	"github.com/automoto/boomstick/archetypes"
	"github.com/automoto/boomstick/components"
	"github.com/automoto/boomstick/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard spawns something that damages the player on contact. source
// must be GroupEnemy or GroupExplosion.
func CreateHazard(ecs *ecs.ECS, source components.Group, x, z, w, d, damage float64) *donburi.Entry {
	var tag donburi.IComponentType = tags.Enemy
	if source == components.GroupExplosion {
		tag = tags.Explosion
	}
	hazard := archetypes.Hazard.Spawn(ecs, tag)

	obj := resolv.NewObject(x, z, w, d, source.ResolvTags()...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, d))
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	components.Hazard.SetValue(hazard, components.HazardData{Damage: damage, Source: source})
	components.Transform.SetValue(hazard, components.TransformData{
		Position: components.Vector3{X: x, Z: z},
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return hazard
}
