package factory

import (
	"github.com/automoto/boomstick/archetypes"
	"github.com/automoto/boomstick/components"
	"github.com/automoto/boomstick/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, z, w, d float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, z, w, d, tags.ResolvWall)
	obj.SetShape(resolv.NewRectangle(0, 0, w, d))
	obj.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return wall
}

// CreateArenaWalls boxes in a width x depth arena.
func CreateArenaWalls(ecs *ecs.ECS, width, depth, thickness float64) {
	CreateWall(ecs, 0, 0, width, thickness)
	CreateWall(ecs, 0, depth-thickness, width, thickness)
	CreateWall(ecs, 0, thickness, thickness, depth-2*thickness)
	CreateWall(ecs, width-thickness, thickness, thickness, depth-2*thickness)
}
