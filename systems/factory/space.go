package factory

import (
	"github.com/automoto/boomstick/archetypes"
	"github.com/automoto/boomstick/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, depth, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, depth, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}
