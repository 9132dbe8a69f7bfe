package archetypes

import (
	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
	"github.com/automoto/boomstick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Player is everything the player needs from the first frame. Spawning
	// it is the only way a player is created, so the bundle is never partial.
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Name,
		components.Health,
		components.Transform,
		components.Visibility,
		components.SpatialListener,
		components.CharacterController,
		components.CollisionGroups,
		components.Object,
		components.Shotgun,
	)
	ViewModel = newArchetype(
		tags.ViewModel,
		components.Name,
		components.Visibility,
	)
	Camera = newArchetype(
		tags.MainCamera,
		components.Camera,
		components.Transform,
	)
	Session = newArchetype(
		components.Session,
		components.Clock,
		components.Pause,
		components.Stats,
		components.HUD,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Hazard = newArchetype(
		components.Hazard,
		components.Object,
		components.Transform,
	)
	GameOver = newArchetype(
		components.GameOver,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
