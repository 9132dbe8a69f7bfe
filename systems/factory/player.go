package factory

import (
	"github.com/automoto/boomstick/archetypes"
	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
	"github.com/automoto/boomstick/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its full component bundle and its
// shotgun view model. x and z are arena coordinates.
func CreatePlayer(ecs *ecs.ECS, x, z float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, z, cfg.Player.CollisionWidth, cfg.Player.CollisionDepth)
	obj.AddTags(tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionDepth))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.NewPlayerData())
	components.Name.SetValue(player, components.NameData{Name: "Player"})
	components.Health.SetValue(player, components.NewHealth(cfg.Player.Health))
	components.Transform.SetValue(player, components.TransformData{
		Position: components.Vector3{X: x, Y: 0, Z: z},
	})
	components.Visibility.SetValue(player, components.VisibilityData{Visible: true})
	components.SpatialListener.SetValue(player, components.SpatialListenerData{Gain: 1})
	components.CharacterController.SetValue(player, components.CharacterControllerData{
		MaxSpeed:     cfg.Player.MaxSpeed,
		Acceleration: cfg.Player.Acceleration,
	})
	components.CollisionGroups.SetValue(player, components.CollisionGroupsData{
		Memberships: components.GroupPlayer,
		Filters:     components.GroupEnemy | components.GroupExplosion | components.GroupWall,
	})

	viewModel := CreateViewModel(ecs)
	components.Shotgun.SetValue(player, components.ShotgunData{ViewModel: viewModel.Entity()})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}

// CreateViewModel spawns the first-person shotgun model.
func CreateViewModel(ecs *ecs.ECS) *donburi.Entry {
	vm := archetypes.ViewModel.Spawn(ecs)
	components.Name.SetValue(vm, components.NameData{Name: "ShotgunViewModel"})
	components.Visibility.SetValue(vm, components.VisibilityData{Visible: true})
	return vm
}
