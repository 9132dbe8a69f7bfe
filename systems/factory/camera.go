package factory

import (
	"github.com/automoto/boomstick/archetypes"
	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the main camera at eye height above (x, z).
func CreateCamera(ecs *ecs.ECS, x, z float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{Fov: 90})
	components.Transform.SetValue(camera, components.TransformData{
		Position: components.Vector3{X: x, Y: cfg.Player.EyeHeight, Z: z},
	})
	return camera
}
