package systems

import (
	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
	"github.com/automoto/boomstick/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld draws the horizon at the camera's height and the shotgun view
// model while it is visible.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	horizon := height / 2
	if cameraEntry, ok := tags.MainCamera.First(ecs.World); ok {
		camY := components.Transform.Get(cameraEntry).Position.Y
		horizon = HorizonY(height, camY)
	}
	vector.FillRect(screen, 0, horizon, width, height-horizon, cfg.HUD.HorizonColor, false)

	tags.ViewModel.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Visibility.Get(e).Visible {
			return
		}
		w, h := cfg.HUD.ViewModelWidth, cfg.HUD.ViewModelHeight
		vector.FillRect(screen, (width-w)/2, height-h, w, h, cfg.HUD.ViewModelColor, false)
	})
}

// HorizonY maps camera height to the screen row of the horizon.
func HorizonY(screenHeight float32, cameraY float64) float32 {
	offset := (cfg.Player.EyeHeight - cameraY) * cfg.HUD.PixelsPerUnit
	y := screenHeight/2 - float32(offset)
	return max(0, min(y, screenHeight))
}
