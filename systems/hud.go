package systems

import (
	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
	"github.com/automoto/boomstick/fonts"
	"github.com/automoto/boomstick/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHUD runs the hurt flash down.
func UpdateHUD(ecs *ecs.ECS) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	components.HUD.Get(entry).HurtFlash.Tick(FrameDelta(ecs.World))
}

// DrawHUD renders the health bar, the hurt flash and the pause banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	if entry, ok := components.HUD.First(ecs.World); ok {
		if hud := components.HUD.Get(entry); !hud.HurtFlash.Finished() {
			vector.FillRect(screen, 0, 0, width, height, cfg.HUD.HurtFlashColor, false)
		}
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		hp := components.Health.Get(playerEntry)
		ratio := float32(0)
		if hp.Max > 0 {
			ratio = float32(hp.Current / hp.Max)
		}

		x, y := cfg.HUD.HealthBarMargin, height-cfg.HUD.HealthBarMargin-cfg.HUD.HealthBarHeight
		vector.FillRect(screen, x, y, cfg.HUD.HealthBarWidth, cfg.HUD.HealthBarHeight, cfg.HUD.HealthBarBg, false)
		vector.FillRect(screen, x, y, cfg.HUD.HealthBarWidth*ratio, cfg.HUD.HealthBarHeight, cfg.HUD.HealthBarFg, false)
	}

	if IsPaused(ecs.World) {
		vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)
		label := "PAUSED"
		x := int(width)/2 - len(label)*6
		text.Draw(screen, label, fonts.Bold.Get(), x, int(height)/2, cfg.White)
	}
}
