package systems

import (
	"log"

	cfg "github.com/automoto/boomstick/config"
	"github.com/automoto/boomstick/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports the per-frame actions the session reacts to.
// Movement belongs to the character controller and is not read here.
type InputSource interface {
	PausePressed() bool
	DebugDamagePressed() bool
}

// KeyboardInput reads actions from ebiten's keyboard state.
type KeyboardInput struct{}

func (KeyboardInput) PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}

func (KeyboardInput) DebugDamagePressed() bool {
	return cfg.Debug.DamageKey && inpututil.IsKeyJustPressed(ebiten.KeyH)
}

// NewUpdateInput creates the input system. It runs before the gameplay
// checks so the pause key works while paused.
func NewUpdateInput(input InputSource) ecs.System {
	return func(ecs *ecs.ECS) {
		if input.PausePressed() {
			paused := TogglePause(ecs.World)
			log.Printf("Paused: %v", paused)
		}

		if IsPaused(ecs.World) || !input.DebugDamagePressed() {
			return
		}
		tags.Player.Each(ecs.World, func(e *donburi.Entry) {
			QueueDamage(e, cfg.Hazard.DebugDamage)
		})
	}
}
