package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
	"github.com/automoto/boomstick/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene is the end state
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	summary      components.SessionSummary
	once         sync.Once
}

func NewGameOverScene(sc SceneChanger, summary components.SessionSummary) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, summary: summary}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	systems.CreateGameOver(gs.ecs, gs.summary)

	gs.ecs.AddSystem(systems.NewUpdateGameOver(func() {
		gs.sceneChanger.ChangeScene(NewArenaScene(gs.sceneChanger))
	}))
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
