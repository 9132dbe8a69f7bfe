package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
	"github.com/automoto/boomstick/systems"
	"github.com/automoto/boomstick/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the in-game session. Its world owns every piece of session
// state, so leaving the scene tears all of it down.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	next, ok := systems.ApplyPendingState(as.ecs.World)
	if !ok || next != cfg.GameStateEnd {
		return
	}

	var stats components.StatsData
	if entry, found := components.Stats.First(as.ecs.World); found {
		stats = *components.Stats.Get(entry)
	}
	summary := systems.RecordSession(stats)
	as.sceneChanger.ChangeScene(NewGameOverScene(as.sceneChanger, summary))
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecs = NewArenaWorld(systems.KeyboardInput{})

	as.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	as.ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
}

// NewArenaWorld builds a session world: entities, event subscriptions and
// the ordered gameplay schedule. input may be nil.
func NewArenaWorld(input systems.InputSource) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateSessionAtRate(e, cfg.C.TPS)
	factory.CreateSpace(e, cfg.Arena.Width, cfg.Arena.Depth, cfg.Arena.CellWidth, cfg.Arena.CellHeight)
	factory.CreateArenaWalls(e, float64(cfg.Arena.Width), float64(cfg.Arena.Depth), cfg.Arena.WallThickness)

	factory.CreateCamera(e, cfg.Player.SpawnX, cfg.Player.SpawnZ)
	factory.CreatePlayer(e, cfg.Player.SpawnX, cfg.Player.SpawnZ)

	factory.CreateHazard(e, components.GroupEnemy, 12, 12, 1, 1, cfg.Hazard.EnemyContactDamage)
	factory.CreateHazard(e, components.GroupEnemy, 50, 20, 1, 1, cfg.Hazard.EnemyContactDamage)
	factory.CreateHazard(e, components.GroupExplosion, 40, 48, 3, 3, cfg.Hazard.ExplosionDamage)

	systems.SubscribeLifecycleEvents(e.World)
	systems.NewGameplaySchedule(input).Register(e)

	return e
}
