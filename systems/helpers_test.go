package systems

import (
	"testing"
	"time"

	"github.com/automoto/boomstick/components"
	"github.com/automoto/boomstick/events"
	"github.com/automoto/boomstick/systems/factory"
	"github.com/automoto/boomstick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type testWorld struct {
	ecs       *ecs.ECS
	player    *donburi.Entry
	camera    *donburi.Entry
	viewModel *donburi.Entry
	deaths    []int // frames a PlayerDeath was delivered on
}

func newTestWorld(t *testing.T, step time.Duration) *testWorld {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, step)
	factory.CreateSpace(e, 64, 64, 2, 2)
	camera := factory.CreateCamera(e, 10, 10)
	player := factory.CreatePlayer(e, 10, 10)

	vm, ok := tags.ViewModel.First(e.World)
	if !ok {
		t.Fatal("player spawned without a view model")
	}

	tw := &testWorld{ecs: e, player: player, camera: camera, viewModel: vm}

	SubscribeLifecycleEvents(e.World)
	events.PlayerDeathEvent.Subscribe(e.World, func(w donburi.World, _ events.PlayerDeath) {
		tw.deaths = append(tw.deaths, tw.frame())
	})
	NewGameplaySchedule(nil).Register(e)

	return tw
}

func (tw *testWorld) step() {
	tw.ecs.Update()
}

func (tw *testWorld) frame() int {
	entry, _ := components.Clock.First(tw.ecs.World)
	return components.Clock.Get(entry).Frame
}

func (tw *testWorld) health() *components.HealthData {
	return components.Health.Get(tw.player)
}

func (tw *testWorld) lifecycle() *components.PlayerData {
	return components.Player.Get(tw.player)
}

func (tw *testWorld) cameraY() float64 {
	return components.Transform.Get(tw.camera).Position.Y
}

func (tw *testWorld) viewModelVisible() bool {
	return components.Visibility.Get(tw.viewModel).Visible
}
