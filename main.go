package main

import (
	"log"

	cfg "github.com/automoto/boomstick/config"
	"github.com/automoto/boomstick/fonts"
	"github.com/automoto/boomstick/scenes"
	"github.com/automoto/boomstick/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{}
	g.scene = scenes.NewArenaScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	if !cfg.Debug.SkipPersistence {
		if err := systems.InitPersistence(); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
	}

	ebiten.SetTPS(cfg.C.TPS)
	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle("boomstick")

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
