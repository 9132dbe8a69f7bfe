package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/boomstick/archetypes"
	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
	"github.com/automoto/boomstick/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// CreateGameOver spawns the end screen state with its fade-in.
func CreateGameOver(e *ecs.ECS, summary components.SessionSummary) *components.GameOverData {
	entry := archetypes.GameOver.Spawn(e)
	components.GameOver.SetValue(entry, components.GameOverData{
		Fade:    gween.New(0, 1, cfg.GameOver.FadeSeconds, ease.OutQuad),
		Summary: summary,
	})
	return components.GameOver.Get(entry)
}

// NewUpdateGameOver creates the end screen system. restart is called when
// the player asks for a new session.
func NewUpdateGameOver(restart func()) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.GameOver.First(e.World)
		if !ok {
			return
		}
		gameOver := components.GameOver.Get(entry)
		if gameOver.Fade != nil {
			gameOver.Opacity, _ = gameOver.Fade.Update(float32(cfg.FrameStep().Seconds()))
		}

		if gameOver.Opacity >= 1 && (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
			restart()
		}
	}
}

// DrawGameOver renders the end screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		return
	}
	gameOver := components.GameOver.Get(entry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.BackgroundColor, false)

	titleColor := fade(cfg.GameOver.TitleColor, gameOver.Opacity)
	title := "YOU DIED"
	titleX := int((width - float64(len(title)*20)) / 2)
	text.Draw(screen, title, fonts.Title.Get(), titleX, int(cfg.GameOver.TitleY), titleColor)

	lines := summaryLines(gameOver.Summary)
	for i, line := range lines {
		x := int((width - float64(len(line)*8)) / 2)
		text.Draw(screen, line, fonts.Regular.Get(), x, int(cfg.GameOver.StatsY)+i*20, cfg.GameOver.TextColor)
	}

	if gameOver.Opacity >= 1 {
		hint := "Enter: Try Again"
		x := int((width - float64(len(hint)*7)) / 2)
		text.Draw(screen, hint, fonts.Small.Get(), x, int(cfg.GameOver.HintY), cfg.GameOver.TextColor)
	}
}

func summaryLines(s components.SessionSummary) []string {
	lines := []string{fmt.Sprintf("Survived %.1fs", s.SurvivedFor)}
	if s.NewBest {
		lines = append(lines, "New best!")
	} else if s.BestSurvival > 0 {
		lines = append(lines, fmt.Sprintf("Best %.1fs", s.BestSurvival))
	}
	return append(lines, fmt.Sprintf("Deaths %d", s.TotalDeaths))
}

// fade scales a premultiplied color by opacity.
func fade(c color.RGBA, opacity float32) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float32(v) * opacity) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
