package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HUDData struct {
	HurtFlash Timer
}

var HUD = donburi.NewComponentType[HUDData]()

// GameOverData is the end screen's state: a fade-in and the run summary.
type GameOverData struct {
	Fade    *gween.Tween
	Opacity float32 // 0..1
	Summary SessionSummary
}

// SessionSummary is what the end screen reports about the finished session.
type SessionSummary struct {
	Deaths       int
	SurvivedFor  float64 // seconds
	TotalDeaths  int
	BestSurvival float64 // seconds
	NewBest      bool
}

var GameOver = donburi.NewComponentType[GameOverData]()
