package config

import (
	"image/color"
	"time"
)

// Config holds window and loop settings
type Config struct {
	Width  int
	Height int
	TPS    int // simulation ticks per second
}

// PlayerConfig contains all player lifecycle configuration values
type PlayerConfig struct {
	// Combat
	Health                  float64
	InvulnerabilityDuration time.Duration // grace period after an accepted hit

	// Death sequence
	DeathDelay      time.Duration // time from death to the end state
	DeathCameraDrop float64       // world units the view drops on death

	// Character controller
	MaxSpeed     float64
	Acceleration float64

	// Dimensions (arena units, top-down X/Z)
	CollisionWidth float64
	CollisionDepth float64
	EyeHeight      float64
	SpawnX, SpawnZ float64
}

// ArenaConfig describes the collision space the session is played in
type ArenaConfig struct {
	Width, Depth          int
	CellWidth, CellHeight int
	WallThickness         float64
}

// HazardConfig contains damage values for hazard sources
type HazardConfig struct {
	EnemyContactDamage float64
	ExplosionDamage    float64
	DebugDamage        float64 // damage dealt by the debug hurt key
}

// HUDConfig contains HUD rendering values
type HUDConfig struct {
	HealthBarWidth  float32
	HealthBarHeight float32
	HealthBarMargin float32
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA
	HurtFlashColor  color.RGBA
	HurtFlash       time.Duration

	ViewModelWidth  float32
	ViewModelHeight float32
	ViewModelColor  color.RGBA
	HorizonColor    color.RGBA
	PixelsPerUnit   float64 // screen pixels per world unit of camera height
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	StatsY          float64
	HintY           float64
	FadeSeconds     float32
}

// DebugConfig contains debug/testing options, overridable from the environment
type DebugConfig struct {
	SkipPersistence bool `env:"BOOMSTICK_SKIP_PERSISTENCE"`
	DamageKey       bool `env:"BOOMSTICK_DEBUG_DAMAGE"`
	TPS             int  `env:"BOOMSTICK_TPS"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Arena ArenaConfig
var Hazard HazardConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DarkRed      = color.RGBA{R: 90, G: 0, B: 0, A: 255}
	Gray         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		Health:                  100.0,
		InvulnerabilityDuration: 200 * time.Millisecond,

		DeathDelay:      2 * time.Second,
		DeathCameraDrop: 0.25,

		MaxSpeed:     15.0,
		Acceleration: 10.0,

		CollisionWidth: 1.0,
		CollisionDepth: 1.0,
		EyeHeight:      1.6,
		SpawnX:         32.0,
		SpawnZ:         32.0,
	}

	Arena = ArenaConfig{
		Width:         64,
		Depth:         64,
		CellWidth:     2,
		CellHeight:    2,
		WallThickness: 1.0,
	}

	Hazard = HazardConfig{
		EnemyContactDamage: 10.0,
		ExplosionDamage:    40.0,
		DebugDamage:        10.0,
	}

	HUD = HUDConfig{
		HealthBarWidth:  120,
		HealthBarHeight: 8,
		HealthBarMargin: 8,
		HealthBarBg:     DarkRed,
		HealthBarFg:     Red,
		HurtFlashColor:  color.RGBA{R: 255, G: 0, B: 0, A: 80},
		HurtFlash:       150 * time.Millisecond,

		ViewModelWidth:  96,
		ViewModelHeight: 64,
		ViewModelColor:  Gray,
		HorizonColor:    color.RGBA{R: 60, G: 60, B: 60, A: 255},
		PixelsPerUnit:   100,
	}

	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{R: 20, G: 0, B: 0, A: 255},
		TitleColor:      Red,
		TextColor:       White,
		TitleY:          140,
		StatsY:          190,
		HintY:           260,
		FadeSeconds:     1.5,
	}

	Debug = DebugConfig{
		SkipPersistence: false,
		DamageKey:       true,
	}
}
