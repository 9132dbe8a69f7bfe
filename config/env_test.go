package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadEnvOverrides(t *testing.T) {
	prevDebug, prevTPS := Debug, C.TPS
	t.Cleanup(func() {
		Debug = prevDebug
		C.TPS = prevTPS
	})

	t.Setenv("BOOMSTICK_SKIP_PERSISTENCE", "true")
	t.Setenv("BOOMSTICK_TPS", "30")

	if err := LoadEnv(); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if !Debug.SkipPersistence {
		t.Fatalf("expected SkipPersistence from env")
	}
	if C.TPS != 30 {
		t.Fatalf("expected TPS 30, got %d", C.TPS)
	}
	if got := FrameStep(); got != time.Second/30 {
		t.Fatalf("expected step %v, got %v", time.Second/30, got)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	prevDebug := Debug
	t.Cleanup(func() { Debug = prevDebug })

	t.Setenv("BOOMSTICK_TPS", "fast")

	err := LoadEnv()
	if err == nil {
		t.Fatal("expected error for non-numeric TPS")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected wrapped parse error, got %v", err)
	}
}

func TestLifecycleDefaults(t *testing.T) {
	if Player.InvulnerabilityDuration != 200*time.Millisecond {
		t.Fatalf("invulnerability duration = %v", Player.InvulnerabilityDuration)
	}
	if Player.DeathDelay != 2*time.Second {
		t.Fatalf("death delay = %v", Player.DeathDelay)
	}
	if Player.DeathCameraDrop != 0.25 {
		t.Fatalf("camera drop = %v", Player.DeathCameraDrop)
	}
	if Player.Health != 100 {
		t.Fatalf("health = %v", Player.Health)
	}
}
