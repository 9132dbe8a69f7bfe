package systems

import (
	"testing"
	"time"

	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
)

func TestDeathScenario(t *testing.T) {
	tw := newTestWorld(t, 500*time.Millisecond)
	standing := cfg.Player.EyeHeight
	dropped := cfg.Player.EyeHeight - cfg.Player.DeathCameraDrop

	for frame := 1; frame <= 15; frame++ {
		if frame == 11 {
			// Lethal hit resolved this frame, before the death check runs.
			QueueDamage(tw.player, 1000)
		}
		tw.step()

		if got := tw.frame(); got != frame {
			t.Fatalf("clock frame %d, expected %d", got, frame)
		}

		next, requested := PendingState(tw.ecs.World)
		switch {
		case frame < 15 && requested:
			t.Fatalf("frame %d: end state requested early", frame)
		case frame == 15 && (!requested || next != cfg.GameStateEnd):
			t.Fatalf("frame 15: expected end state request, got %v %v", next, requested)
		}

		if frame < 11 {
			if len(tw.deaths) != 0 {
				t.Fatalf("frame %d: unexpected death notification", frame)
			}
			if !tw.viewModelVisible() || tw.cameraY() != standing {
				t.Fatalf("frame %d: presentation changed before death", frame)
			}
			continue
		}

		if len(tw.deaths) != 1 || tw.deaths[0] != 11 {
			t.Fatalf("frame %d: expected one notification on frame 11, got %v", frame, tw.deaths)
		}
		if tw.viewModelVisible() {
			t.Fatalf("frame %d: view model should be hidden", frame)
		}
		if tw.cameraY() != dropped {
			t.Fatalf("frame %d: camera at %v, expected %v", frame, tw.cameraY(), dropped)
		}
	}

	if tw.lifecycle().Phase != components.PhaseEndRequested {
		t.Fatalf("expected phase EndRequested, got %v", tw.lifecycle().Phase)
	}
}

func TestDeathNotificationFiresOnce(t *testing.T) {
	cases := []struct {
		name       string
		deadFrames int
	}{
		{"one_frame", 1},
		{"two_frames", 2},
		{"many_frames", 30},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tw := newTestWorld(t, 16*time.Millisecond)
			tw.step()
			tw.step()

			tw.health().Dead = true
			first := tw.frame() + 1
			for i := 0; i < c.deadFrames; i++ {
				tw.step()
			}

			if len(tw.deaths) != 1 {
				t.Fatalf("expected exactly one notification, got %d", len(tw.deaths))
			}
			if tw.deaths[0] != first {
				t.Fatalf("expected notification on frame %d, got %d", first, tw.deaths[0])
			}
		})
	}
}

func TestDeathLatchSurvivesRevive(t *testing.T) {
	tw := newTestWorld(t, 500*time.Millisecond)

	tw.health().Dead = true
	tw.step()
	tw.step()
	held := tw.lifecycle().DeathTimer.Elapsed()

	// Something outside the lifecycle revives the player.
	tw.health().Dead = false
	tw.health().Current = tw.health().Max
	for i := 0; i < 10; i++ {
		tw.step()
	}

	if !tw.lifecycle().Dead {
		t.Fatal("dead latch must never reset")
	}
	if got := tw.lifecycle().DeathTimer.Elapsed(); got != held {
		t.Fatalf("death timer should hold while Health reports alive: %v -> %v", held, got)
	}
	if _, requested := PendingState(tw.ecs.World); requested {
		t.Fatal("no end request while the death timer is held")
	}

	tw.health().Dead = true
	for i := 0; i < 10; i++ {
		tw.step()
	}
	if len(tw.deaths) != 1 {
		t.Fatalf("a second death must not notify again, got %d notifications", len(tw.deaths))
	}
}

func TestDeathDelay(t *testing.T) {
	cases := []struct {
		name        string
		step        time.Duration
		framesAfter int // frames after the detection frame until the request
	}{
		{"half_second", 500 * time.Millisecond, 4},
		{"uneven", 300 * time.Millisecond, 7},
		{"seven_tenths", 700 * time.Millisecond, 3},
		{"whole_delay", 2 * time.Second, 1},
		{"overshoot", 3 * time.Second, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tw := newTestWorld(t, c.step)
			tw.health().Dead = true
			tw.step() // detection frame

			for i := 1; i <= c.framesAfter; i++ {
				tw.step()
				_, requested := PendingState(tw.ecs.World)
				if i < c.framesAfter && requested {
					t.Fatalf("requested after %d frames, expected %d", i, c.framesAfter)
				}
				if i == c.framesAfter && !requested {
					t.Fatalf("not requested after %d frames", i)
				}
			}
		})
	}
}

func TestDeathPhases(t *testing.T) {
	tw := newTestWorld(t, 500*time.Millisecond)

	tw.step()
	if p := tw.lifecycle().Phase; p != components.PhaseAlive {
		t.Fatalf("expected Alive, got %v", p)
	}

	tw.health().Dead = true
	tw.step()
	if p := tw.lifecycle().Phase; p != components.PhaseDyingFirstFrame {
		t.Fatalf("expected DyingFirstFrame, got %v", p)
	}
	if tw.lifecycle().DeathTimer.Elapsed() != 0 {
		t.Fatal("death timer must not advance on the detection frame")
	}

	tw.step()
	if p := tw.lifecycle().Phase; p != components.PhaseDying {
		t.Fatalf("expected Dying, got %v", p)
	}
}

func TestBroadcasterIdleWithoutNotification(t *testing.T) {
	tw := newTestWorld(t, 16*time.Millisecond)
	y := tw.cameraY()

	for i := 0; i < 200; i++ {
		tw.step()
		UpdateEvents(tw.ecs)
	}

	if !tw.viewModelVisible() {
		t.Fatal("view model hidden without a death")
	}
	if tw.cameraY() != y {
		t.Fatalf("camera moved without a death: %v -> %v", y, tw.cameraY())
	}
}

func TestNotificationNotRedelivered(t *testing.T) {
	tw := newTestWorld(t, 16*time.Millisecond)
	tw.health().Dead = true
	tw.step()
	dropped := tw.cameraY()

	for i := 0; i < 20; i++ {
		tw.step()
		UpdateEvents(tw.ecs)
	}

	if tw.cameraY() != dropped {
		t.Fatalf("camera dropped again after the death frame: %v -> %v", dropped, tw.cameraY())
	}
}

func TestPauseHoldsDeathSequence(t *testing.T) {
	tw := newTestWorld(t, 500*time.Millisecond)
	tw.health().Dead = true
	tw.step()

	TogglePause(tw.ecs.World)
	for i := 0; i < 10; i++ {
		tw.step()
	}
	if _, requested := PendingState(tw.ecs.World); requested {
		t.Fatal("death sequence advanced while paused")
	}

	TogglePause(tw.ecs.World)
	for i := 0; i < 4; i++ {
		tw.step()
	}
	if _, requested := PendingState(tw.ecs.World); !requested {
		t.Fatal("expected end request after unpausing")
	}
}

func TestDeathStatsRecorded(t *testing.T) {
	tw := newTestWorld(t, 500*time.Millisecond)
	for i := 0; i < 6; i++ {
		tw.step()
	}
	tw.health().Dead = true
	tw.step()

	entry, _ := components.Stats.First(tw.ecs.World)
	stats := components.Stats.Get(entry)
	if stats.Deaths != 1 {
		t.Fatalf("expected 1 death, got %d", stats.Deaths)
	}
	if stats.SurvivedFor != 3.5 {
		t.Fatalf("expected 3.5s survived, got %v", stats.SurvivedFor)
	}
}
