package systems

import (
	"testing"
	"time"

	"github.com/automoto/boomstick/components"
	"github.com/automoto/boomstick/systems/factory"
)

func TestHazardContacts(t *testing.T) {
	cases := []struct {
		name   string
		spawn  func(tw *testWorld)
		damage float64
	}{
		{
			name:  "nothing_nearby",
			spawn: func(tw *testWorld) {},
		},
		{
			name: "wall_overlap_is_not_a_hit",
			spawn: func(tw *testWorld) {
				factory.CreateWall(tw.ecs, 10, 10, 1, 1)
			},
		},
		{
			name: "enemy_contact",
			spawn: func(tw *testWorld) {
				factory.CreateHazard(tw.ecs, components.GroupEnemy, 10, 10, 1, 1, 10)
			},
			damage: 10,
		},
		{
			name: "enemy_and_explosion",
			spawn: func(tw *testWorld) {
				factory.CreateHazard(tw.ecs, components.GroupEnemy, 10, 10, 1, 1, 10)
				factory.CreateHazard(tw.ecs, components.GroupExplosion, 10, 10, 1, 1, 40)
			},
			damage: 50,
		},
		{
			name: "far_explosion",
			spawn: func(tw *testWorld) {
				factory.CreateHazard(tw.ecs, components.GroupExplosion, 50, 50, 1, 1, 40)
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tw := newTestWorld(t, 16*time.Millisecond)
			c.spawn(tw)

			UpdateHazardContacts(tw.ecs)

			if c.damage == 0 {
				if tw.player.HasComponent(components.DamageEvent) {
					t.Fatalf("unexpected damage %v", components.DamageEvent.Get(tw.player).Amount)
				}
				return
			}
			if !tw.player.HasComponent(components.DamageEvent) {
				t.Fatal("expected queued damage")
			}
			if got := components.DamageEvent.Get(tw.player).Amount; got != c.damage {
				t.Fatalf("expected damage %v, got %v", c.damage, got)
			}
		})
	}
}

func TestHazardKillsThroughFullFrame(t *testing.T) {
	tw := newTestWorld(t, 100*time.Millisecond)
	factory.CreateHazard(tw.ecs, components.GroupExplosion, 10, 10, 1, 1, 60)

	tw.step()
	if got := tw.health().Current; got != 40 {
		t.Fatalf("expected 40 hp after first contact, got %v", got)
	}

	for i := 0; i < 3 && len(tw.deaths) == 0; i++ {
		tw.step()
	}
	if len(tw.deaths) != 1 {
		t.Fatal("standing in the explosion should kill the player")
	}
}
