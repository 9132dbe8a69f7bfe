package systems

import (
	"cmp"
	"slices"

	"github.com/yohamta/donburi/ecs"
)

// Stage orders systems within a frame. donburi runs systems in the order
// they were added, so Register sorts by stage before adding them.
type Stage int

const (
	StageClock Stage = iota
	StageInput
	StageTimers
	StageDamage
	StageLifecycle
	StageReaction
	StagePresentation
)

type scheduledSystem struct {
	stage  Stage
	name   string
	system ecs.System
}

type Schedule struct {
	systems []scheduledSystem
}

func NewSchedule() *Schedule {
	return &Schedule{}
}

// Add appends a system to stage. Systems in the same stage keep the order
// they were added in.
func (s *Schedule) Add(stage Stage, name string, system ecs.System) *Schedule {
	s.systems = append(s.systems, scheduledSystem{stage: stage, name: name, system: system})
	return s
}

func (s *Schedule) ordered() []scheduledSystem {
	out := slices.Clone(s.systems)
	slices.SortStableFunc(out, func(a, b scheduledSystem) int {
		return cmp.Compare(a.stage, b.stage)
	})
	return out
}

// Names lists the systems in execution order.
func (s *Schedule) Names() []string {
	ordered := s.ordered()
	names := make([]string, len(ordered))
	for i, sys := range ordered {
		names[i] = sys.name
	}
	return names
}

func (s *Schedule) Register(e *ecs.ECS) {
	for _, sys := range s.ordered() {
		e.AddSystem(sys.system)
	}
}

// NewGameplaySchedule is the frame for an in-game session. Damage is
// resolved before the death check reads Health, and the death notification
// is published before the event stage delivers it. input may be nil.
func NewGameplaySchedule(input InputSource) *Schedule {
	s := NewSchedule().
		Add(StageClock, "clock", UpdateClock).
		Add(StageTimers, "player-timers", WithGameplayChecks(UpdatePlayer)).
		Add(StageDamage, "hazard-contacts", WithGameplayChecks(UpdateHazardContacts)).
		Add(StageDamage, "combat", WithGameplayChecks(UpdateCombat)).
		Add(StageLifecycle, "player-death", WithGameplayChecks(UpdatePlayerDeath)).
		Add(StageReaction, "events", UpdateEvents).
		Add(StagePresentation, "objects", WithGameplayChecks(UpdateObjects)).
		Add(StagePresentation, "hud", UpdateHUD)

	if input != nil {
		s.Add(StageInput, "input", NewUpdateInput(input))
	}
	return s
}
