package systems

import (
	cfg "github.com/automoto/boomstick/config"
	"github.com/yohamta/donburi/ecs"
)

// Condition is evaluated right before the system it guards.
type Condition func(ecs *ecs.ECS) bool

// InState holds while the session is in state.
func InState(state cfg.GameStateID) Condition {
	return func(ecs *ecs.ECS) bool {
		current, ok := CurrentState(ecs.World)
		return ok && current == state
	}
}

func Unpaused(ecs *ecs.ECS) bool {
	return !IsPaused(ecs.World)
}

func And(conds ...Condition) Condition {
	return func(ecs *ecs.ECS) bool {
		for _, c := range conds {
			if !c(ecs) {
				return false
			}
		}
		return true
	}
}

// RunIf wraps a system so it only runs while cond holds.
func RunIf(cond Condition, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !cond(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks runs system only in an unpaused, in-game session.
func WithGameplayChecks(system ecs.System) ecs.System {
	return RunIf(And(InState(cfg.GameStateInGame), Unpaused), system)
}
