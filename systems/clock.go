package systems

import (
	"time"

	"github.com/automoto/boomstick/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock. It must be the first system of the
// frame; everything else reads FrameDelta. While paused the frame covers no
// time.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	components.Clock.Get(entry).Advance(IsPaused(ecs.World))
}

// FrameDelta returns the time covered by the current frame.
func FrameDelta(w donburi.World) time.Duration {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}
