package systems

import (
	"log"

	"github.com/automoto/boomstick/components"
	cfg "github.com/automoto/boomstick/config"
	"github.com/yohamta/donburi"
)

func session(w donburi.World) (*components.SessionData, bool) {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// CurrentState reports the session state, and false if there is no session.
func CurrentState(w donburi.World) (cfg.GameStateID, bool) {
	s, ok := session(w)
	if !ok {
		return 0, false
	}
	return s.State, true
}

// RequestState asks the session to move to next once the frame ends. Only
// the first request of a session is kept.
func RequestState(w donburi.World, next cfg.GameStateID) bool {
	s, ok := session(w)
	if !ok {
		log.Printf("Warning: state %v requested without a session", next)
		return false
	}
	if s.HasNext {
		return false
	}
	s.Next = next
	s.HasNext = true
	log.Printf("Session transition requested: %v -> %v", s.State, next)
	return true
}

// PendingState returns the requested transition, if any.
func PendingState(w donburi.World) (cfg.GameStateID, bool) {
	s, ok := session(w)
	if !ok || !s.HasNext {
		return 0, false
	}
	return s.Next, true
}

// ApplyPendingState moves the session into the requested state and clears
// the request.
func ApplyPendingState(w donburi.World) (cfg.GameStateID, bool) {
	s, ok := session(w)
	if !ok || !s.HasNext {
		return 0, false
	}
	s.State = s.Next
	s.HasNext = false
	return s.State, true
}

func IsPaused(w donburi.World) bool {
	entry, ok := components.Pause.First(w)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).IsPaused
}

// TogglePause flips the pause state and returns the new value.
func TogglePause(w donburi.World) bool {
	entry, ok := components.Pause.First(w)
	if !ok {
		return false
	}
	pause := components.Pause.Get(entry)
	pause.IsPaused = !pause.IsPaused
	return pause.IsPaused
}
