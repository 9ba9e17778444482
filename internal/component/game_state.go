// internal/component/game_state.go
package component

import "fmt"

// Phase is the session's position in the level state machine.
type Phase int

const (
	PhaseAiming        Phase = iota // current bird waits in the launcher
	PhaseInFlight                   // at least one bird is launched
	PhaseBirdSpent                  // the queue just ran empty
	PhaseLevelComplete              // every block destroyed, next layout loading
	PhaseHalted                     // no further layout, session stopped
)

func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "aiming"
	case PhaseInFlight:
		return "in_flight"
	case PhaseBirdSpent:
		return "bird_spent"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseHalted:
		return "halted"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	for c := PhaseAiming; c <= PhaseHalted; c++ {
		if c.String() == string(text) {
			*p = c
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}
