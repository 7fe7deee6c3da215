package server

// State is a step of the server lifecycle.
// Transitions only move forward: Starting -> Listening -> Stopped.
type State int32

const (
	StateStarting State = iota
	StateListening
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateListening:
		return "listening"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
