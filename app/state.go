package app

// State represents the current application state. Requests stay in
// flight across states; only the visible surface changes.
type State int

const (
	StateConnecting State = iota // Waiting for backend health check
	StateIdle                    // Chat view, ready for input
	StateHistory                 // Conversation picker overlay
	StateSystem                  // System info panel
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateIdle:
		return "idle"
	case StateHistory:
		return "history"
	case StateSystem:
		return "system"
	default:
		return "unknown"
	}
}
