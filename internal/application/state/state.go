package state

// RunState represents the current state of a board run
type RunState int

const (
	StateRunning RunState = iota
	StatePaused
	StateFinished
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Toggle flips between Running and Paused. Finished stays Finished.
func (s RunState) Toggle() RunState {
	switch s {
	case StateRunning:
		return StatePaused
	case StatePaused:
		return StateRunning
	default:
		return s
	}
}

// Advancing reports whether the simulation should be stepped.
func (s RunState) Advancing() bool {
	return s == StateRunning
}
