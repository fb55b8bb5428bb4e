package app

import (
	"sync"

	"github.com/bft-labs/framepump/internal/domain"
)

// State represents the lifecycle state of a transmission run.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopping
	StateStopped
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Lifecycle manages the state machine for a run. Transitions flow
// Idle → Running → Stopping → Stopped; Stopped is terminal.
type Lifecycle struct {
	mu    sync.RWMutex
	state State
}

// NewLifecycle creates a lifecycle in the Idle state.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{state: StateIdle}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// TransitionTo attempts to move to a new state. It returns
// domain.ErrInvalidState for transitions the machine does not allow.
func (l *Lifecycle) TransitionTo(newState State) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	valid := false
	switch l.state {
	case StateIdle:
		valid = newState == StateRunning
	case StateRunning:
		// Stopped directly is allowed for the write-failure path.
		valid = newState == StateStopping || newState == StateStopped
	case StateStopping:
		valid = newState == StateStopped
	case StateStopped:
		valid = false
	}
	if !valid {
		return domain.ErrInvalidState
	}

	l.state = newState
	return nil
}

// Stopping reports whether a stop has been requested or completed. The loop
// checks this at every suspension point.
func (l *Lifecycle) Stopping() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateStopping || l.state == StateStopped
}
