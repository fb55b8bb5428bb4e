package app

import (
	"errors"
	"testing"

	"github.com/bft-labs/framepump/internal/domain"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "Idle"},
		{StateRunning, "Running"},
		{StateStopping, "Stopping"},
		{StateStopped, "Stopped"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %s, want %s", tt.state, got, tt.want)
		}
	}
}

func TestLifecycle_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    State
		to      State
		wantErr bool
	}{
		{"idle to running", StateIdle, StateRunning, false},
		{"running to stopping", StateRunning, StateStopping, false},
		{"running to stopped", StateRunning, StateStopped, false},
		{"stopping to stopped", StateStopping, StateStopped, false},
		{"idle to stopping", StateIdle, StateStopping, true},
		{"idle to stopped", StateIdle, StateStopped, true},
		{"running to running", StateRunning, StateRunning, true},
		{"stopping to running", StateStopping, StateRunning, true},
		{"stopped is terminal", StateStopped, StateRunning, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLifecycle()
			l.state = tt.from

			err := l.TransitionTo(tt.to)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidState) {
					t.Errorf("TransitionTo() error = %v, want ErrInvalidState", err)
				}
				if l.State() != tt.from {
					t.Errorf("state changed on invalid transition: %v", l.State())
				}
				return
			}
			if err != nil {
				t.Errorf("TransitionTo() error = %v", err)
			}
			if l.State() != tt.to {
				t.Errorf("state = %v, want %v", l.State(), tt.to)
			}
		})
	}
}

func TestLifecycle_Stopping(t *testing.T) {
	l := NewLifecycle()
	if l.Stopping() {
		t.Error("Stopping() = true for Idle")
	}
	l.state = StateRunning
	if l.Stopping() {
		t.Error("Stopping() = true for Running")
	}
	l.state = StateStopping
	if !l.Stopping() {
		t.Error("Stopping() = false for Stopping")
	}
	l.state = StateStopped
	if !l.Stopping() {
		t.Error("Stopping() = false for Stopped")
	}
}
