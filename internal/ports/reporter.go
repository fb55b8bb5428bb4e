package ports

import "github.com/bft-labs/framepump/internal/domain"

// Reporter consumes transmission events. Events are delivered synchronously
// from the controller loop in emission order, so implementations must do
// bounded work: a slow reporter directly delays transmission.
type Reporter interface {
	// FrameSent is called after each successful write with the frame that
	// went out and the counters as of that send.
	FrameSent(frame domain.Frame, snap domain.Snapshot)

	// CycleCompleted is called once after the last frame of each full pass.
	CycleCompleted(snap domain.Snapshot)
}

// NopReporter discards all events.
type NopReporter struct{}

// FrameSent discards the event.
func (NopReporter) FrameSent(domain.Frame, domain.Snapshot) {}

// CycleCompleted discards the event.
func (NopReporter) CycleCompleted(domain.Snapshot) {}
