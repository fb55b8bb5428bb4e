package domain

import "time"

// RunState holds the mutable counters for a transmission run. It is owned
// exclusively by the controller; other components only ever see a Snapshot.
type RunState struct {
	// CycleSent is the number of frames sent in the current cycle.
	CycleSent int

	// TotalSent is the number of frames sent since the run started.
	TotalSent int

	// Cycles is the number of completed passes over the frame set.
	Cycles int

	// Started marks the beginning of the run. Elapsed time derives from it
	// via time.Since, which uses the monotonic clock reading.
	Started time.Time

	// LastSend is the wall-clock time of the most recent send, for display.
	LastSend time.Time
}

// Snapshot is an immutable copy of the run counters at one point in time,
// handed to reporters on every event.
type Snapshot struct {
	CycleSent  int
	TotalSent  int
	Cycles     int
	FrameCount int
	Started    time.Time
	LastSend   time.Time
}

// Snapshot captures the current counters. frameCount is the size of the
// frame set the cycle progress fraction is computed against.
func (r *RunState) Snapshot(frameCount int) Snapshot {
	return Snapshot{
		CycleSent:  r.CycleSent,
		TotalSent:  r.TotalSent,
		Cycles:     r.Cycles,
		FrameCount: frameCount,
		Started:    r.Started,
		LastSend:   r.LastSend,
	}
}

// Elapsed returns the time since the run started.
func (s Snapshot) Elapsed() time.Duration {
	return time.Since(s.Started)
}

// Rate returns the average send rate in frames per second since the run
// started. It is derived on demand, never stored or smoothed.
func (s Snapshot) Rate() float64 {
	secs := s.Elapsed().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.TotalSent) / secs
}

// Progress returns the fraction of the current cycle already sent, in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.FrameCount == 0 {
		return 0
	}
	return float64(s.CycleSent) / float64(s.FrameCount)
}
