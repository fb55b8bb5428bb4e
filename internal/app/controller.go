// Package app contains the transmission loop and its lifecycle state machine.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bft-labs/framepump/internal/delay"
	"github.com/bft-labs/framepump/internal/domain"
	"github.com/bft-labs/framepump/internal/ports"
	"github.com/bft-labs/framepump/pkg/log"
)

// Mode selects whether the loop stops after one pass or repeats.
type Mode int

const (
	// Continuous repeats passes over the frame set until Stop.
	Continuous Mode = iota

	// SinglePass stops after one complete pass.
	SinglePass
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case SinglePass:
		return "single-pass"
	default:
		return "unknown"
	}
}

// pauseCheckInterval is how often a paused loop re-checks for resume or stop.
const pauseCheckInterval = 100 * time.Millisecond

// TransmissionError reports a mid-run write failure with the position at
// which it occurred. It unwraps to the transport's error.
type TransmissionError struct {
	FrameIndex int // 0-based index into the frame set
	Cycle      int // 1-based cycle in which the failure occurred
	Err        error
}

// Error implements the error interface.
func (e *TransmissionError) Error() string {
	return fmt.Sprintf("transmission failed at frame %d of cycle %d: %v", e.FrameIndex, e.Cycle, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransmissionError) Unwrap() error {
	return e.Err
}

// Controller drives repeated transmission of a frame set over a transport.
// It owns the transport and the run counters exclusively for the run's
// duration; reporters only ever see counter snapshots.
//
// A Controller runs at most once. The loop is cooperative: the inter-frame
// wait and the pause poll are the suspension points where Stop and context
// cancellation are observed, so stopping completes with at most one
// in-flight frame still going out.
type Controller struct {
	policy    *delay.Policy
	transport ports.Transport
	reporter  ports.Reporter
	logger    log.Logger

	mu     sync.Mutex
	frames domain.FrameSet
	next   domain.FrameSet // staged by Swap, applied at the cycle boundary
	state  domain.RunState
	paused bool

	lifecycle *Lifecycle
	stopOnce  sync.Once
	stopCh    chan struct{}
}

// NewController creates a controller over the given frame set and
// collaborators. A nil policy selects delay.Default; a nil reporter or
// logger is replaced with a no-op.
func NewController(frames domain.FrameSet, policy *delay.Policy, transport ports.Transport, reporter ports.Reporter, logger log.Logger) *Controller {
	if policy == nil {
		policy = delay.Default()
	}
	if reporter == nil {
		reporter = ports.NopReporter{}
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Controller{
		policy:    policy,
		transport: transport,
		reporter:  reporter,
		logger:    logger,
		frames:    frames,
		lifecycle: NewLifecycle(),
		stopCh:    make(chan struct{}),
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.lifecycle.State()
}

// Snapshot returns the run counters as of now.
func (c *Controller) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Snapshot(len(c.frames))
}

// Stop requests the loop to end. It is safe to call from any goroutine,
// including a signal handler, and is idempotent. The loop observes the
// request at its next suspension point; no frame write is interrupted.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		// The transition fails when the run already ended; the closed
		// channel still ensures Run never starts another wait.
		if err := c.lifecycle.TransitionTo(StateStopping); err == nil {
			c.logger.Info("stop requested")
		}
		close(c.stopCh)
	})
}

// Pause suspends transmission after the in-flight frame. Elapsed time keeps
// accumulating while paused; the rate is cumulative by design.
func (c *Controller) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
	c.logger.Info("paused")
}

// Resume continues a paused run.
func (c *Controller) Resume() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
	c.logger.Info("resumed")
}

// Swap stages a replacement frame set, applied at the next cycle boundary.
// Mid-cycle frame order is never disturbed.
func (c *Controller) Swap(frames domain.FrameSet) {
	c.mu.Lock()
	c.next = frames
	c.mu.Unlock()
	c.logger.Info("frame set staged for reload", log.Int("frames", len(frames)))
}

// Run executes the transmission loop until a pass completes (SinglePass),
// Stop is called, the context is canceled, or a write fails. It returns
// domain.ErrInvalidState when called on a controller that is not idle, a
// *TransmissionError on write failure, and nil on clean completion or stop.
func (c *Controller) Run(ctx context.Context, mode Mode) error {
	if err := c.lifecycle.TransitionTo(StateRunning); err != nil {
		return err
	}

	c.mu.Lock()
	c.state.Started = time.Now()
	frames := c.frames
	c.mu.Unlock()

	c.logger.Info("run started",
		log.String("mode", mode.String()),
		log.Int("frames", len(frames)),
	)

	for {
		for i, frame := range frames {
			if err := c.await(ctx, c.policy.For(frame)); err != nil {
				return c.finish(err)
			}

			if err := c.transport.Write(frame.Bytes()); err != nil {
				c.mu.Lock()
				cycle := c.state.Cycles + 1
				c.mu.Unlock()
				terr := &TransmissionError{FrameIndex: i, Cycle: cycle, Err: err}
				c.logger.Error("write failed",
					log.Int("frame", i),
					log.Int("cycle", cycle),
					log.Err(err),
				)
				return c.finish(terr)
			}

			c.mu.Lock()
			c.state.CycleSent++
			c.state.TotalSent++
			c.state.LastSend = time.Now()
			snap := c.state.Snapshot(len(frames))
			c.mu.Unlock()

			c.reporter.FrameSent(frame, snap)
		}

		c.mu.Lock()
		c.state.Cycles++
		snap := c.state.Snapshot(len(frames))
		c.state.CycleSent = 0
		c.mu.Unlock()

		c.reporter.CycleCompleted(snap)

		if mode == SinglePass {
			return c.finish(nil)
		}

		// Cycle boundary: apply a staged frame set, if any.
		c.mu.Lock()
		if c.next != nil {
			c.frames = c.next
			c.next = nil
			frames = c.frames
			c.logger.Info("frame set reloaded", log.Int("frames", len(frames)))
		}
		c.mu.Unlock()
	}
}

// await sleeps for the frame's delay, honoring pause, stop and context
// cancellation. A nil return means the loop may proceed to the write.
func (c *Controller) await(ctx context.Context, d time.Duration) error {
	for c.isPaused() {
		if err := c.sleep(ctx, pauseCheckInterval); err != nil {
			return err
		}
	}
	return c.sleep(ctx, d)
}

func (c *Controller) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.stopCh:
		return errStopRequested
	case <-timer.C:
		return nil
	}
}

func (c *Controller) isPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// errStopRequested is internal to the loop; finish converts it to a clean
// nil return.
var errStopRequested = errors.New("stop requested")

// finish drives the lifecycle to Stopped and maps internal stop signals to
// a clean result.
func (c *Controller) finish(err error) error {
	switch c.lifecycle.State() {
	case StateRunning:
		// Single pass completed, write failed, or ctx canceled without Stop.
		_ = c.lifecycle.TransitionTo(StateStopping)
		_ = c.lifecycle.TransitionTo(StateStopped)
	case StateStopping:
		_ = c.lifecycle.TransitionTo(StateStopped)
	}

	if errors.Is(err, errStopRequested) {
		err = nil
	}

	snap := c.Snapshot()
	c.logger.Info("run finished",
		log.Int("total_sent", snap.TotalSent),
		log.Int("cycles", snap.Cycles),
		log.Duration("elapsed", snap.Elapsed()),
	)
	return err
}
