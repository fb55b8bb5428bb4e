// Package sim implements the Transport port without hardware. Writes are
// recorded instead of emitted, so the transmission loop and its timing run
// exactly as they would against a real device.
package sim

import "sync"

// Transport records every write. The zero value is ready to use.
type Transport struct {
	mu     sync.Mutex
	writes [][]byte
	failAt int // 1-based write index that fails; 0 means never
	err    error
}

// New creates a simulated transport that accepts all writes.
func New() *Transport {
	return &Transport{}
}

// FailAt makes the n-th write (1-based) return err; later writes are never
// reached because the controller treats a write failure as fatal.
func (t *Transport) FailAt(n int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failAt = n
	t.err = err
}

// Write records the frame bytes.
func (t *Transport) Write(p []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.failAt > 0 && len(t.writes)+1 == t.failAt {
		return t.err
	}
	b := make([]byte, len(p))
	copy(b, p)
	t.writes = append(t.writes, b)
	return nil
}

// Close is a no-op.
func (t *Transport) Close() error {
	return nil
}

// Writes returns a copy of all recorded writes in order.
func (t *Transport) Writes() [][]byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([][]byte, len(t.writes))
	copy(out, t.writes)
	return out
}

// Count returns the number of recorded writes.
func (t *Transport) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.writes)
}
