// Package delay decides how long to wait before transmitting each frame.
package delay

import (
	"time"

	"github.com/bft-labs/framepump/internal/domain"
)

// Rule pairs a byte prefix with the wait applied to frames carrying it.
type Rule struct {
	Prefix []byte
	Wait   time.Duration
}

// Policy is an ordered rule table evaluated first-match-wins, with a
// fallback wait for frames matching no rule. The table is static
// configuration; it never changes during a run.
type Policy struct {
	rules   []Rule
	defWait time.Duration
}

// New creates a policy from the given rules and default wait.
func New(rules []Rule, defWait time.Duration) *Policy {
	return &Policy{rules: rules, defWait: defWait}
}

// Default returns the policy for the recorded RS485 traffic: command frames
// beginning 60 01 13 20 need 90ms before sending, status frames beginning
// 60 01 13 30 need only 10ms, and so does everything else.
func Default() *Policy {
	return New([]Rule{
		{Prefix: []byte{0x60, 0x01, 0x13, 0x20}, Wait: 90 * time.Millisecond},
		{Prefix: []byte{0x60, 0x01, 0x13, 0x30}, Wait: 10 * time.Millisecond},
	}, 10*time.Millisecond)
}

// For returns the wait to apply before sending the given frame.
// Frames shorter than a rule's prefix never match that rule.
func (p *Policy) For(f domain.Frame) time.Duration {
	for _, r := range p.rules {
		if f.HasPrefix(r.Prefix) {
			return r.Wait
		}
	}
	return p.defWait
}
