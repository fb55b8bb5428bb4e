package delay

import (
	"testing"
	"time"

	"github.com/bft-labs/framepump/internal/domain"
)

func TestDefault_For(t *testing.T) {
	p := Default()

	tests := []struct {
		name  string
		frame []byte
		want  time.Duration
	}{
		{"command prefix", []byte{0x60, 0x01, 0x13, 0x20, 0x01, 0x01}, 90 * time.Millisecond},
		{"command prefix exact length", []byte{0x60, 0x01, 0x13, 0x20}, 90 * time.Millisecond},
		{"status prefix", []byte{0x60, 0x01, 0x13, 0x30, 0xFF}, 10 * time.Millisecond},
		{"unmatched prefix", []byte{0x60, 0x01, 0x13, 0x40}, 10 * time.Millisecond},
		{"unrelated frame", []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE}, 10 * time.Millisecond},
		{"three bytes never match", []byte{0x60, 0x01, 0x13}, 10 * time.Millisecond},
		{"one byte", []byte{0x60}, 10 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.For(domain.NewFrame(tt.frame))
			if got != tt.want {
				t.Errorf("For(% X) = %v, want %v", tt.frame, got, tt.want)
			}
		})
	}
}

func TestNew_FirstMatchWins(t *testing.T) {
	p := New([]Rule{
		{Prefix: []byte{0x01}, Wait: 5 * time.Millisecond},
		{Prefix: []byte{0x01, 0x02}, Wait: 50 * time.Millisecond},
	}, time.Millisecond)

	// The longer rule is shadowed by the earlier shorter one.
	got := p.For(domain.NewFrame([]byte{0x01, 0x02, 0x03}))
	if got != 5*time.Millisecond {
		t.Errorf("For() = %v, want 5ms", got)
	}

	got = p.For(domain.NewFrame([]byte{0x09}))
	if got != time.Millisecond {
		t.Errorf("For() = %v, want default 1ms", got)
	}
}
