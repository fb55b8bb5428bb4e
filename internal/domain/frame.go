package domain

import (
	"fmt"
	"strings"
)

// Frame is a single binary record transmitted as one unit over the link.
// The byte sequence is fixed at parse time and never altered afterwards.
type Frame struct {
	data []byte
}

// NewFrame constructs a Frame from the given bytes. The slice is copied so
// callers cannot mutate the frame after construction.
func NewFrame(b []byte) Frame {
	data := make([]byte, len(b))
	copy(data, b)
	return Frame{data: data}
}

// Len returns the number of bytes in the frame.
func (f Frame) Len() int {
	return len(f.data)
}

// Bytes returns a copy of the frame's bytes for transmission.
func (f Frame) Bytes() []byte {
	b := make([]byte, len(f.data))
	copy(b, f.data)
	return b
}

// HasPrefix reports whether the frame's leading bytes equal prefix.
// A frame shorter than prefix never matches.
func (f Frame) HasPrefix(prefix []byte) bool {
	if len(f.data) < len(prefix) {
		return false
	}
	for i, b := range prefix {
		if f.data[i] != b {
			return false
		}
	}
	return true
}

// HexString renders the frame as uppercase space-separated hex tokens,
// e.g. "60 01 13 20 01 01".
func (f Frame) HexString() string {
	var sb strings.Builder
	for i, b := range f.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}

// FrameSet is the ordered sequence of frames for a run. Order of appearance
// in the source file is the transmission order and is preserved exactly.
type FrameSet []Frame

// Size returns the number of frames in the set.
func (s FrameSet) Size() int {
	return len(s)
}
