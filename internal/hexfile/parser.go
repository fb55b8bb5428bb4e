// Package hexfile parses text frame files into binary frame sets.
//
// A frame file contains whitespace-separated, case-insensitive two-hex-digit
// byte tokens. How lines group into frames depends on the selected Framing:
// in block framing, consecutive non-blank lines form one frame and a blank
// line starts the next; in line framing, every non-blank line is its own
// frame.
package hexfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bft-labs/framepump/internal/domain"
)

// Framing selects how lines of a frame file group into frames.
type Framing int

const (
	// FramingBlocks treats each blank-line-separated block of non-blank
	// lines as one frame. This matches the recorded sample files, where a
	// multi-line block is a single record.
	FramingBlocks Framing = iota

	// FramingLines treats every non-blank line as its own frame.
	FramingLines
)

// String returns a human-readable representation of the framing mode.
func (f Framing) String() string {
	switch f {
	case FramingBlocks:
		return "blocks"
	case FramingLines:
		return "lines"
	default:
		return "unknown"
	}
}

// ParseError reports a token that is not a valid two-hex-digit byte.
type ParseError struct {
	Line  int    // 1-based line number of the offending token
	Token string // the token as it appeared in the file
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("hexfile: line %d: invalid byte token %q", e.Line, e.Token)
}

// Parse decodes already-read frame file text into a FrameSet.
// It returns a *ParseError for the first invalid token encountered and
// domain.ErrEmptyFile when the text yields no frames.
func Parse(text string, framing Framing) (domain.FrameSet, error) {
	var (
		set domain.FrameSet
		cur []byte
	)

	flush := func() {
		if len(cur) > 0 {
			set = append(set, domain.NewFrame(cur))
			cur = nil
		}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			// Blank lines delimit frames but never terminate parsing.
			flush()
			continue
		}
		for _, tok := range fields {
			b, err := parseByte(tok)
			if err != nil {
				return nil, &ParseError{Line: i + 1, Token: tok}
			}
			cur = append(cur, b)
		}
		if framing == FramingLines {
			flush()
		}
	}
	flush()

	if len(set) == 0 {
		return nil, domain.ErrEmptyFile
	}
	return set, nil
}

// ParseReader reads all of r and parses it. It is a convenience for callers
// holding an open file; Parse itself performs no I/O.
func ParseReader(r io.Reader, framing Framing) (domain.FrameSet, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("hexfile: read: %w", err)
	}
	return Parse(string(b), framing)
}

func parseByte(tok string) (byte, error) {
	if len(tok) != 2 {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseUint(tok, 16, 8)
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}
