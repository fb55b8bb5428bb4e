// Package console renders transmission progress for a human operator.
package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bft-labs/framepump/internal/domain"
)

// Reporter writes human-readable progress to an io.Writer, normally stdout.
// It implements ports.Reporter. All rendering is a single bounded write per
// event; timestamps shown are wall-clock and used for display only.
type Reporter struct {
	w io.Writer
}

// New creates a reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// ShowConnection prints the link settings before the run starts.
func (r *Reporter) ShowConnection(device string, baud int, simulated bool) {
	status := "connected"
	if simulated {
		status = "simulated (no hardware I/O)"
	}
	fmt.Fprintf(r.w, "link: %s @ %d baud, 8N1 — %s\n", device, baud, status)
}

// ShowFile prints the loaded frame file name and frame count.
func (r *Reporter) ShowFile(name string, frames int) {
	fmt.Fprintf(r.w, "file: %s (%d frames)\n", name, frames)
}

// Start prints the run banner.
func (r *Reporter) Start() {
	fmt.Fprintln(r.w, strings.Repeat("=", 72))
	fmt.Fprintln(r.w, "transmitting — press Ctrl+C to stop")
	fmt.Fprintln(r.w, strings.Repeat("=", 72))
}

// FrameSent renders one send: timestamp, cycle, per-cycle progress, totals,
// rate and the frame's hex form.
func (r *Reporter) FrameSent(frame domain.Frame, snap domain.Snapshot) {
	ts := snap.LastSend.Format("15:04:05.000")
	fmt.Fprintf(r.w, "%s cycle %d  %d/%d (%5.1f%%)  total %d  %.1f/s  | %s\n",
		ts,
		snap.Cycles+1,
		snap.CycleSent, snap.FrameCount,
		snap.Progress()*100,
		snap.TotalSent,
		snap.Rate(),
		frame.HexString(),
	)
}

// CycleCompleted prints a cycle boundary marker.
func (r *Reporter) CycleCompleted(snap domain.Snapshot) {
	ts := time.Now().Format("15:04:05")
	fmt.Fprintf(r.w, "[%s] cycle %d complete\n", ts, snap.Cycles)
	fmt.Fprintln(r.w, strings.Repeat("-", 60))
}

// Summary prints the end-of-run totals.
func (r *Reporter) Summary(snap domain.Snapshot) {
	fmt.Fprintln(r.w, strings.Repeat("=", 72))
	fmt.Fprintf(r.w, "sent %d frames in %.2fs (%.2f/s), %d full cycles\n",
		snap.TotalSent, snap.Elapsed().Seconds(), snap.Rate(), snap.Cycles)
	fmt.Fprintln(r.w, strings.Repeat("=", 72))
}
