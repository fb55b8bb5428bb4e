package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/framepump/internal/domain"
	"github.com/bft-labs/framepump/internal/hexfile"
)

type recordingSwapper struct {
	ch chan domain.FrameSet
}

func newRecordingSwapper() *recordingSwapper {
	return &recordingSwapper{ch: make(chan domain.FrameSet, 4)}
}

func (s *recordingSwapper) Swap(frames domain.FrameSet) {
	s.ch <- frames
}

func startWatcher(t *testing.T, path string, target Swapper) {
	t.Helper()
	w := New(path, hexfile.FramingBlocks, target, nil)
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() {
		cancel()
		w.Wait()
	})
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.txt")
	if err := os.WriteFile(path, []byte("01 02"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	swapper := newRecordingSwapper()
	startWatcher(t, path, swapper)

	if err := os.WriteFile(path, []byte("60 01 13 20\n\nAA"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case frames := <-swapper.ch:
		if frames.Size() != 2 {
			t.Errorf("swapped set Size() = %d, want 2", frames.Size())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no Swap after file change")
	}
}

func TestWatcher_KeepsOldFramesOnParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.txt")
	if err := os.WriteFile(path, []byte("01 02"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	swapper := newRecordingSwapper()
	startWatcher(t, path, swapper)

	if err := os.WriteFile(path, []byte("ZZ QQ"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case frames := <-swapper.ch:
		t.Errorf("Swap called with %d frames for malformed file", frames.Size())
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frames.txt")
	if err := os.WriteFile(path, []byte("01 02"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	swapper := newRecordingSwapper()
	startWatcher(t, path, swapper)

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("AA BB"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}

	select {
	case <-swapper.ch:
		t.Error("Swap called for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}
