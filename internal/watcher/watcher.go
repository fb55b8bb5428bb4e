// Package watcher reloads the frame file when it changes on disk.
//
// It watches the file's directory rather than the file itself, because most
// editors replace the file on save and a direct watch would be lost with the
// old inode. Reloads are debounced and handed to the controller, which
// applies them at the next cycle boundary.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/framepump/internal/domain"
	"github.com/bft-labs/framepump/internal/hexfile"
	"github.com/bft-labs/framepump/pkg/log"
)

// defaultDebounce is the delay after a change before re-reading the file,
// letting editors finish their write-and-rename dance.
const defaultDebounce = 100 * time.Millisecond

// Swapper receives the re-parsed frame set. Implemented by the controller.
type Swapper interface {
	Swap(frames domain.FrameSet)
}

// Watcher monitors one frame file and pushes re-parsed frame sets to a
// Swapper. A parse failure of the changed content is logged and the previous
// frame set stays in effect.
type Watcher struct {
	path     string
	framing  hexfile.Framing
	target   Swapper
	logger   log.Logger
	debounce time.Duration

	wg sync.WaitGroup
}

// New creates a watcher for the given frame file.
func New(path string, framing hexfile.Framing, target Swapper, logger log.Logger) *Watcher {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:     path,
		framing:  framing,
		target:   target,
		logger:   logger,
		debounce: defaultDebounce,
	}
}

// Start begins watching until the context is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return err
	}

	w.logger.Info("watching frame file", log.String("path", w.path))

	w.wg.Add(1)
	go w.loop(ctx, fsw)
	return nil
}

// Wait blocks until the watch loop has exited.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	base := filepath.Base(w.path)
	var pending *time.Timer
	var pendingC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if pending == nil {
				pending = time.NewTimer(w.debounce)
				pendingC = pending.C
			} else {
				pending.Reset(w.debounce)
			}

		case <-pendingC:
			pending = nil
			pendingC = nil
			w.reload()

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", log.Err(err))
		}
	}
}

func (w *Watcher) reload() {
	b, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("reload: read failed, keeping current frames", log.Err(err))
		return
	}
	frames, err := hexfile.Parse(string(b), w.framing)
	if err != nil {
		w.logger.Warn("reload: parse failed, keeping current frames", log.Err(err))
		return
	}
	w.target.Swap(frames)
}
