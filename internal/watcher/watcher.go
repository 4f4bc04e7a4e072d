// Package watcher regenerates projects when a local manifest file
// changes. Events are debounced so editors that write in several bursts
// trigger one regeneration.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ismailco/pwa2native/internal/logging"
)

// DefaultDebounce is the delay between the last observed write and the
// regeneration callback.
const DefaultDebounce = 300 * time.Millisecond

// ManifestWatcher watches a single manifest file for changes.
type ManifestWatcher struct {
	path     string
	debounce time.Duration
	logger   logging.Logger
}

// New creates a watcher for the manifest at path.
func New(path string, debounce time.Duration, logger logging.Logger) *ManifestWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	return &ManifestWatcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		logger:   logger.WithComponent("watcher"),
	}
}

// Watch blocks until ctx is cancelled, invoking onChange after each
// debounced burst of writes to the manifest file. The parent directory
// is watched rather than the file itself so atomic rename-based saves
// are observed too.
func (w *ManifestWatcher) Watch(ctx context.Context, onChange func(context.Context)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	w.logger.Info(ctx, "watching manifest", "path", w.path)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.logger.Info(ctx, "manifest changed, regenerating", "path", w.path)
			onChange(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn(ctx, err, "watch error")
		}
	}
}
