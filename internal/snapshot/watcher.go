package snapshot

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
)

// debounce window for editors that write snapshots in multiple bursts.
const debounceDelay = 500 * time.Millisecond

// Watcher re-loads a snapshot file whenever it changes and hands the parsed
// episodes to a callback.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  *slog.Logger
}

// NewWatcher creates a watcher for one snapshot file.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: many tools replace the file by
	// rename, which drops a direct file watch.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{watcher: w, path: path, logger: logger}, nil
}

// Watch blocks until ctx is cancelled, invoking apply with freshly parsed
// episodes after each change to the snapshot file. Parse failures are logged
// and skipped so a half-written file does not wipe the corpus.
func (w *Watcher) Watch(ctx context.Context, apply func(context.Context, []apptype.Episode) error) error {
	var timer *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			episodes, err := Load(w.path)
			if err != nil {
				w.logger.Warn("snapshot reload failed", "path", w.path, "error", err)
				continue
			}
			if err := apply(ctx, episodes); err != nil {
				w.logger.Error("snapshot apply failed", "path", w.path, "error", err)
				continue
			}
			w.logger.Info("snapshot reloaded", "path", w.path, "episodes", len(episodes))
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("snapshot watcher error", "error", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
