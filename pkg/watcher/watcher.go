// Package watcher turns file-system events on the save file into reload signals.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watcher signals on Changes whenever the watched file may have changed.
// The parent directory is watched so that replace-by-rename writes are seen.
// Signals coalesce: a burst of events yields at least one signal, never a backlog.
type Watcher struct {
	fsw      *fsnotify.Watcher
	name     string
	dir      string
	debounce time.Duration
	changes  chan struct{}
	logger   *slog.Logger
}

// New starts watching path. debounce delays the signal until events stop arriving
// for that long; zero signals on every event.
func New(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	logger.Info("Watching state file", "state_path", path, "debounce", debounce)

	return &Watcher{
		fsw:      fsw,
		name:     filepath.Base(path),
		dir:      dir,
		debounce: debounce,
		changes:  make(chan struct{}, 1),
		logger:   logger,
	}, nil
}

// Changes returns the signal channel. It is closed when Run returns.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Run delivers signals until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.changes)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.matches(ev) {
				continue
			}
			w.logger.Debug("State file event", "event", ev.Op.String(), "file", ev.Name)

			if w.debounce <= 0 {
				w.signal()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.signal()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", "dir", w.dir, "error", err)
		}
	}
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) matches(ev fsnotify.Event) bool {
	return filepath.Base(ev.Name) == w.name && ev.Op&relevantOps != 0
}

func (w *Watcher) signal() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
