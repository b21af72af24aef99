package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watcher calls onChange once per settled burst of Go source changes in dirs.
type watcher struct {
	dirs     []string
	ignore   []string // files whose changes never trigger, e.g. the generated output
	debounce time.Duration
	logger   *slog.Logger
	onChange func() error

	// ready, when set, is closed once every directory is watched.
	ready chan struct{}
}

// run blocks until ctx is done. onChange errors are logged, not returned.
func (w *watcher) run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	defer func() {
		_ = fw.Close()
	}()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	if w.ready != nil {
		close(w.ready)
	}

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

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if !w.relevant(ev) {
				continue
			}

			w.logger.Debug("change detected", "file", ev.Name, "op", ev.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			fire = timer.C

		case <-fire:
			fire = nil

			if err := w.onChange(); err != nil {
				w.logger.Error("regeneration failed", "err", err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("watch error", "err", err)
		}
	}
}

// relevant reports whether ev can change the analyzed package.
func (w *watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	name := ev.Name
	if filepath.Ext(name) != ".go" ||
		strings.HasSuffix(name, "_test.go") ||
		strings.HasSuffix(name, ".unformatted.go") {
		return false
	}

	if abs, err := filepath.Abs(name); err == nil {
		name = abs
	}

	for _, ignored := range w.ignore {
		if abs, err := filepath.Abs(ignored); err == nil && abs == name {
			return false
		}
	}

	return true
}
