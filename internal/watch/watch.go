// Package watch re-evaluates a project file whenever it changes on disk.
//
// The watcher observes the file's directory rather than the file itself,
// because most editors save atomically (write temp file, rename over the
// target), which would otherwise drop the watch. Bursts of events are
// debounced before the handler fires.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ashpursglove/traycalc/pkg/log"
)

// DefaultDebounce is the quiet period after the last event before the
// handler runs.
const DefaultDebounce = 250 * time.Millisecond

// Handler is called with the project file path after each settled change.
type Handler func(path string)

// Run watches path until ctx is cancelled, calling fn on every settled
// change. fn is also called once up front so the caller starts with a
// current evaluation.
func Run(ctx context.Context, path string, debounce time.Duration, fn Handler) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving watch path: %w", err)
	}
	dir := filepath.Dir(abs)
	base := filepath.Base(abs)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	fn(abs)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("project file changed", zap.String("path", abs), zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			fn(abs)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		}
	}
}
