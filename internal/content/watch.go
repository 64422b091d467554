package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce coalesces the burst of events editors emit on save.
const DefaultWatchDebounce = 150 * time.Millisecond

// ReloadFunc receives the result of every reload attempt.
type ReloadFunc func(*Content, error)

// Watch reloads path whenever it changes until ctx is cancelled. The parent
// directory is watched so editors that replace the file on save are seen.
func Watch(ctx context.Context, path string, debounce time.Duration, fn ReloadFunc) error {
	if path == "" {
		return fmt.Errorf("watch content: empty path")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch content: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch content: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch content %s: %w", path, err)
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	stop := func() {
		if timer != nil {
			timer.Stop()
		}
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			stop()
			timer = time.NewTimer(debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			fn(Load(abs))

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("watch content %s: %w", path, werr))
		}
	}
}
