// Package watch re-runs an action whenever an input file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 150 * time.Millisecond

// ErrNoFile is returned when asked to watch stdin or an empty path.
var ErrNoFile = errors.New("watch needs an input file")

// Options configures Run.
type Options struct {
	// Debounce is the quiet period after the last event before fn runs.
	// Zero selects DefaultDebounce.
	Debounce time.Duration

	// OnError receives errors from fn and from the watcher. Run keeps
	// watching after reporting them. Nil discards them.
	OnError func(error)
}

// Run calls fn once, then again after every change to path, until ctx is
// done. The parent directory is watched so that editors which save by
// renaming a temp file over path are still noticed.
func Run(ctx context.Context, path string, opts Options, fn func(context.Context) error) error {
	if path == "" || path == "-" {
		return ErrNoFile
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	report := opts.OnError
	if report == nil {
		report = func(error) {}
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	if err := fn(ctx); err != nil {
		report(err)
	}

	timer := time.NewTimer(opts.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !relevant(ev) {
				continue
			}
			timer.Reset(opts.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			report(fmt.Errorf("watcher: %w", err))

		case <-timer.C:
			if err := fn(ctx); err != nil {
				report(err)
			}
		}
	}
}

// relevant reports whether ev may have changed the file's content.
func relevant(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
