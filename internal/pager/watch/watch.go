// Package watch wraps fsnotify into the change-notification channel the
// core's follow mode consumes, keeping the core itself free of any
// filesystem-watching API.
package watch

import (
	"github.com/fsnotify/fsnotify"
	"github.com/mna/glance/internal/pager/glanceerr"
)

// Watcher watches one or more paths and emits an empty struct{} on Events
// every time any of them changes, coalescing the underlying fsnotify
// event's Op/Name detail away: follow mode only cares that *something*
// changed, never what.
type Watcher struct {
	fsw    *fsnotify.Watcher
	Events chan struct{}
	errors chan error
}

// New starts watching paths. A path that does not exist yet (or is stdin,
// represented by the caller omitting it) is simply skipped; the pager
// still runs, it just never sees follow-mode events for that document.
func New(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, glanceerr.New(glanceerr.IO, "watch.New", err)
	}
	for _, p := range paths {
		_ = fsw.Add(p)
	}

	w := &Watcher{fsw: fsw, Events: make(chan struct{}, 1), errors: make(chan error, 1)}
	go w.pump()
	return w, nil
}

func (w *Watcher) pump() {
	for {
		select {
		case _, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			select {
			case w.Events <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
