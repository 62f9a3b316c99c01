// Package watch reports disk writes to the file currently on screen so the
// session can reload it without a manual keypress.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/kk-code-lab/codescroll/internal/log"
)

// Watcher follows one "current" file at a time. It watches the containing
// directory rather than the file itself, which survives editors that save by
// replacing the file.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	changes   chan string
	done      chan struct{}

	mu         sync.Mutex
	current    string
	watchedDir string
}

// New creates a stopped watcher. Call SetCurrent and Start to arm it.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		changes:   make(chan string, 1),
		done:      make(chan struct{}),
	}, nil
}

// Changes delivers the path of the current file whenever it is written.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// SetCurrent points the watcher at path, swapping the watched directory when
// the file moved to a different one.
func (w *Watcher) SetCurrent(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if dir != w.watchedDir {
		if w.watchedDir != "" {
			// The old directory may already be gone; nothing to do about it.
			_ = w.fsWatcher.Remove(w.watchedDir)
		}
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.watchedDir = dir
	}
	w.current = abs
	return nil
}

// Start launches the event loop. Events for files other than the current one
// are dropped.
func (w *Watcher) Start() {
	go w.run()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			current := w.current
			w.mu.Unlock()
			if current == "" || filepath.Clean(event.Name) != current {
				continue
			}
			select {
			case w.changes <- current:
			default:
				// A reload is already pending; coalesce.
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("watcher error: %v", err)
		}
	}
}

// Stop shuts the watcher down. Safe to call once.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}
