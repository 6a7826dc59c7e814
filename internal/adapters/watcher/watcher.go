// Package watcher aborts in-flight completion runs when the active file
// changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/clank/internal/core/ports"
)

// DefaultDebounceWindow is the default time window for coalescing file events.
// Editors tend to emit several events per save.
const DefaultDebounceWindow = 50 * time.Millisecond

// Watcher watches a single file and fires a callback when its content
// actually changes. Events that leave the content byte-identical, such as
// a touch or an atomic-save rename dance, are swallowed by the hash cache.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	hashes    *ContentHashes
	logger    ports.Logger
	window    time.Duration
}

// NewWatcher creates a watcher with the default debounce window.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		hashes:    NewContentHashes(),
		logger:    logger,
		window:    DefaultDebounceWindow,
	}, nil
}

// Watch starts watching path and invokes onChange whenever its content
// changes on disk. The watch runs until ctx is done or Close is called.
// The directory is watched rather than the file itself so that editors
// that save by rename-and-replace are still observed.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	// Seed the cache so the first event only fires on a real change.
	w.hashes.Prime(path)

	if err := w.fsWatcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	debouncer := NewDebouncer(w.window, func() {
		if w.hashes.Changed(path) {
			w.logger.Debug(fmt.Sprintf("%s changed on disk", path))
			onChange()
		}
	})

	go w.processEvents(ctx, path, debouncer)
	return nil
}

// Close stops the watcher and releases all resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

// processEvents filters raw fsnotify events down to the watched file and
// feeds them to the debouncer.
func (w *Watcher) processEvents(ctx context.Context, path string, debouncer *Debouncer) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Name != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			debouncer.Bump()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(err)
		}
	}
}
