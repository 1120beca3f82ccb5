// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default time to wait after the last change
// to a scene file before reading it.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches a scene file and reads it again when it changes.
// The directory of the file is watched, so that editors that replace
// the file by renaming are handled.
type Watcher struct {
	// Path is the absolute path of the scene file.
	Path string

	// Debounce is the time to wait after the last change event
	// before reading the file.
	Debounce time.Duration

	watcher *fsnotify.Watcher
}

// NewWatcher returns a new watcher for the scene file at the given path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scene: creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("scene: watching %q: %w", abs, err)
	}
	w := &Watcher{Path: abs, Debounce: DefaultDebounce, watcher: fw}
	return w, nil
}

// isChange returns true if the event is a change to the scene file.
func (w *Watcher) isChange(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.Path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// Run waits for changes to the scene file, and after each burst of
// changes reads the file and sends the new scene on out.
// Scenes that cannot be read are logged and not sent, so the previous
// scene stays active. Run returns when the context is done or the
// watcher is closed.
func (w *Watcher) Run(ctx context.Context, out chan<- *Scene) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.isChange(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("scene: watcher error", "path", w.Path, "err", err)
		case <-fire:
			fire = nil
			sc, err := Open(w.Path)
			if err != nil {
				slog.Error("scene: reload failed, keeping previous scene", "err", err)
				continue
			}
			slog.Info("scene: reloaded", "path", w.Path, "quads", len(sc.Quads))
			select {
			case out <- sc:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// Close stops watching. A running [Watcher.Run] returns.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
