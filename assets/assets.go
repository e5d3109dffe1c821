// SPDX-License-Identifier: GPL-2.0-or-later

// Package assets reads shader sources from disk and reports when they change.
package assets

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"gocube/conlog"
)

// ReadShader returns the source of the shader file at path.
func ReadShader(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading shader %s", path)
	}
	return string(b), nil
}

// Watcher watches a fixed set of files. The files' directories are watched
// instead of the files themselves so editors that replace a file on save are
// still seen.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	names    map[string]struct{}
	changed  chan string
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

func NewWatcher(paths ...string) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating watcher")
	}
	w := &Watcher{
		fsnotify: fsWatch,
		names:    make(map[string]struct{}),
		changed:  make(chan string, 16),
		done:     make(chan struct{}),
	}
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsWatch.Close()
			return nil, errors.Wrapf(err, "watching %s", p)
		}
		w.names[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for d := range dirs {
		if err := fsWatch.Add(d); err != nil {
			fsWatch.Close()
			return nil, errors.Wrapf(err, "watching %s", d)
		}
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if _, ok := w.names[filepath.Clean(e.Name)]; !ok {
				continue
			}
			select {
			case w.changed <- e.Name:
			default:
				// the frame loop has not caught up, it reloads everything anyway
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			conlog.Warnf("file watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

// Changed drains the pending change notifications without blocking and
// returns the names of the files that changed, without duplicates.
func (w *Watcher) Changed() []string {
	var names []string
	seen := make(map[string]bool)
	for {
		select {
		case n := <-w.changed:
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		default:
			return names
		}
	}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.wg.Wait()
		err = w.fsnotify.Close()
	})
	return err
}
