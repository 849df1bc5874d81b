package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"
	"github.com/tintscan/tintscan/log"
)

// RebuildFunc receives the outcome of every rebuild triggered by Watch. It runs while the
// workspace is locked, so it may read the registry but must not call back into the workspace.
type RebuildFunc func(Result, error)

// Watch rebuilds the registry whenever files of enabled categories change under the root,
// until ctx is cancelled. Bursts of events within debounce collapse into one rebuild; a single
// written file goes through Saved, anything else triggers a full Rebuild.
// Watching uses the operating system's notifications and therefore the real filesystem.
func (w *Workspace) Watch(ctx context.Context, mode string, debounce time.Duration, onRebuild RebuildFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if _, err := w.watchTree(watcher, w.root); err != nil {
		return err
	}

	return w.watch(ctx, watcher, mode, debounce, onRebuild)
}

// watch runs the event loop over an already populated watcher.
// It returns only once no rebuild is in flight.
func (w *Workspace) watch(
	ctx context.Context,
	watcher *fsnotify.Watcher,
	mode string,
	debounce time.Duration,
	onRebuild RebuildFunc,
) error {
	var (
		mu       sync.Mutex
		inflight sync.WaitGroup
		stopped  bool
		pending  = make(map[string]fsnotify.Op)
		timer    *time.Timer
	)

	flush := func() {
		mu.Lock()
		if stopped {
			mu.Unlock()
			return
		}
		inflight.Add(1)
		defer inflight.Done()

		changed := pending
		pending = make(map[string]fsnotify.Op)
		mu.Unlock()

		if len(changed) == 0 {
			return
		}

		w.mu.Lock()
		defer w.mu.Unlock()

		var (
			result Result
			err    error
		)
		if path, op := singleWrite(changed); path != "" && op == fsnotify.Write {
			result, err = w.saved(path, mode)
		} else {
			result, err = w.rebuild(mode)
		}

		if onRebuild != nil {
			onRebuild(result, err)
		}
	}

	schedule := func(path string, op fsnotify.Op) {
		mu.Lock()
		defer mu.Unlock()

		pending[path] |= op
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, flush)
	}

	stop := func() {
		mu.Lock()
		stopped = true
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()

		inflight.Wait()
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watch: %v", err)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if lo.Contains(w.options.Ignore, info.Name()) {
						continue
					}
					// files may land in a new directory before it is watched
					files, err := w.watchTree(watcher, event.Name)
					if err != nil {
						log.Warnf("watch %s: %v", event.Name, err)
					}
					for _, path := range files {
						schedule(path, fsnotify.Create)
					}
					continue
				}
			}

			if CategoryOf(event.Name, w.options.Categories).IsAbsent() || event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}

			log.Debugf("watch: %s %s", event.Op, event.Name)
			schedule(event.Name, event.Op)
		}
	}
}

// watchTree adds dir and every non-ignored directory below it to the watcher and returns the
// files of enabled categories already present.
func (w *Workspace) watchTree(watcher *fsnotify.Watcher, dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			if CategoryOf(path, w.options.Categories).IsPresent() {
				files = append(files, path)
			}
			return nil
		}
		if path != dir && lo.Contains(w.options.Ignore, d.Name()) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})

	return files, err
}

// singleWrite returns the path and op when exactly one path changed.
func singleWrite(changed map[string]fsnotify.Op) (string, fsnotify.Op) {
	if len(changed) != 1 {
		return "", 0
	}
	for path, op := range changed {
		return path, op
	}
	return "", 0
}
