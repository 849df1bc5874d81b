package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/tintscan/tintscan/filesystem"
	"github.com/tintscan/tintscan/log"
	"github.com/tintscan/tintscan/registry"
)

// Options selects which files take part in a workspace.
type Options struct {
	// Categories are the enabled category names.
	Categories []string
	// Ignore are directory names skipped during discovery.
	Ignore []string
}

// File is a discovered source file.
type File struct {
	Path     string
	Category Category
}

// Result describes a completed rebuild.
type Result struct {
	Mode     string
	Files    int
	Skipped  int
	Stats    registry.Stats
	Duration time.Duration
}

// Workspace owns the orchestration around one registry: it serializes every scan/rebuild
// cycle so the registry only ever sees one at a time.
type Workspace struct {
	root     string
	options  Options
	registry *registry.Registry

	mu      sync.Mutex
	sources []string
}

// New returns a workspace rooted at root feeding reg.
func New(root string, reg *registry.Registry, options Options) *Workspace {
	return &Workspace{
		root:     filepath.Clean(root),
		options:  options,
		registry: reg,
	}
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string {
	return w.root
}

// Registry returns the registry fed by the workspace.
func (w *Workspace) Registry() *registry.Registry {
	return w.registry
}

// Options returns the options the workspace was created with.
func (w *Workspace) Options() Options {
	return w.options
}

// Discover walks the root and lists files of enabled categories in lexical order.
func (w *Workspace) Discover() ([]File, error) {
	var files []File

	err := afero.Walk(filesystem.API().Fs, w.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warnf("skipping %s: %v", path, err)
			return nil
		}

		if info.IsDir() {
			if path != w.root && lo.Contains(w.options.Ignore, info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if c, ok := CategoryOf(path, w.options.Categories).Get(); ok {
			files = append(files, File{Path: path, Category: c})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", w.root, err)
	}

	return files, nil
}

// Rebuild rescans every definition source and rebuilds the active view for mode.
func (w *Workspace) Rebuild(mode string) (Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.rebuild(mode)
}

func (w *Workspace) rebuild(mode string) (Result, error) {
	started := time.Now()

	files, err := w.Discover()
	if err != nil {
		return Result{}, err
	}

	sources := lo.FilterMap(files, func(f File, _ int) (string, bool) {
		return f.Path, f.Category.Defines
	})

	result := Result{Mode: mode, Files: len(sources)}

	// A single source is replace-scanned; several are merged into a registry cleared once.
	scanMode := registry.ScanReplace
	if len(sources) != 1 {
		scanMode = registry.ScanMerge
		w.registry.ClearAll()
	}

	for _, path := range sources {
		content, err := filesystem.API().ReadFile(path)
		if err != nil {
			log.Warnf("read %s: %v", path, err)
			result.Skipped++
			if scanMode == registry.ScanReplace {
				w.registry.ClearAll()
			}
			continue
		}
		w.registry.Scan(string(content), scanMode)
	}

	w.registry.Rebuild(mode)
	w.sources = sources

	result.Stats = w.registry.Stats()
	result.Duration = time.Since(started)

	log.WithFields(log.InfoLevel, log.Fields{
		"root":      w.root,
		"mode":      mode,
		"files":     result.Files,
		"skipped":   result.Skipped,
		"variables": result.Stats.Variables,
	}, "workspace rebuilt")

	return result, nil
}

// Saved reacts to one file being written. When it is the workspace's only definition source
// it is replace-scanned on its own; otherwise every source is rescanned.
func (w *Workspace) Saved(path, mode string) (Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.saved(path, mode)
}

func (w *Workspace) saved(path, mode string) (Result, error) {
	c, ok := CategoryOf(path, w.options.Categories).Get()
	if !ok || !c.Defines {
		// Usage-only and disabled files never change the registry.
		return Result{Mode: mode, Files: len(w.sources), Stats: w.registry.Stats()}, nil
	}

	if len(w.sources) != 1 || w.sources[0] != path {
		return w.rebuild(mode)
	}

	started := time.Now()
	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		return w.rebuild(mode)
	}

	w.registry.Scan(string(content), registry.ScanReplace)
	w.registry.Rebuild(mode)

	return Result{
		Mode:     mode,
		Files:    1,
		Stats:    w.registry.Stats(),
		Duration: time.Since(started),
	}, nil
}

// View runs fn with the registry while no rebuild can run.
func (w *Workspace) View(fn func(reg *registry.Registry)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fn(w.registry)
}

// SetMode rebuilds only the active view for a new resolution mode.
func (w *Workspace) SetMode(mode string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.registry.Rebuild(mode)
}
