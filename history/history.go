// Package history remembers per-workspace state between runs: the chosen resolution mode and
// the outcome of the last scan.
package history

import (
	"path/filepath"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/tintscan/tintscan/filesystem"
	"github.com/tintscan/tintscan/where"
)

var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func encode(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		return filepath.Clean(root)
	}
	return abs
}

// Get returns every remembered workspace keyed by absolute root.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Lookup returns the record of a workspace.
func Lookup(root string) mo.Option[*Record] {
	saved, err := Get()
	if err != nil {
		return mo.None[*Record]()
	}

	if record, ok := saved[encode(root)]; ok {
		return mo.Some(record)
	}
	return mo.None[*Record]()
}

// Mode returns the remembered resolution mode of a workspace.
func Mode(root string) mo.Option[string] {
	record, ok := Lookup(root).Get()
	if !ok || record.Mode == "" {
		return mo.None[string]()
	}
	return mo.Some(record.Mode)
}

func update(root string, fn func(*Record)) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	root = encode(root)
	record, ok := saved[root]
	if !ok {
		record = &Record{Root: root}
		saved[root] = record
	}

	fn(record)
	return cacher.Set(saved)
}

// SaveMode remembers the resolution mode chosen for a workspace.
func SaveMode(root, mode string) error {
	return update(root, func(r *Record) {
		r.Mode = mode
	})
}

// SaveScan remembers the outcome of a scan, keeping the chosen mode.
func SaveScan(root string, files, variables int, contexts []string) error {
	return update(root, func(r *Record) {
		r.Files = files
		r.Variables = variables
		r.Contexts = contexts
		r.ScannedAt = time.Now()
	})
}

// Remove forgets a workspace.
func Remove(root string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, encode(root))
	return cacher.Set(saved)
}
