package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tintscan/tintscan/filesystem"
	"github.com/tintscan/tintscan/registry"
)

const watchDebounce = 150 * time.Millisecond

type rebuilt struct {
	result Result
	err    error
	light  string
	dark   string
}

func writeFile(path, content string) {
	So(os.MkdirAll(filepath.Dir(path), 0o755), ShouldBeNil)
	So(os.WriteFile(path, []byte(content), 0o644), ShouldBeNil)
}

func colorOf(reg *registry.Registry, variable, mode string) string {
	c, ok := reg.ColorForMode(variable, mode).Get()
	if !ok {
		return ""
	}
	return c.RGBA()
}

// startWatching registers the tree before returning, so writes made afterwards are observed.
func startWatching(ctx context.Context, ws *Workspace) (<-chan rebuilt, <-chan error) {
	watcher, err := fsnotify.NewWatcher()
	So(err, ShouldBeNil)

	_, err = ws.watchTree(watcher, ws.Root())
	So(err, ShouldBeNil)

	rebuilds := make(chan rebuilt, 16)
	done := make(chan error, 1)

	go func() {
		defer watcher.Close()
		done <- ws.watch(ctx, watcher, "auto", watchDebounce, func(result Result, err error) {
			reg := ws.Registry()
			rebuilds <- rebuilt{
				result: result,
				err:    err,
				light:  colorOf(reg, "--x", "light"),
				dark:   colorOf(reg, "--x", "dark"),
			}
		})
	}()

	return rebuilds, done
}

func nextRebuild(rebuilds <-chan rebuilt, within time.Duration) (rebuilt, bool) {
	select {
	case r := <-rebuilds:
		return r, true
	case <-time.After(within):
		return rebuilt{}, false
	}
}

func TestWatch(t *testing.T) {
	Convey("Given a watched project on disk", t, func() {
		filesystem.SetOsFs()

		root := t.TempDir()
		theme := filepath.Join(root, "theme.css")
		writeFile(theme, ".light {\n  --x: 1 1 1;\n}\n")

		reg := registry.New()
		ws := New(root, reg, Options{Categories: allCategories, Ignore: []string{"node_modules"}})
		_, err := ws.Rebuild("auto")
		So(err, ShouldBeNil)

		ctx, cancel := context.WithCancel(context.Background())
		rebuilds, done := startWatching(ctx, ws)

		Reset(func() {
			cancel()
			<-done
		})

		Convey("A burst of writes collapses into one rebuild", func() {
			for i := 5; i <= 9; i++ {
				writeFile(theme, fmt.Sprintf(".light {\n  --x: %d %d %d;\n}\n", i, i, i))
			}

			r, ok := nextRebuild(rebuilds, 3*time.Second)
			So(ok, ShouldBeTrue)
			So(r.err, ShouldBeNil)
			So(r.result.Files, ShouldEqual, 1)
			So(r.light, ShouldEqual, "rgba(9, 9, 9, 1)")

			_, extra := nextRebuild(rebuilds, 3*watchDebounce)
			So(extra, ShouldBeFalse)
		})

		Convey("Files in a new directory are picked up", func() {
			writeFile(filepath.Join(root, "themes", "dark.css"), ".dark {\n  --x: 2 2 2;\n}\n")

			r, ok := nextRebuild(rebuilds, 3*time.Second)
			So(ok, ShouldBeTrue)
			So(r.err, ShouldBeNil)
			So(r.result.Files, ShouldEqual, 2)
			So(r.dark, ShouldEqual, "rgba(2, 2, 2, 1)")
			So(r.light, ShouldEqual, "rgba(1, 1, 1, 1)")
		})

		Convey("Ignored directories and other files never trigger a rebuild", func() {
			writeFile(filepath.Join(root, "node_modules", "lib.css"), ".dark {\n  --x: 3 3 3;\n}\n")
			writeFile(filepath.Join(root, "notes.md"), "# notes")

			_, ok := nextRebuild(rebuilds, 4*watchDebounce)
			So(ok, ShouldBeFalse)
		})

		Convey("Cancelling the context stops watching", func() {
			cancel()

			finished, err := waitDone(done, 3*time.Second)
			So(finished, ShouldBeTrue)
			So(err, ShouldBeNil)
			done = closedDone()

			writeFile(theme, ".light {\n  --x: 4 4 4;\n}\n")
			_, ok := nextRebuild(rebuilds, 3*watchDebounce)
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Watch returns once its context is cancelled", t, func() {
		filesystem.SetOsFs()

		root := t.TempDir()
		writeFile(filepath.Join(root, "theme.css"), ":root {\n  --x: 1 1 1;\n}\n")

		ws := New(root, registry.New(), Options{Categories: allCategories})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- ws.Watch(ctx, "auto", watchDebounce, nil)
		}()
		cancel()

		finished, err := waitDone(done, 3*time.Second)
		So(finished, ShouldBeTrue)
		So(err, ShouldBeNil)
	})
}

func waitDone(done <-chan error, within time.Duration) (bool, error) {
	select {
	case err := <-done:
		return true, err
	case <-time.After(within):
		return false, nil
	}
}

func closedDone() chan error {
	done := make(chan error, 1)
	done <- nil
	return done
}
