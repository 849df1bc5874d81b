package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tintscan/tintscan/filesystem"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("State files live in existing directories", func() {
			for _, path := range []string{History(), Queries(), Version()} {
				So(filepath.Ext(path), ShouldEqual, ".json")
				So(lo.Must(filesystem.API().IsDir(filepath.Dir(path))), ShouldBeTrue)
			}
		})
	})

	Convey("TINTSCAN_CONFIG_PATH overrides the config directory", t, func() {
		t.Setenv(EnvConfigPath, "/custom/tintscan")
		So(Config(), ShouldEqual, "/custom/tintscan")
		So(Logs(), ShouldEqual, filepath.Join("/custom/tintscan", "logs"))
	})
}
