package log

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tintscan/tintscan/filesystem"
	"github.com/tintscan/tintscan/key"
	"github.com/tintscan/tintscan/where"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()
		t.Setenv(where.EnvConfigPath, "/config")

		Convey("Logging stays disabled unless enabled in config", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
		})

		Convey("Enabling it creates the daily log file", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			defer viper.Set(key.LogsWrite, false)

			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			path := filepath.Join("/config", "logs", time.Now().Format("2006-01-02")+".log")
			exists, err := filesystem.API().Exists(path)
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)

			WithFields(InfoLevel, Fields{"files": 2}, "workspace rebuilt")
			content, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(content), ShouldContainSubstring, "workspace rebuilt")
		})
	})
}
