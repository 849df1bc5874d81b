package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tintscan/tintscan/constant"
)

func TestCommand(t *testing.T) {
	Convey("Default handlers are picked per platform", t, func() {
		cmd, err := Command(constant.Linux, "/tmp/tintscan.toml", "")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"xdg-open", "/tmp/tintscan.toml"})

		cmd, err = Command(constant.Darwin, "https://example.com", "")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"open", "https://example.com"})
	})

	Convey("An explicit app is used when given", t, func() {
		cmd, err := Command(constant.Linux, "a.toml", "vim")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"vim", "a.toml"})

		cmd, err = Command(constant.Windows, "https://x.io/?a=1&b=2", "firefox")
		So(err, ShouldBeNil)
		So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://x.io/?a=1^&b=2")
	})

	Convey("Unknown platforms are rejected", t, func() {
		_, err := Command("plan9", "x", "")
		So(err, ShouldNotBeNil)
	})
}
