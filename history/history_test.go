package history

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tintscan/tintscan/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a workspace", t, func() {
		root := "/projects/site"

		Convey("When its mode is saved", func() {
			So(SaveMode(root, "dark"), ShouldBeNil)

			Convey("Then the mode is remembered", func() {
				So(Mode(root).OrEmpty(), ShouldEqual, "dark")
			})

			Convey("And a later scan keeps it", func() {
				So(SaveScan(root, 3, 12, []string{"dark", "light"}), ShouldBeNil)

				record, ok := Lookup(root).Get()
				So(ok, ShouldBeTrue)
				So(record.Mode, ShouldEqual, "dark")
				So(record.Variables, ShouldEqual, 12)
				So(record.Contexts, ShouldResemble, []string{"dark", "light"})
				So(record.ScannedAt.IsZero(), ShouldBeFalse)
			})
		})

		Convey("When it is removed", func() {
			So(SaveMode(root, "light"), ShouldBeNil)
			So(Remove(root), ShouldBeNil)

			Convey("Then nothing is remembered", func() {
				So(Mode(root).IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("A scan alone does not set a mode", func() {
			other := "/projects/other"
			So(SaveScan(other, 1, 1, nil), ShouldBeNil)
			So(Mode(other).IsAbsent(), ShouldBeTrue)
			So(Lookup(other).MustGet().String(), ShouldContainSubstring, "auto")
		})
	})
}
