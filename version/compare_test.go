package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Orders by major, minor, then patch", func() {
			cmp, err := Compare("1.2.3", "1.2.4")
			So(err, ShouldBeNil)
			So(cmp, ShouldEqual, -1)

			cmp, err = Compare("v2.0.0", "1.9.9")
			So(err, ShouldBeNil)
			So(cmp, ShouldEqual, 1)

			cmp, err = Compare("0.1.0", "v0.1.0")
			So(err, ShouldBeNil)
			So(cmp, ShouldEqual, 0)
		})

		Convey("Rejects malformed versions", func() {
			_, err := Compare("latest", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Pre-release suffixes are ignored", t, func() {
		v, err := parse("v1.4.0-rc.1")
		So(err, ShouldBeNil)
		So(v, ShouldResemble, [3]int{1, 4, 0})

		_, err = parse("1.4")
		So(err, ShouldNotBeNil)
	})
}
