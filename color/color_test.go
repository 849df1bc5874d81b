package color

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given channel values", t, func() {
		Convey("Valid r g b triples round-trip to rgba with alpha 1", func() {
			for _, rgb := range [][3]int{{0, 0, 0}, {255, 255, 255}, {59, 130, 246}, {1, 2, 3}} {
				text := fmt.Sprintf("%d %d %d", rgb[0], rgb[1], rgb[2])
				parsed := Parse(text)
				So(parsed.IsPresent(), ShouldBeTrue)
				So(parsed.MustGet().RGBA(), ShouldEqual, fmt.Sprintf("rgba(%d, %d, %d, 1)", rgb[0], rgb[1], rgb[2]))
			}
		})

		Convey("Alpha is kept when within range", func() {
			parsed := Parse("10 20 30 / 0.5")
			So(parsed.IsPresent(), ShouldBeTrue)
			So(parsed.MustGet().Alpha().MustGet(), ShouldEqual, 0.5)
			So(parsed.MustGet().RGBA(), ShouldEqual, "rgba(10, 20, 30, 0.5)")

			So(Parse("10 20 30/1").MustGet().RGBA(), ShouldEqual, "rgba(10, 20, 30, 1)")
			So(Parse("10 20 30 / 0").MustGet().RGBA(), ShouldEqual, "rgba(10, 20, 30, 0)")
			So(Parse("10 20 30 / .25").MustGet().RGBA(), ShouldEqual, "rgba(10, 20, 30, 0.25)")
		})

		Convey("Surrounding whitespace is ignored", func() {
			parsed := Parse("  1   2\t3  ")
			So(parsed.IsPresent(), ShouldBeTrue)
			So(parsed.MustGet().Original(), ShouldEqual, "  1   2\t3  ")
		})

		Convey("Out-of-range values are rejected, never clamped", func() {
			So(Parse("256 0 0").IsAbsent(), ShouldBeTrue)
			So(Parse("0 300 0").IsAbsent(), ShouldBeTrue)
			So(Parse("0 0 1000").IsAbsent(), ShouldBeTrue)
			So(Parse("0 0 0 / 1.5").IsAbsent(), ShouldBeTrue)
			So(Parse("0 0 0 / 2").IsAbsent(), ShouldBeTrue)
		})

		Convey("Other color syntaxes are rejected", func() {
			for _, text := range []string{
				"#fff",
				"red",
				"hsl(10 20% 30%)",
				"10% 20% 30%",
				"-1 0 0",
				"1 2",
				"1 2 3 4",
				"1 2 3 /",
				"rgb(1 2 3)",
				"1 2 3;",
				"",
			} {
				So(Parse(text).IsAbsent(), ShouldBeTrue)
			}
		})
	})
}

func TestSame(t *testing.T) {
	Convey("Colors are compared by their canonical form", t, func() {
		So(Same(Parse("1 2 3").MustGet(), Parse(" 1 2 3 / 1").MustGet()), ShouldBeTrue)
		So(Same(Parse("1 2 3").MustGet(), Parse("1 2 3 / 0.5").MustGet()), ShouldBeFalse)
	})
}

func TestHex(t *testing.T) {
	Convey("Hex drops alpha", t, func() {
		So(Parse("239 68 68 / 0.2").MustGet().Hex(), ShouldEqual, "#ef4444")
		So(FromRGB(0, 0, 0).MustGet().IsDark(), ShouldBeTrue)
		So(FromRGB(255, 255, 255).MustGet().IsDark(), ShouldBeFalse)
		So(FromRGB(256, 0, 0).IsAbsent(), ShouldBeTrue)
	})
}
