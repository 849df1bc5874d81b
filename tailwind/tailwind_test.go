package tailwind

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tintscan/tintscan/color"
)

func mustColor(text string) color.Parsed {
	return color.Parse(text).MustGet()
}

func TestParseClass(t *testing.T) {
	Convey("Given utility class tokens", t, func() {
		Convey("Stacked modifiers are stripped", func() {
			So(ParseClass("md:hover:bg-red-500"), ShouldResemble, mo.Some(Class{Prefix: "bg", ColorName: "red-500"}))
			So(ParseClass("dark:group-hover:text-primary").MustGet().ColorName, ShouldEqual, "primary")
			So(ParseClass("2xl:border-slate-200").MustGet().Prefix, ShouldEqual, "border")
		})

		Convey("The opacity suffix is discarded", func() {
			So(ParseClass("bg-red-500/50").MustGet().ColorName, ShouldEqual, "red-500")
			So(ParseClass("text-brand/[.3]").MustGet().ColorName, ShouldEqual, "brand")
		})

		Convey("Every prefix is recognized", func() {
			for _, prefix := range Prefixes {
				class := ParseClass(prefix + "-sky-400")
				So(class.IsPresent(), ShouldBeTrue)
				So(class.MustGet().Prefix, ShouldEqual, prefix)
				So(class.MustGet().ColorName, ShouldEqual, "sky-400")
			}
		})

		Convey("Non-color utilities and unknown modifiers do not match", func() {
			So(ParseClass("flex").IsAbsent(), ShouldBeTrue)
			So(ParseClass("p-4").IsAbsent(), ShouldBeTrue)
			So(ParseClass("bg-").IsAbsent(), ShouldBeTrue)
			So(ParseClass("bg-/50").IsAbsent(), ShouldBeTrue)
			So(ParseClass("print:bg-red-500").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given a custom registry", t, func() {
		reg := Static(map[string]color.Parsed{
			"--txt-primary":   mustColor("10 20 30"),
			"--text-muted":    mustColor("40 50 60"),
			"--Brand_Accent":  mustColor("70 80 90"),
			"--red-500":       mustColor("1 1 1"),
			"--surface-alt":   mustColor("2 2 2"),
			"--TEXT_headline": mustColor("3 3 3"),
		})

		Convey("An exact variable wins over the standard palette", func() {
			So(Resolve("txt-primary", reg).MustGet().RGBA(), ShouldEqual, "rgba(10, 20, 30, 1)")
			So(Resolve("red-500", reg).MustGet().RGBA(), ShouldEqual, "rgba(1, 1, 1, 1)")
		})

		Convey("txt- aliases text- variables", func() {
			So(Resolve("txt-muted", reg).MustGet().RGBA(), ShouldEqual, "rgba(40, 50, 60, 1)")
		})

		Convey("Normalized names match case and underscore variants", func() {
			So(Resolve("brand-accent", reg).MustGet().RGBA(), ShouldEqual, "rgba(70, 80, 90, 1)")
			So(Resolve("txt-headline", reg).MustGet().RGBA(), ShouldEqual, "rgba(3, 3, 3, 1)")
		})

		Convey("Unknown names fall through to the palette", func() {
			So(Resolve("blue-500", reg).MustGet().RGBA(), ShouldEqual, "rgba(59, 130, 246, 1)")
			So(Resolve("unknown-thing", reg).IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given an empty registry", t, func() {
		empty := Static(map[string]color.Parsed{})

		Convey("The standard palette is used", func() {
			So(Resolve("red-500", empty).MustGet().RGBA(), ShouldEqual, "rgba(239, 68, 68, 1)")
			So(Resolve("slate-950", empty).MustGet().RGBA(), ShouldEqual, "rgba(2, 6, 23, 1)")
			So(Resolve("red-501", empty).IsAbsent(), ShouldBeTrue)
		})

		Convey("A bare family resolves to shade 500", func() {
			So(Resolve("emerald", empty).MustGet().RGBA(), ShouldEqual, "rgba(16, 185, 129, 1)")
			So(Resolve("transparent", empty).IsAbsent(), ShouldBeTrue)
		})

		Convey("A nil registry behaves like an empty one", func() {
			So(Resolve("red-500", nil).MustGet().RGBA(), ShouldEqual, "rgba(239, 68, 68, 1)")
		})
	})
}

func TestResolverCache(t *testing.T) {
	Convey("Given a resolver", t, func() {
		r := &Resolver{}
		colors := map[string]color.Parsed{"--Primary": mustColor("1 2 3")}
		reg := Static(colors)

		So(r.Resolve("primary", reg).MustGet().RGBA(), ShouldEqual, "rgba(1, 2, 3, 1)")

		Convey("The normalized map is reused while the registry identity is unchanged", func() {
			colors["--Secondary"] = mustColor("4 5 6")
			So(r.Resolve("secondary", reg).IsAbsent(), ShouldBeTrue)
		})

		Convey("A new registry identity invalidates the cache", func() {
			next := Static(map[string]color.Parsed{"--Secondary": mustColor("4 5 6")})
			So(r.Resolve("secondary", next).MustGet().RGBA(), ShouldEqual, "rgba(4, 5, 6, 1)")
			So(r.Resolve("primary", next).IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestPaletteListing(t *testing.T) {
	Convey("Palette families and shades are listed in order", t, func() {
		So(Families(), ShouldContain, "red")
		So(len(Families()), ShouldEqual, 22)
		So(Shades("red"), ShouldResemble, []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"})
		So(Shades("nope"), ShouldBeEmpty)
	})
}
