package registry

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tintscan/tintscan/color"
)

const themes = `:root {
  --surface: 255 255 255;
  --accent: 59 130 246;
}

.light {
  --a: 1 2 3;
}
.dark {
  --a: 4 5 6;
  --surface: 15 23 42;
}
`

func rgba(r *Registry, variable, mode string) string {
	c, ok := r.ColorForMode(variable, mode).Get()
	if !ok {
		return ""
	}
	return c.RGBA()
}

func breakdownContexts(r *Registry, variable string) []string {
	return lo.Map(r.ContextBreakdown(variable), func(c ContextColor, _ int) string {
		return c.Context
	})
}

func TestContextTracking(t *testing.T) {
	Convey("Given CSS with light and dark scopes", t, func() {
		r := New()
		r.Scan(themes, ScanReplace)
		r.Rebuild("auto")

		Convey("Definitions are attributed to their scope", func() {
			So(rgba(r, "--a", "light"), ShouldEqual, "rgba(1, 2, 3, 1)")
			So(rgba(r, "--a", "dark"), ShouldEqual, "rgba(4, 5, 6, 1)")
			So(breakdownContexts(r, "--surface"), ShouldResemble, []string{"dark", "global"})
		})

		Convey("Auto mode picks the last definition", func() {
			So(r.ActiveColor("--a").MustGet().RGBA(), ShouldEqual, "rgba(4, 5, 6, 1)")
			So(r.ActiveColor("--surface").MustGet().RGBA(), ShouldEqual, "rgba(15, 23, 42, 1)")
			So(r.Mode(), ShouldEqual, "auto")
		})

		Convey("A named mode prefers its own context, then global", func() {
			r.Rebuild("light")
			So(r.ActiveColor("--a").MustGet().RGBA(), ShouldEqual, "rgba(1, 2, 3, 1)")
			So(r.ActiveColor("--surface").MustGet().RGBA(), ShouldEqual, "rgba(255, 255, 255, 1)")
			So(r.ActiveColor("--accent").MustGet().RGBA(), ShouldEqual, "rgba(59, 130, 246, 1)")
		})

		Convey("An unknown mode still yields one color per variable", func() {
			r.Rebuild("sepia")
			So(r.Active().Len(), ShouldEqual, 3)
			So(r.ActiveColor("--a").MustGet().RGBA(), ShouldEqual, "rgba(1, 2, 3, 1)")
		})

		Convey("Contexts are detected", func() {
			So(r.DetectedContexts(), ShouldResemble, []string{"dark", "light"})
		})

		Convey("Unknown variables yield nothing", func() {
			So(r.ActiveColor("--missing").IsAbsent(), ShouldBeTrue)
			So(r.ColorForMode("--missing", "dark").IsAbsent(), ShouldBeTrue)
			So(r.ContextBreakdown("--missing"), ShouldBeEmpty)
		})
	})

	Convey("Given one-line scope bodies", t, func() {
		r := New()
		r.Scan(".light { --a: 1 2 3; }\n.dark { --a: 4 5 6; }", ScanReplace)
		r.Rebuild("auto")

		So(rgba(r, "--a", "light"), ShouldEqual, "rgba(1, 2, 3, 1)")
		So(rgba(r, "--a", "dark"), ShouldEqual, "rgba(4, 5, 6, 1)")
		So(r.ActiveColor("--a").MustGet().RGBA(), ShouldEqual, "rgba(4, 5, 6, 1)")
		So(breakdownContexts(r, "--a"), ShouldNotContain, "global")
	})

	Convey("Given scopes nested in an at-rule", t, func() {
		r := New()
		r.Scan(`@media (prefers-color-scheme: dark) {
  .dark {
    --bg: 0 0 0;
  }
  --inner: 1 1 1;
}
--outer: 2 2 2;`, ScanReplace)

		So(breakdownContexts(r, "--bg"), ShouldResemble, []string{"dark"})
		So(breakdownContexts(r, "--inner"), ShouldResemble, []string{"global"})
		So(breakdownContexts(r, "--outer"), ShouldResemble, []string{"global"})
	})

	Convey("Given compound and descendant selectors", t, func() {
		r := New()
		r.Scan(`.theme.dark {
  --a: 1 1 1;
}
.card .title {
  --b: 2 2 2;
}
html.dark {
  --c: 3 3 3;
}`, ScanReplace)

		So(breakdownContexts(r, "--a"), ShouldResemble, []string{"global"})
		So(breakdownContexts(r, "--b"), ShouldResemble, []string{"global"})
		So(breakdownContexts(r, "--c"), ShouldResemble, []string{"dark"})
		So(r.DetectedContexts(), ShouldResemble, []string{"dark"})
	})

	Convey("Given a one-line scope with a decimal alpha value", t, func() {
		r := New()
		r.Scan(".dim { --shade: 0 0 0 / 0.5; }", ScanReplace)

		So(r.DetectedContexts(), ShouldBeEmpty)
		So(breakdownContexts(r, "--shade"), ShouldResemble, []string{"global"})
		So(rgba(r, "--shade", "global"), ShouldEqual, "rgba(0, 0, 0, 0.5)")
	})

	Convey("Given two scope blocks on one line", t, func() {
		r := New()
		r.Scan(".light { --a: 1 2 3; } .dark { --a: 4 5 6; }", ScanReplace)
		r.Rebuild("auto")

		So(r.DetectedContexts(), ShouldBeEmpty)
		So(breakdownContexts(r, "--a"), ShouldResemble, []string{"global"})
		So(rgba(r, "--a", "light"), ShouldEqual, "rgba(4, 5, 6, 1)")
		So(r.ActiveColor("--a").MustGet().RGBA(), ShouldEqual, "rgba(4, 5, 6, 1)")
	})
}

func TestDefinitions(t *testing.T) {
	Convey("Given lines with several or invalid definitions", t, func() {
		r := New()
		r.Scan(`:root { --a: 1 2 3; --b: 4 5 6 / 0.25; --c: #fff; --d: 300 0 0; }
--e: hsl(0 0% 0%);
--a: 7 8 9;`, ScanReplace)
		r.Rebuild("auto")

		Convey("Every valid definition on a line is recorded", func() {
			So(r.Variables(), ShouldResemble, []string{"--a", "--b"})
			So(r.ActiveColor("--b").MustGet().RGBA(), ShouldEqual, "rgba(4, 5, 6, 0.25)")
		})

		Convey("A later definition in the same context overwrites the earlier one", func() {
			So(rgba(r, "--a", "global"), ShouldEqual, "rgba(7, 8, 9, 1)")
			So(len(r.ContextBreakdown("--a")), ShouldEqual, 1)
			So(r.Stats().Definitions, ShouldEqual, 3)
		})
	})
}

func TestScanModes(t *testing.T) {
	fileA := ".light {\n  --x: 10 10 10;\n  --only-a: 1 1 1;\n}"
	fileB := ".dark {\n  --x: 20 20 20;\n}"

	Convey("Given two files", t, func() {
		r := New()

		Convey("Merge-scans accumulate both files' contexts", func() {
			r.ClearAll()
			r.Scan(fileA, ScanMerge)
			r.Scan(fileB, ScanMerge)
			r.Rebuild("auto")

			So(breakdownContexts(r, "--x"), ShouldResemble, []string{"dark", "light"})
			So(r.DetectedContexts(), ShouldResemble, []string{"dark", "light"})
			So(r.ActiveColor("--only-a").IsPresent(), ShouldBeTrue)

			Convey("Auto mode follows scan order across files", func() {
				So(r.ActiveColor("--x").MustGet().RGBA(), ShouldEqual, "rgba(20, 20, 20, 1)")
			})
		})

		Convey("A replace-scan discards other files' contributions", func() {
			r.Scan(fileA, ScanMerge)
			r.Scan(fileB, ScanReplace)
			r.Rebuild("auto")

			So(breakdownContexts(r, "--x"), ShouldResemble, []string{"dark"})
			So(r.ActiveColor("--only-a").IsAbsent(), ShouldBeTrue)
			So(r.DetectedContexts(), ShouldResemble, []string{"dark"})
		})

		Convey("Replace-scanning the same content twice is idempotent", func() {
			r.Scan(themes, ScanReplace)
			first := r.Stats()
			firstBreakdown := r.ContextBreakdown("--surface")

			r.Scan(themes, ScanReplace)
			So(r.Stats(), ShouldResemble, first)
			So(r.ContextBreakdown("--surface"), ShouldResemble, firstBreakdown)
			So(r.Variables(), ShouldResemble, []string{"--a", "--accent", "--surface"})
		})
	})
}

func TestMalformedInput(t *testing.T) {
	Convey("Given unbalanced braces", t, func() {
		r := New()

		So(func() {
			r.Scan("}\n}}\n.light {\n  --a: 1 2 3;\n}\n.dark {\n  --a: 4 5 6;\n}", ScanReplace)
		}, ShouldNotPanic)
		r.Rebuild("auto")

		Convey("Later context blocks still parse", func() {
			So(rgba(r, "--a", "light"), ShouldEqual, "rgba(1, 2, 3, 1)")
			So(rgba(r, "--a", "dark"), ShouldEqual, "rgba(4, 5, 6, 1)")
		})
	})

	Convey("Given an unclosed scope at end of input", t, func() {
		r := New()
		So(func() { r.Scan(".light {\n--a: 1 2 3;", ScanReplace) }, ShouldNotPanic)
		So(breakdownContexts(r, "--a"), ShouldResemble, []string{"light"})

		Convey("The next scan starts with a fresh scope stack", func() {
			r.Scan("--b: 1 1 1;", ScanMerge)
			So(breakdownContexts(r, "--b"), ShouldResemble, []string{"global"})
		})
	})

	Convey("Given empty and CRLF input", t, func() {
		r := New()
		r.Scan("", ScanReplace)
		So(r.Stats(), ShouldResemble, Stats{})

		r.Scan(".dark {\r\n  --a: 1 2 3;\r\n}\r\n--b: 4 5 6;\r\n", ScanReplace)
		So(breakdownContexts(r, "--a"), ShouldResemble, []string{"dark"})
		So(breakdownContexts(r, "--b"), ShouldResemble, []string{"global"})
	})
}

func TestActiveSnapshot(t *testing.T) {
	Convey("Each rebuild publishes a new active snapshot", t, func() {
		r := New()
		r.Scan(themes, ScanReplace)

		r.Rebuild("auto")
		first := r.Active()
		r.Rebuild("dark")
		So(r.Active(), ShouldNotPointTo, first)
		So(first.Mode(), ShouldEqual, "auto")
		So(r.Mode(), ShouldEqual, "dark")

		Convey("ClearAll leaves the active view until the next rebuild", func() {
			r.ClearAll()
			So(r.ActiveColor("--a").IsPresent(), ShouldBeTrue)
			r.Rebuild("dark")
			So(r.ActiveColor("--a").IsAbsent(), ShouldBeTrue)
		})

		Convey("Range visits variables in name order", func() {
			var names []string
			r.Active().Range(func(name string, _ color.Parsed) bool {
				names = append(names, name)
				return true
			})
			So(names, ShouldResemble, []string{"--a", "--accent", "--surface"})
		})

		Convey("An empty mode means auto", func() {
			r.Rebuild("")
			So(r.Mode(), ShouldEqual, "auto")
		})
	})
}
