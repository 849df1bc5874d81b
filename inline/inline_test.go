package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/tintscan/tintscan/filesystem"
)

const theme = `:root {
  --accent: 59 130 246;
}
.dark {
  --accent: 96 165 250;
  --bg: 15 23 42 / 0.5;
}
`

func TestRun(t *testing.T) {
	Convey("Given a workspace with one stylesheet", t, func() {
		fs := afero.NewMemMapFs()
		filesystem.SetFs(fs)
		defer filesystem.SetOsFs()

		So(afero.WriteFile(fs, "/proj/theme.css", []byte(theme), 0o644), ShouldBeNil)

		var buf bytes.Buffer
		options := &Options{
			Out:        &buf,
			Root:       "/proj",
			Mode:       "global",
			Categories: []string{"css"},
		}

		Convey("JSON output lists active colors", func() {
			options.Json = true
			So(Run(options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Mode, ShouldEqual, "global")
			So(output.Contexts, ShouldResemble, []string{"dark"})
			So(output.Stats.Files, ShouldEqual, 1)
			So(output.Variables, ShouldHaveLength, 2)
			So(output.Variables[0].Name, ShouldEqual, "--accent")
			So(output.Variables[0].Color.RGBA, ShouldEqual, "rgba(59, 130, 246, 1)")
			So(output.Variables[0].Color.Hex, ShouldEqual, "#3b82f6")
			So(output.Variables[1].Color.RGBA, ShouldEqual, "rgba(15, 23, 42, 0.5)")
			So(output.Variables[0].Contexts, ShouldBeEmpty)
		})

		Convey("The breakdown adds every context", func() {
			options.Json = true
			options.Breakdown = true
			So(Run(options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Variables[0].Contexts, ShouldHaveLength, 2)
			So(output.Variables[0].Contexts[0].Context, ShouldEqual, "dark")
		})

		Convey("Plain output is one line per variable", func() {
			filter, err := ParseVariableFilter("--accent")
			So(err, ShouldBeNil)
			options.Filter = mo.Some(filter)

			So(Run(options), ShouldBeNil)
			So(buf.String(), ShouldEqual, "--accent rgba(59, 130, 246, 1)\n")
		})

		Convey("An empty workspace still produces valid JSON", func() {
			options.Root = "/empty"
			options.Json = true
			So(Run(options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Variables, ShouldHaveLength, 0)
			So(output.Contexts, ShouldHaveLength, 0)
		})
	})
}

func TestParseVariableFilter(t *testing.T) {
	Convey("ParseVariableFilter", t, func() {
		Convey("all matches everything", func() {
			f, err := ParseVariableFilter("all")
			So(err, ShouldBeNil)
			So(f("--x"), ShouldBeTrue)
		})

		Convey("@text@ matches substrings", func() {
			f, err := ParseVariableFilter("@ACC@")
			So(err, ShouldBeNil)
			So(f("--accent"), ShouldBeTrue)
			So(f("--bg"), ShouldBeFalse)
		})

		Convey("Patterns use shell syntax", func() {
			f, err := ParseVariableFilter("--bg-*")
			So(err, ShouldBeNil)
			So(f("--bg-muted"), ShouldBeTrue)
			So(f("--fg-muted"), ShouldBeFalse)
		})

		Convey("Anything else is rejected", func() {
			_, err := ParseVariableFilter("accent")
			So(err, ShouldNotBeNil)

			_, err = ParseVariableFilter("--bg[")
			So(err, ShouldNotBeNil)
		})
	})
}
