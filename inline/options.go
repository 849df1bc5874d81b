package inline

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/samber/mo"
)

// VariableFilter selects which variables appear in the report.
type VariableFilter func(name string) bool

// Options configures a non-interactive report.
type Options struct {
	Out io.Writer
	// Root is the workspace directory to scan.
	Root string
	// Mode is the resolution mode; empty means auto.
	Mode       string
	Categories []string
	Ignore     []string
	Json       bool
	// Breakdown includes every context's color per variable.
	Breakdown bool
	Filter    mo.Option[VariableFilter]
}

// ParseVariableFilter parses a variable selector.
//
//	all          every variable
//	@text@       names containing text
//	--bg*        shell-style pattern
//	--bg         exact name
func ParseVariableFilter(description string) (VariableFilter, error) {
	switch {
	case description == "all":
		return func(string) bool { return true }, nil

	case len(description) > 2 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@"):
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(name string) bool {
			return strings.Contains(strings.ToLower(name), sub)
		}, nil

	case strings.ContainsAny(description, "*?["):
		if _, err := path.Match(description, ""); err != nil {
			return nil, fmt.Errorf("invalid variable pattern %q: %w", description, err)
		}
		return func(name string) bool {
			ok, _ := path.Match(description, name)
			return ok
		}, nil

	case strings.HasPrefix(description, "--"):
		return func(name string) bool { return name == description }, nil
	}

	return nil, fmt.Errorf("invalid variable filter: %s", description)
}
