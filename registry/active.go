package registry

import (
	"sort"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tintscan/tintscan/color"
)

// Active is an immutable variable → color snapshot produced by Registry.Rebuild.
// It implements tailwind.Registry; its pointer identity changes on every rebuild.
type Active struct {
	mode   string
	colors map[string]color.Parsed
}

func newActive(mode string, colors map[string]color.Parsed) *Active {
	if colors == nil {
		colors = make(map[string]color.Parsed)
	}
	return &Active{mode: mode, colors: colors}
}

// Mode returns the resolution mode the snapshot was built for.
func (a *Active) Mode() string {
	return a.mode
}

// Len returns the number of variables with an active color.
func (a *Active) Len() int {
	return len(a.colors)
}

// Lookup returns the active color of a variable.
func (a *Active) Lookup(name string) mo.Option[color.Parsed] {
	if c, ok := a.colors[name]; ok {
		return mo.Some(c)
	}
	return mo.None[color.Parsed]()
}

// Range calls fn for every variable in name order until fn returns false.
func (a *Active) Range(fn func(name string, c color.Parsed) bool) {
	names := lo.Keys(a.colors)
	sort.Strings(names)

	for _, name := range names {
		if !fn(name, a.colors[name]) {
			return
		}
	}
}
