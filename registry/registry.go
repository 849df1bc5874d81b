// Package registry maintains the context-aware color registry: which CSS custom properties are
// defined, under which class-selector contexts, and which color is active for each variable
// under the selected resolution mode.
//
// A Registry is not safe for concurrent use. Callers serialize scans and rebuilds;
// readers only query after a rebuild has completed.
package registry

import (
	"sort"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/constant"
	"github.com/tintscan/tintscan/log"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ContextColor is one entry of a variable's per-context breakdown.
type ContextColor struct {
	Context string
	Color   color.Parsed
}

// Stats summarizes the registry contents.
type Stats struct {
	Variables   int
	Contexts    int
	Definitions int
}

// Registry maps variable → context → color and derives the active view from it.
type Registry struct {
	contexts    map[string]struct{}
	contextual  map[string]*orderedmap.OrderedMap[string, color.Parsed]
	latest      map[string]color.Parsed
	definitions int

	active *Active
}

// New returns an empty registry whose active view is empty and in auto mode.
func New() *Registry {
	r := &Registry{}
	r.reset()
	r.active = newActive(constant.ModeAuto, nil)
	return r
}

func (r *Registry) reset() {
	r.contexts = make(map[string]struct{})
	r.contextual = make(map[string]*orderedmap.OrderedMap[string, color.Parsed])
	r.latest = make(map[string]color.Parsed)
	r.definitions = 0
}

// ClearAll resets the detected contexts and the contextual registry.
// The active view is left untouched until the next Rebuild.
func (r *Registry) ClearAll() {
	r.reset()
}

// define records a definition, overwriting an earlier one for the same variable and context.
func (r *Registry) define(variable, context string, c color.Parsed) {
	contexts, ok := r.contextual[variable]
	if !ok {
		contexts = orderedmap.New[string, color.Parsed]()
		r.contextual[variable] = contexts
	}

	contexts.Set(context, c)
	r.latest[variable] = c
	r.definitions++
}

// Rebuild recomputes the active view for a resolution mode: "auto" takes the last definition of
// each variable, any other mode takes that context's color or falls back to another context.
func (r *Registry) Rebuild(mode string) {
	if mode == "" {
		mode = constant.ModeAuto
	}

	colors := make(map[string]color.Parsed, len(r.contextual))
	for variable := range r.contextual {
		if c, ok := r.ColorForMode(variable, mode).Get(); ok {
			colors[variable] = c
		}
	}

	r.active = newActive(mode, colors)

	log.WithFields(log.DebugLevel, log.Fields{
		"mode":      mode,
		"variables": len(colors),
		"contexts":  len(r.contexts),
	}, "rebuilt active colors")
}

// Mode returns the resolution mode of the current active view.
func (r *Registry) Mode() string {
	return r.active.Mode()
}

// Active returns the current active view. Each Rebuild replaces it with a new snapshot.
func (r *Registry) Active() *Active {
	return r.active
}

// ActiveColor returns the active color of a variable.
func (r *Registry) ActiveColor(variable string) mo.Option[color.Parsed] {
	return r.active.Lookup(variable)
}

// ColorForMode returns the variable's color in the given context. When the variable has no
// definition there, the global definition is used, then the first context it was defined in.
// In auto mode the last definition is returned.
func (r *Registry) ColorForMode(variable, mode string) mo.Option[color.Parsed] {
	contexts, ok := r.contextual[variable]
	if !ok || contexts.Len() == 0 {
		return mo.None[color.Parsed]()
	}

	if mode == constant.ModeAuto {
		if c, ok := r.latest[variable]; ok {
			return mo.Some(c)
		}
	}

	if c, ok := contexts.Get(mode); ok {
		return mo.Some(c)
	}

	if c, ok := contexts.Get(constant.GlobalContext); ok {
		return mo.Some(c)
	}

	return mo.Some(contexts.Oldest().Value)
}

// ContextBreakdown lists every context the variable is defined in, sorted by context name.
func (r *Registry) ContextBreakdown(variable string) []ContextColor {
	contexts, ok := r.contextual[variable]
	if !ok {
		return nil
	}

	breakdown := make([]ContextColor, 0, contexts.Len())
	for pair := contexts.Oldest(); pair != nil; pair = pair.Next() {
		breakdown = append(breakdown, ContextColor{Context: pair.Key, Color: pair.Value})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Context < breakdown[j].Context
	})

	return breakdown
}

// DetectedContexts lists the class-selector contexts seen since the last clear, sorted.
func (r *Registry) DetectedContexts() []string {
	contexts := lo.Keys(r.contexts)
	sort.Strings(contexts)
	return contexts
}

// Variables lists every variable with at least one definition, sorted.
func (r *Registry) Variables() []string {
	variables := lo.Keys(r.contextual)
	sort.Strings(variables)
	return variables
}

// Stats summarizes the registry contents.
func (r *Registry) Stats() Stats {
	return Stats{
		Variables:   len(r.contextual),
		Contexts:    len(r.contexts),
		Definitions: r.definitions,
	}
}
