package locate

import (
	"github.com/samber/mo"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/registry"
	"github.com/tintscan/tintscan/tailwind"
)

// Resolver joins spans to colors using a registry's active view.
type Resolver struct {
	registry *registry.Registry
	tailwind *tailwind.Resolver
}

// NewResolver returns a resolver reading from reg.
func NewResolver(reg *registry.Registry) *Resolver {
	return &Resolver{registry: reg, tailwind: &tailwind.Resolver{}}
}

// Color resolves a span. A definition value resolves to its own literal color, everything else
// to the active color of the variable or class it names.
func (r *Resolver) Color(span Span) mo.Option[color.Parsed] {
	switch span.Kind {
	case VarUsage, DefinitionName:
		return r.registry.ActiveColor(span.Name)
	case DefinitionValue:
		return color.Parse(span.Text)
	case ClassUsage:
		return r.tailwind.Resolve(span.Name, r.registry.Active())
	default:
		return mo.None[color.Parsed]()
	}
}

// Resolved is a span with its color.
type Resolved struct {
	Span
	Color color.Parsed
}

// Line lists the spans of a line that resolve to a color.
func (r *Resolver) Line(line string, classes bool) []Resolved {
	var resolved []Resolved
	for _, span := range Usages(line, classes) {
		if c, ok := r.Color(span).Get(); ok {
			resolved = append(resolved, Resolved{Span: span, Color: c})
		}
	}
	return resolved
}
