package tailwind

import (
	"strings"
	"sync"

	"github.com/samber/mo"
	"github.com/tintscan/tintscan/color"
)

// Registry is a read-only variable → color view, typically the registry's active snapshot.
// Implementations must be comparable (pointer types): the resolver keys its normalized
// cache on registry identity.
type Registry interface {
	Lookup(name string) mo.Option[color.Parsed]
	Range(fn func(name string, c color.Parsed) bool)
}

// Resolver resolves color names and caches the normalized view of the last registry it saw.
type Resolver struct {
	mu         sync.Mutex
	source     Registry
	normalized map[string]color.Parsed
}

var defaultResolver = &Resolver{}

// Resolve resolves a color name with the package-level resolver.
func Resolve(colorName string, reg Registry) mo.Option[color.Parsed] {
	return defaultResolver.Resolve(colorName, reg)
}

// Resolve tries, in order: the exact variable, the txt- alias, the normalized variable name,
// the standard palette family/shade, and a bare family at shade 500.
func (r *Resolver) Resolve(colorName string, reg Registry) mo.Option[color.Parsed] {
	if colorName == "" {
		return mo.None[color.Parsed]()
	}

	if reg != nil {
		if c, ok := reg.Lookup("--" + colorName).Get(); ok {
			return mo.Some(c)
		}

		if rest, ok := strings.CutPrefix(colorName, "txt-"); ok {
			if c, ok := reg.Lookup("--text-" + rest).Get(); ok {
				return mo.Some(c)
			}
		}

		normalized := r.normalizedFor(reg)
		key := normalize(colorName)
		if c, ok := normalized[key]; ok {
			return mo.Some(c)
		}
		if rest, ok := strings.CutPrefix(key, "txt-"); ok {
			if c, ok := normalized["text-"+rest]; ok {
				return mo.Some(c)
			}
		}
	}

	if i := strings.LastIndex(colorName, "-"); i >= 0 {
		return Standard(colorName[:i], colorName[i+1:])
	}

	return Standard(colorName, "500")
}

// normalizedFor returns the cached normalized map, rebuilding it only when reg differs from the last registry.
func (r *Resolver) normalizedFor(reg Registry) map[string]color.Parsed {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.normalized != nil && r.source == reg {
		return r.normalized
	}

	normalized := make(map[string]color.Parsed)
	reg.Range(func(name string, c color.Parsed) bool {
		normalized[normalize(name)] = c
		return true
	})

	r.source = reg
	r.normalized = normalized
	return normalized
}

func normalize(name string) string {
	name = strings.TrimPrefix(name, "--")
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}

// StaticRegistry is a Registry over a fixed map.
type StaticRegistry struct {
	colors map[string]color.Parsed
}

// Static wraps a variable → color map. Every call returns a new identity.
func Static(colors map[string]color.Parsed) *StaticRegistry {
	return &StaticRegistry{colors: colors}
}

// Lookup implements Registry.
func (s *StaticRegistry) Lookup(name string) mo.Option[color.Parsed] {
	if c, ok := s.colors[name]; ok {
		return mo.Some(c)
	}
	return mo.None[color.Parsed]()
}

// Range implements Registry.
func (s *StaticRegistry) Range(fn func(name string, c color.Parsed) bool) {
	for name, c := range s.colors {
		if !fn(name, c) {
			return
		}
	}
}
