package inline

import (
	"github.com/samber/lo"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/registry"
)

// Color is a resolved color in every notation the report uses.
type Color struct {
	RGBA string `json:"rgba" jsonschema:"example=rgba(59, 130, 246, 1)"`
	Hex  string `json:"hex" jsonschema:"example=#3b82f6"`
	// Original is the value text as written in the source.
	Original string `json:"original,omitempty"`
}

// ContextColor is a variable's color within one context.
type ContextColor struct {
	Context string `json:"context"`
	Color   Color  `json:"color"`
}

// Variable is one custom property and its resolved color.
type Variable struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
	// Contexts is present when the breakdown was requested.
	Contexts []ContextColor `json:"contexts,omitempty"`
}

// Stats mirrors registry.Stats.
type Stats struct {
	Files       int `json:"files"`
	Skipped     int `json:"skipped"`
	Variables   int `json:"variables"`
	Contexts    int `json:"contexts"`
	Definitions int `json:"definitions"`
}

// Output is the structured report written in JSON mode.
type Output struct {
	Root      string     `json:"root"`
	Mode      string     `json:"mode"`
	Contexts  []string   `json:"contexts"`
	Stats     Stats      `json:"stats"`
	Variables []Variable `json:"variables"`
}

func newColor(c color.Parsed) Color {
	return Color{
		RGBA:     c.RGBA(),
		Hex:      c.Hex(),
		Original: c.Original(),
	}
}

func breakdown(reg *registry.Registry, variable string) []ContextColor {
	return lo.Map(reg.ContextBreakdown(variable), func(c registry.ContextColor, _ int) ContextColor {
		return ContextColor{Context: c.Context, Color: newColor(c.Color)}
	})
}
