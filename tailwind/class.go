// Package tailwind parses Tailwind utility class names and resolves their color part,
// first against project-defined CSS variables and then against the standard palette.
package tailwind

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Modifiers are the variant prefixes stripped before a class is matched.
var Modifiers = []string{
	"hover", "focus", "active", "disabled", "visited", "checked",
	"first", "last", "odd", "even", "group-hover", "dark",
	"sm", "md", "lg", "xl", "2xl",
}

// Prefixes are the color-bearing utilities.
var Prefixes = []string{
	"text", "bg", "border", "from", "to", "via", "ring", "divide",
	"decoration", "accent", "caret", "outline", "fill", "stroke",
}

// Class is a color utility split into its utility prefix and color name.
type Class struct {
	Prefix    string `json:"prefix"`
	ColorName string `json:"color_name"`
}

// ParseClass splits a token like "md:hover:bg-red-500/50" into {bg, red-500}.
func ParseClass(token string) mo.Option[Class] {
	rest := stripModifiers(token)

	for _, prefix := range Prefixes {
		name, ok := strings.CutPrefix(rest, prefix+"-")
		if !ok {
			continue
		}

		name, _, _ = strings.Cut(name, "/")
		if name == "" {
			return mo.None[Class]()
		}

		return mo.Some(Class{Prefix: prefix, ColorName: name})
	}

	return mo.None[Class]()
}

func stripModifiers(token string) string {
	for {
		head, tail, found := strings.Cut(token, ":")
		if !found || !lo.Contains(Modifiers, head) {
			return token
		}
		token = tail
	}
}
