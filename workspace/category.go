// Package workspace discovers source files, feeds them into a color registry, and keeps the
// registry current as files change.
package workspace

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Category is a family of source files sharing an extension set.
type Category struct {
	Name       string
	Extensions []string
	// Defines marks files that may contain custom-property definitions.
	Defines bool
	// Classes marks files whose text may carry Tailwind class names.
	Classes bool
}

// Categories is the fixed set of supported categories.
var Categories = []Category{
	{Name: "css", Extensions: []string{".css", ".scss", ".sass", ".less", ".pcss", ".postcss"}, Defines: true},
	{Name: "html", Extensions: []string{".html", ".htm"}, Defines: true, Classes: true},
	{Name: "jsx", Extensions: []string{".js", ".jsx", ".mjs", ".ts", ".tsx"}, Classes: true},
	{Name: "vue", Extensions: []string{".vue"}, Defines: true, Classes: true},
	{Name: "svelte", Extensions: []string{".svelte"}, Defines: true, Classes: true},
	{Name: "astro", Extensions: []string{".astro"}, Defines: true, Classes: true},
}

// CategoryNames lists the supported category names.
func CategoryNames() []string {
	return lo.Map(Categories, func(c Category, _ int) string { return c.Name })
}

// CategoryOf returns the category of a path among the enabled ones.
func CategoryOf(path string, enabled []string) mo.Option[Category] {
	ext := strings.ToLower(filepath.Ext(path))

	for _, c := range Categories {
		if lo.Contains(enabled, c.Name) && lo.Contains(c.Extensions, ext) {
			return mo.Some(c)
		}
	}

	return mo.None[Category]()
}
