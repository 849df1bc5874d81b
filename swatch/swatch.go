package swatch

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/key"
	"github.com/tintscan/tintscan/style"
)

// Renderer draws color blocks and remembers the most recent ones.
type Renderer struct {
	width int
	cache *Cache[string, string]
}

// New returns a renderer drawing blocks width cells wide, caching up to capacity swatches.
func New(capacity, width int) *Renderer {
	if width < 1 {
		width = 1
	}
	return &Renderer{width: width, cache: NewCache[string, string](capacity)}
}

var (
	defaultRenderer *Renderer
	defaultOnce     sync.Once
)

// Default returns the renderer configured by swatch.cache_size and swatch.width.
func Default() *Renderer {
	defaultOnce.Do(func() {
		defaultRenderer = New(viper.GetInt(key.SwatchCacheSize), viper.GetInt(key.SwatchWidth))
	})
	return defaultRenderer
}

// Block renders a solid block of the color.
func (r *Renderer) Block(c color.Parsed) string {
	k := fmt.Sprintf("block|%s|%d", c.RGBA(), r.width)
	return r.cache.GetOrPut(k, func() string {
		return style.Bg(c.Lipgloss())(strings.Repeat(" ", r.width))
	})
}

// Chip renders the color's hex code on a background of the color itself.
func (r *Renderer) Chip(c color.Parsed) string {
	k := "chip|" + c.RGBA()
	return r.cache.GetOrPut(k, func() string {
		fg := color.Black
		if c.IsDark() {
			fg = color.HiWhite
		}
		return style.Tag(fg, c.Lipgloss())(c.Hex())
	})
}

// Cached reports how many rendered swatches are held.
func (r *Renderer) Cached() int {
	return r.cache.Len()
}
