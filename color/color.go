// Package color parses the space-separated RGB(A) channel values used by CSS custom properties
// and provides the curated terminal palette of the CLI.
package color

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/mo"
)

// channelPattern accepts "r g b" or "r g b / a" and nothing else.
var channelPattern = regexp.MustCompile(`^\s*(\d+)\s+(\d+)\s+(\d+)\s*(?:/\s*(\d*\.?\d+)\s*)?$`)

// Parsed is an immutable RGB color with optional alpha.
// The zero value is not a valid color; obtain one through Parse or FromRGB.
type Parsed struct {
	red, green, blue int
	alpha            mo.Option[float64]
	original         string
}

// Parse reads a channel value such as "59 130 246" or "59 130 246 / 0.5".
// Anything else, including out-of-range channels, yields None.
func Parse(text string) mo.Option[Parsed] {
	match := channelPattern.FindStringSubmatch(text)
	if match == nil {
		return mo.None[Parsed]()
	}

	var channels [3]int
	for i := range channels {
		n, err := strconv.Atoi(match[i+1])
		if err != nil || n < 0 || n > 255 {
			return mo.None[Parsed]()
		}
		channels[i] = n
	}

	parsed := Parsed{
		red:      channels[0],
		green:    channels[1],
		blue:     channels[2],
		original: text,
	}

	if match[4] != "" {
		a, err := strconv.ParseFloat(match[4], 64)
		if err != nil || a < 0 || a > 1 {
			return mo.None[Parsed]()
		}
		parsed.alpha = mo.Some(a)
	}

	return mo.Some(parsed)
}

// FromRGB validates three channels the same way Parse does.
func FromRGB(r, g, b int) mo.Option[Parsed] {
	return Parse(fmt.Sprintf("%d %d %d", r, g, b))
}

// R returns the red channel.
func (p Parsed) R() int { return p.red }

// G returns the green channel.
func (p Parsed) G() int { return p.green }

// B returns the blue channel.
func (p Parsed) B() int { return p.blue }

// Alpha returns the alpha channel when one was written.
func (p Parsed) Alpha() mo.Option[float64] { return p.alpha }

// Original returns the text the color was parsed from.
func (p Parsed) Original() string { return p.original }

// RGBA renders the canonical form used as an equality key: rgba(r, g, b, a), a defaulting to 1.
func (p Parsed) RGBA() string {
	return fmt.Sprintf(
		"rgba(%d, %d, %d, %s)",
		p.red, p.green, p.blue,
		strconv.FormatFloat(p.alpha.OrElse(1), 'f', -1, 64),
	)
}

// String implements fmt.Stringer.
func (p Parsed) String() string {
	return p.RGBA()
}

// Same reports whether two colors render to the same canonical string.
func Same(a, b Parsed) bool {
	return a.RGBA() == b.RGBA()
}

func (p Parsed) colorful() colorful.Color {
	return colorful.Color{
		R: float64(p.red) / 255,
		G: float64(p.green) / 255,
		B: float64(p.blue) / 255,
	}
}

// Hex renders the color as #rrggbb, dropping alpha.
func (p Parsed) Hex() string {
	return p.colorful().Hex()
}

// Lipgloss converts the color for terminal rendering.
func (p Parsed) Lipgloss() lipgloss.Color {
	return lipgloss.Color(p.Hex())
}

// IsDark reports whether light text reads better than dark text on top of the color.
func (p Parsed) IsDark() bool {
	l, _, _ := p.colorful().Lab()
	return l < 0.6
}
