package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/constant"
	"github.com/tintscan/tintscan/icon"
	"github.com/tintscan/tintscan/key"
	"github.com/tintscan/tintscan/registry"
	"github.com/tintscan/tintscan/style"
	"github.com/tintscan/tintscan/swatch"
	"github.com/tintscan/tintscan/util"
)

type variableEntry struct {
	name     string
	color    color.Parsed
	contexts int
}

type modeEntry string

// listItem wraps the values shown by the browser's lists.
type listItem struct {
	internal any
	marked   bool
}

func (t *listItem) getMark() string {
	return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark))
}

func withSwatch(c color.Parsed, text string) string {
	if !viper.GetBool(key.TUIShowSwatches) {
		return text
	}
	return swatch.Default().Block(c) + " " + text
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *variableEntry:
		title = withSwatch(e.color, e.name)
	case registry.ContextColor:
		title = withSwatch(e.Color, e.Context)
	case modeEntry:
		title = string(e)
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, t.getMark())
	}

	return
}

func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *variableEntry:
		parts := []string{
			e.color.RGBA(),
			style.Fg(style.FaintColor)(e.color.Hex()),
		}
		if e.contexts > 1 {
			parts = append(parts, style.Fg(style.Yellow)(util.Quantify(e.contexts, "context", "contexts")))
		}
		description = strings.Join(parts, " • ")
	case registry.ContextColor:
		description = e.Color.RGBA() + " • " + style.Fg(style.FaintColor)(e.Color.Hex())
	case modeEntry:
		if string(e) == constant.ModeAuto {
			description = "last definition wins"
		} else {
			description = "prefer ." + string(e) + " definitions"
		}
	}

	return
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *variableEntry:
		return e.name
	case registry.ContextColor:
		return e.Context
	case modeEntry:
		return string(e)
	default:
		return ""
	}
}
