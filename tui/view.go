package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/tintscan/tintscan/color"
	"github.com/tintscan/tintscan/icon"
	"github.com/tintscan/tintscan/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case variablesState:
		output = listExtraPaddingStyle.Render(b.variablesC.View())
	case modesState:
		output = listExtraPaddingStyle.Render(b.modesC.View())
	case breakdownState:
		output = listExtraPaddingStyle.Render(b.breakdownC.View())
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Scanning"),
			"",
			b.spinnerC.View() + " " + style.Fg(color.Purple)(b.workspace.Root()),
		},
	)
}

func (b *statefulBubble) viewError() string {
	body := style.Fg(style.ErrorColor)(fmt.Sprintf("%v", b.lastError))
	if b.width > 0 {
		body = wrap.String(body, b.width)
	}

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			body,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
