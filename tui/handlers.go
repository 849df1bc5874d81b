package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/tintscan/tintscan/constant"
	"github.com/tintscan/tintscan/history"
	"github.com/tintscan/tintscan/internal/ui"
	"github.com/tintscan/tintscan/log"
	"github.com/tintscan/tintscan/registry"
	"github.com/tintscan/tintscan/util"
	"github.com/tintscan/tintscan/workspace"
)

type rebuiltMsg struct {
	result workspace.Result
	err    error
	// watched marks rebuilds triggered by file changes.
	watched bool
}

func (b *statefulBubble) rebuild() tea.Cmd {
	ws, mode := b.workspace, b.mode
	return func() tea.Msg {
		result, err := ws.Rebuild(mode)
		return rebuiltMsg{result: result, err: err}
	}
}

func (b *statefulBubble) waitForRebuild() tea.Cmd {
	return func() tea.Msg {
		return <-b.rebuiltChannel
	}
}

// watch forwards rebuilds triggered by file changes. A rebuild that arrives while the previous
// one is still unread is dropped; the registry already reflects it.
func (b *statefulBubble) watch(ctx context.Context, mode string) {
	err := b.workspace.Watch(ctx, mode, b.options.Debounce, func(result workspace.Result, err error) {
		select {
		case b.rebuiltChannel <- rebuiltMsg{result: result, err: err, watched: true}:
		default:
		}
	})
	if err != nil {
		log.Error(err)
		select {
		case b.rebuiltChannel <- rebuiltMsg{err: err, watched: true}:
		case <-ctx.Done():
		}
	}
}

func (b *statefulBubble) handleRebuilt(msg rebuiltMsg) tea.Cmd {
	var cmds []tea.Cmd
	if msg.watched {
		cmds = append(cmds, b.waitForRebuild())
	}

	if msg.err != nil {
		b.stopLoading()
		b.raiseError(msg.err)
		return tea.Batch(cmds...)
	}

	// Watch rebuilds run with the mode the browser was opened with.
	if msg.result.Mode != b.mode {
		b.workspace.SetMode(b.mode)
	}

	b.result = msg.result
	b.refresh()

	if b.loading {
		b.stopLoading()
		b.newState(variablesState)
	}

	if msg.watched {
		cmds = append(cmds, ui.Notify(fmt.Sprintf("rebuilt, %s", util.Quantify(msg.result.Stats.Variables, "variable", "variables"))))
	}

	return tea.Batch(cmds...)
}

// refresh reloads every list from the registry.
func (b *statefulBubble) refresh() {
	var variables, breakdown []list.Item

	b.workspace.View(func(reg *registry.Registry) {
		b.modes = append([]string{constant.ModeAuto}, reg.DetectedContexts()...)

		for _, name := range reg.Variables() {
			c, ok := reg.ActiveColor(name).Get()
			if !ok {
				continue
			}
			variables = append(variables, &listItem{internal: &variableEntry{
				name:     name,
				color:    c,
				contexts: len(reg.ContextBreakdown(name)),
			}})
		}

		if b.selected != "" {
			for _, c := range reg.ContextBreakdown(b.selected) {
				breakdown = append(breakdown, &listItem{internal: c, marked: c.Context == b.mode})
			}
		}
	})

	if !lo.Contains(b.modes, b.mode) {
		b.modes = append(b.modes, b.mode)
	}

	b.variablesC.SetItems(variables)
	b.variablesC.Title = fmt.Sprintf("Variables - %s", b.mode)

	b.modesC.SetItems(lo.Map(b.modes, func(mode string, _ int) list.Item {
		return &listItem{internal: modeEntry(mode), marked: mode == b.mode}
	}))

	b.breakdownC.SetItems(breakdown)
	b.breakdownC.Title = fmt.Sprintf("Contexts - %s", b.selected)
}

func (b *statefulBubble) setMode(mode string) tea.Cmd {
	if mode == b.mode {
		return nil
	}

	b.mode = mode
	b.workspace.SetMode(mode)
	b.refresh()

	return ui.Notify("mode " + mode)
}

func (b *statefulBubble) rememberMode() tea.Cmd {
	if err := history.SaveMode(b.workspace.Root(), b.mode); err != nil {
		return func() tea.Msg { return err }
	}
	return ui.Notify(fmt.Sprintf("remembered mode %s", b.mode))
}

// nextMode returns the mode after current, wrapping around.
func nextMode(modes []string, current string) string {
	if len(modes) == 0 {
		return current
	}

	_, index, ok := lo.FindIndexOf(modes, func(m string) bool { return m == current })
	if !ok {
		return modes[0]
	}
	return modes[(index+1)%len(modes)]
}
