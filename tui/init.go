package tui

import tea "github.com/charmbracelet/bubbletea"

func (b *statefulBubble) Init() tea.Cmd {
	cmds := []tea.Cmd{b.startLoading(), b.rebuild()}
	if b.options.Watch {
		cmds = append(cmds, b.waitForRebuild())
	}
	return tea.Batch(cmds...)
}
