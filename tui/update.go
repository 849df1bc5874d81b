package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmds = append(cmds, uiCmd)
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, tea.Batch(cmds...)
	case rebuiltMsg:
		return b, tea.Batch(append(cmds, b.handleRebuilt(msg))...)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch b.state {
	case loadingState:
		cmd = b.updateLoading(msg)
	case variablesState:
		cmd = b.updateVariables(msg)
	case modesState:
		cmd = b.updateModes(msg)
	case breakdownState:
		cmd = b.updateBreakdown(msg)
	case errorState:
		cmd = b.updateError(msg)
	}

	return b, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return nil
	}

	var cmd tea.Cmd
	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateVariables(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && b.variablesC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.variablesC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}
			b.selected = item.FilterValue()
			b.refresh()
			b.breakdownC.ResetSelected()
			b.newState(breakdownState)
			return nil
		case bubblesKey.Matches(msg, b.keymap.nextMode):
			return b.setMode(nextMode(b.modes, b.mode))
		case bubblesKey.Matches(msg, b.keymap.selectMode):
			b.newState(modesState)
			return nil
		case bubblesKey.Matches(msg, b.keymap.saveMode):
			return b.rememberMode()
		case bubblesKey.Matches(msg, b.keymap.rescan):
			return tea.Batch(b.startLoading(), b.rebuild())
		}
	}

	b.variablesC, cmd = b.variablesC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateModes(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.modesC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}
			cmd = b.setMode(item.FilterValue())
			b.previousState()
			return cmd
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return nil
		}
	}

	b.modesC, cmd = b.modesC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateBreakdown(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.nextMode):
			return b.setMode(nextMode(b.modes, b.mode))
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return nil
		}
	}

	b.breakdownC, cmd = b.breakdownC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		}
	}

	return nil
}
