// Package tui implements the interactive color browser.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tintscan/tintscan/workspace"
)

// Options configures the browser.
type Options struct {
	Workspace *workspace.Workspace
	// Mode is the initial resolution mode.
	Mode string
	// Watch keeps the registry current while the browser is open.
	Watch    bool
	Debounce time.Duration
}

// Run opens the browser and blocks until it is closed.
func Run(options *Options) error {
	bubble := newBubble(options)
	bubble.newState(loadingState)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if options.Watch {
		go bubble.watch(ctx, bubble.mode)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
