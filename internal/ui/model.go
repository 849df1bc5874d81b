// Package ui holds the transient notification line shown at the bottom of the interactive browser.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Lifetime is how long a notification stays visible.
const Lifetime = 3 * time.Second

var notificationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// Model holds the current notification, if any.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// NotificationMsg asks the model to show a notification.
type NotificationMsg string

// ClearNotificationMsg resets the notification.
type ClearNotificationMsg struct {
	at time.Time
}

// Notify returns a command that shows text as a notification.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

func clearAfter(at time.Time) tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{at: at}
	})
}

// Update handles notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		m.notifiedAt = time.Now()
		return clearAfter(m.notifiedAt)
	case ClearNotificationMsg:
		// A newer notification has its own timer.
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the visible notification.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + notificationStyle.Render(m.notification)
	return strings.Join(lines, "\n")
}
