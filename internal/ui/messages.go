package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fscout/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for the spinner animation
type tickMsg time.Time

// openResultMsg contains the result of launching a path
type openResultMsg struct {
	path string
	err  error
}

// previewDoneMsg contains the result of showing a file in the pager
type previewDoneMsg struct {
	path string
	err  error
}

// clearStatusMsg clears a transient status message
type clearStatusMsg struct{}

// clearStatusAfter schedules a status wipe once the message has had time
// to be read.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
