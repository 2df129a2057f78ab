package ui

import tea "github.com/charmbracelet/bubbletea"

// ChangedMsg tells the model that its source has new state
type ChangedMsg struct{}

// Notifier forwards coordinator change callbacks into a bubbletea program.
// Notifications coalesce: many changes between two reads produce one message.
type Notifier struct {
	ch chan struct{}
}

// NewNotifier creates a notifier
func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1)}
}

// Notify records a change without blocking. Use it as query.Options.OnChange.
func (n *Notifier) Notify() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// Wait returns a command that delivers the next change as a ChangedMsg
func (n *Notifier) Wait() tea.Cmd {
	return func() tea.Msg {
		<-n.ch
		return ChangedMsg{}
	}
}
