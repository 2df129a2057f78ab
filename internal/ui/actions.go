package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lunchdesk/lunchdesk/pkg/query"
)

// actionTimeout bounds one action's request
const actionTimeout = 30 * time.Second

// Action is a change applied to the selected row, such as completing an order
type Action struct {
	Key key.Binding
	// Confirm asks for a second press of the same key before running
	Confirm bool
	// Run applies the change and returns the status line to show
	Run func(ctx context.Context, rec query.Record) (string, error)
}

// Option configures a Model
type Option func(*Model)

// WithActions binds row actions to their keys
func WithActions(actions ...Action) Option {
	return func(m *Model) {
		m.actions = append(m.actions, actions...)
	}
}

// WithRefresh replaces the refresh key's default of refetching the source.
// Refreshing through the cache layer keeps every list sharing it in step.
func WithRefresh(fn func()) Option {
	return func(m *Model) {
		m.onRefresh = fn
	}
}

// actionDoneMsg reports the outcome of a row action
type actionDoneMsg struct {
	status string
	err    error
}

// matchAction returns the action bound to msg
func (m *Model) matchAction(msg tea.KeyMsg) (int, bool) {
	for i, a := range m.actions {
		if key.Matches(msg, a.Key) {
			return i, true
		}
	}
	return 0, false
}

// selected returns the record under the cursor
func (m *Model) selected() (query.Record, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.snap.Items) {
		return nil, false
	}
	return m.snap.Items[i], true
}

// triggerAction runs the action at index i on the selected row, asking first when it needs confirming
func (m *Model) triggerAction(i int) tea.Cmd {
	a := m.actions[i]
	rec, ok := m.selected()
	if !ok {
		m.setStatus("Nothing selected", false)
		return nil
	}

	if a.Confirm && m.pending != i+1 {
		m.pending = i + 1
		m.setStatus(fmt.Sprintf("Press %s again to %s", a.Key.Help().Key, a.Key.Help().Desc), false)
		return nil
	}
	m.pending = 0
	m.setStatus("Working...", false)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		status, err := a.Run(ctx, rec)
		return actionDoneMsg{status: status, err: err}
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.message = msg
	m.messageErr = isErr
}

// helpKeys adds the row actions to the key help
type helpKeys struct {
	keyMap
	actions []Action
}

func (h helpKeys) ShortHelp() []key.Binding {
	out := h.keyMap.ShortHelp()
	for _, a := range h.actions {
		out = append(out, a.Key)
	}
	return out
}

func (h helpKeys) FullHelp() [][]key.Binding {
	out := h.keyMap.FullHelp()
	if len(h.actions) == 0 {
		return out
	}
	row := make([]key.Binding, len(h.actions))
	for i, a := range h.actions {
		row[i] = a.Key
	}
	return append(out, row)
}
