// Package ui is the terminal list browser: a bubbletea program driving one
// list coordinator.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunchdesk/lunchdesk/internal/resources"
	"github.com/lunchdesk/lunchdesk/pkg/query"
)

// Source is the list state a Model browses, implemented by *query.Coordinator[query.Record]
type Source interface {
	SetSearchTerm(v string)
	SetCurrentPage(page int)
	SetFilters(f query.Filters)
	Refetch()
	Flush()
	Snapshot() query.Snapshot[query.Record]
}

var _ Source = (*query.Coordinator[query.Record])(nil)

const defaultTableHeight = 12

// Model represents the UI state
type Model struct {
	resource *resources.Resource
	source   Source
	changes  *Notifier
	styles   *Styles
	keys     keyMap

	search  textinput.Model
	table   table.Model
	spinner spinner.Model
	help    help.Model

	snap query.Snapshot[query.Record]

	actions   []Action
	onRefresh func()
	// pending is one past the index of the action waiting for confirmation
	pending    int
	message    string
	messageErr bool

	width    int
	quitting bool
}

// NewModel creates a model browsing source, redrawn whenever changes fires
func NewModel(res *resources.Resource, source Source, changes *Notifier, styles *Styles, opts ...Option) *Model {
	if styles == nil {
		styles = NewStyles("")
	}

	search := textinput.New()
	search.Prompt = "search: "
	search.Placeholder = "type to search " + strings.ToLower(res.Title)
	search.PromptStyle = styles.Search

	cols := make([]table.Column, len(res.Columns))
	for i, c := range res.Columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
		table.WithStyles(styles.Table),
	)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := &Model{
		resource: res,
		source:   source,
		changes:  changes,
		styles:   styles,
		keys:     defaultKeyMap(),
		search:   search,
		table:    t,
		spinner:  sp,
		help:     help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.changes.Wait(), m.spinner.Tick)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if h := msg.Height - 10; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case ChangedMsg:
		m.refresh()
		return m, m.changes.Wait()

	case actionDoneMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus(msg.status, false)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Apply):
		m.search.Blur()
		m.source.Flush()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != before {
		m.source.SetSearchTerm(v)
	}
	return m, cmd
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if i, ok := m.matchAction(msg); ok {
		return m, m.triggerAction(i)
	}
	if m.pending != 0 {
		m.pending = 0
		m.setStatus("", false)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Prev):
		// the source may be ahead of the last redraw
		snap := m.source.Snapshot()
		if snap.CurrentPage > 1 {
			m.source.SetCurrentPage(snap.CurrentPage - 1)
		}
		return m, nil
	case key.Matches(msg, m.keys.Next):
		snap := m.source.Snapshot()
		if snap.CurrentPage < snap.TotalPages {
			m.source.SetCurrentPage(snap.CurrentPage + 1)
		}
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		m.cycleFilter()
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		if m.onRefresh != nil {
			m.onRefresh()
		} else {
			m.source.Refetch()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// cycleFilter moves the resource's choice filter to its next value, wrapping through "all"
func (m *Model) cycleFilter() {
	f, ok := m.resource.CycleFilter()
	if !ok {
		return
	}

	current, _ := m.snap.Filters[f.Key].(string)
	next := f.Choices[0]
	for i, c := range f.Choices {
		if c == current {
			if i+1 < len(f.Choices) {
				next = f.Choices[i+1]
			} else {
				next = ""
			}
			break
		}
	}

	filters := m.snap.Filters.Clone()
	if next == "" {
		delete(filters, f.Key)
	} else {
		filters[f.Key] = next
	}
	m.source.SetFilters(filters)
}

// refresh pulls a new snapshot and rebuilds the table rows
func (m *Model) refresh() {
	m.snap = m.source.Snapshot()
	rows := make([]table.Row, len(m.snap.Items))
	for i, rec := range m.snap.Items {
		rows[i] = m.resource.Row(rec)
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.resource.Title))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	if line := m.filterLine(); line != "" {
		b.WriteString(m.styles.Filter.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.snap.IsError:
		msg := fmt.Sprintf("Failed to load %s", strings.ToLower(m.resource.Title))
		if m.snap.Err != nil {
			msg += ": " + m.snap.Err.Error()
		}
		b.WriteString(m.styles.StatusError.Render(msg))
		if len(m.snap.Items) > 0 {
			b.WriteString("\n")
			b.WriteString(m.table.View())
		}
	case m.snap.IsLoading && !m.snap.Fetched:
		b.WriteString(m.styles.Placeholder.Render(m.spinner.View() + " Loading..."))
	case len(m.snap.Items) == 0:
		b.WriteString(m.styles.Placeholder.Render("No data"))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(m.statusLine()))
	if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(m.styles.StatusError.Render(m.message))
		} else {
			b.WriteString(m.styles.Filter.Render(m.message))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(helpKeys{keyMap: m.keys, actions: m.actions})))
	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

func (m *Model) statusLine() string {
	status := fmt.Sprintf("Page %d of %d", m.snap.Page, m.snap.TotalPages)
	if m.snap.IsLoading {
		status += " " + m.spinner.View()
	}
	return status
}

func (m *Model) filterLine() string {
	if len(m.snap.Filters) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.resource.Filters))
	for _, f := range m.resource.Filters {
		if v, ok := m.snap.Filters[f.Key]; ok && v != "" {
			parts = append(parts, fmt.Sprintf("%s: %v", f.Label, v))
		}
	}
	return strings.Join(parts, "  ")
}

// Run starts the program in the alternate screen and blocks until the user quits
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
