package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Search      lipgloss.Style
	Filter      lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Placeholder lipgloss.Style
	Help        lipgloss.Style
	Table       table.Styles
}

// NewStyles creates styles for the given theme, "dark" or anything else for light
func NewStyles(theme string) *Styles {
	accent, dim, header := lipgloss.Color("25"), lipgloss.Color("244"), lipgloss.Color("236")
	if theme == "dark" {
		accent, dim, header = lipgloss.Color("99"), lipgloss.Color("241"), lipgloss.Color("252")
	}

	t := table.DefaultStyles()
	t.Header = t.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dim).
		BorderBottom(true).
		Foreground(header).
		Bold(true)
	t.Selected = t.Selected.
		Foreground(lipgloss.Color("229")).
		Background(accent).
		Bold(false)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1),
		Search:      lipgloss.NewStyle().Foreground(accent),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Status:      lipgloss.NewStyle().Foreground(dim).MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Placeholder: lipgloss.NewStyle().Faint(true).Padding(1, 2),
		Help:        lipgloss.NewStyle().Faint(true),
		Table:       t,
	}
}
