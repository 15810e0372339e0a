// Package tui implements the interactive dashboard and focus timer.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/studyflowhq/studyflow/internal/store"
)

// Theme holds the lipgloss styles for one color scheme.
type Theme struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Dim       lipgloss.Style
	Done      lipgloss.Style
	Overdue   lipgloss.Style
	Selected  lipgloss.Style
	Notice    lipgloss.Style
	StatusBar lipgloss.Style
}

// themeFor returns the style set for a theme name from settings.
func themeFor(name string) Theme {
	if name == store.ThemeLight {
		return Theme{
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
			Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("240")),
			Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
			Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Strikethrough(true),
			Overdue:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
			Selected:  lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("254")),
			Notice:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
			StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		}
	}
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Strikethrough(true),
		Overdue:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Selected:  lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("236")),
		Notice:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
