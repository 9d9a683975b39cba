package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the form.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Help    lipgloss.Style
	Warning lipgloss.Style
	Spinner lipgloss.Style
	Output  lipgloss.Style
}

// DefaultStyles returns the default form styling.
func DefaultStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).MarginBottom(1),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		Output: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1),
	}
}
