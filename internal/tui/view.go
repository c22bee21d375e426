package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	titleForegroundColor = "#A8ACB1"
	titleBackgroundColor = "#1D252F"
	patternColor         = "#7EC699"
	errorColor           = "#F07178"
	mutedColor           = "#5C6370"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(titleForegroundColor)).
			Background(lipgloss.Color(titleBackgroundColor)).
			Padding(0, 1)

	patternStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(patternColor)).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(errorColor))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))
)

// View implements bubbletea.Model.View
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case m.submitted != "":
		b.WriteString(patternStyle.Render(m.pattern))
	default:
		b.WriteString(mutedStyle.Render("press enter to compile"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
