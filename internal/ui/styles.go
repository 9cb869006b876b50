package ui

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// Label renders a mode label for demo output. Styling is skipped when
// color is false so piped output stays clean.
func Label(text string, color bool) string {
	if !color {
		return text
	}
	return labelStyle.Render(text)
}

// Dim renders secondary text such as trailing hints.
func Dim(text string, color bool) string {
	if !color {
		return text
	}
	return dimStyle.Render(text)
}
