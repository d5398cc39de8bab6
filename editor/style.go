package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Ruler       lipgloss.Style
	RulerActive lipgloss.Style

	Text        lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Highlight   lipgloss.Style
	Placeholder lipgloss.Style
}

func DefaultStyle() Style {
	ruler := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Ruler:       ruler,
		RulerActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:        lipgloss.NewStyle(),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Highlight:   lipgloss.NewStyle().Background(lipgloss.Color("58")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}
