package importflow

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/kestrelbio/seqpad/classify"
)

// Style controls the flow's rendering.
type Style struct {
	Frame         lipgloss.Style
	Title         lipgloss.Style
	Label         lipgloss.Style
	LabelSelected lipgloss.Style
	Valid         lipgloss.Style
	Invalid       lipgloss.Style
	Cursor        lipgloss.Style
	Help          lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Frame:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Title:         lipgloss.NewStyle().Bold(true),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		LabelSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Valid:         lipgloss.NewStyle(),
		Invalid:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Underline(true),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Help:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func labelFor(in *classify.Interpretation, three bool) string {
	if in.Kind == classify.KindDNA {
		return "Nucleotide"
	}
	if three {
		return "Protein (3-letter)"
	}
	return "Protein (1-letter)"
}

// View renders the dialog box.
func (m Model) View() string {
	if m.Done() {
		return ""
	}
	st := m.cfg.Style
	if st.Frame.GetBorderStyle() == (lipgloss.Border{}) {
		st = DefaultStyle()
	}

	var sb strings.Builder
	sb.WriteString(st.Title.Render("Import sequence"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderInput(st))
	sb.WriteString("\n\n")

	choices := m.res.Interpretations()
	if len(choices) == 0 || m.input.Text() == "" {
		sb.WriteString(st.Label.Render("(nothing to import)"))
		sb.WriteString("\n")
	}
	for i, in := range choices {
		label := st.Label
		marker := "  "
		if i == m.selected {
			label = st.LabelSelected
			marker = "> "
		}
		three := in == m.res.ThreeLetterProtein
		sb.WriteString(label.Render(fmt.Sprintf("%s%-18s", marker, labelFor(in, three))))
		sb.WriteString(m.renderUnits(st, in.Units))
		if in.InvalidCount > 0 {
			sb.WriteString(st.Invalid.Render(fmt.Sprintf("  (%d invalid)", in.InvalidCount)))
		}
		if in.Kind == classify.KindProtein && three {
			sb.WriteString(st.Label.Render("  -> " + in.CleanSequence))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(st.Help.Render("tab: switch  enter: import  esc: cancel"))
	return st.Frame.Render(sb.String())
}

// renderInput shows the display copy: every pasted character stays
// visible, invalid ones marked.
func (m Model) renderInput(st Style) string {
	var sb strings.Builder
	for i, u := range m.res.Display {
		style := st.Valid
		if !u.Valid {
			style = st.Invalid
		}
		if i == m.input.caret {
			style = st.Cursor
		}
		sb.WriteString(style.Render(u.Text))
	}
	if m.input.caret >= len(m.res.Display) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) renderUnits(st Style, units []classify.Unit) string {
	var sb strings.Builder
	for _, u := range units {
		if u.Valid {
			sb.WriteString(st.Valid.Render(u.Text))
		} else {
			sb.WriteString(st.Invalid.Render(u.Text))
		}
	}
	return sb.String()
}

// Composite centers the dialog over the host's rendered view.
func (m Model) Composite(background string) string {
	if m.Done() {
		return background
	}
	return overlay.Composite(m.View(), background, overlay.Center, overlay.Center, 0, 0)
}
