package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kestrelbio/seqpad/seqdoc"
)

func (m *Model) renderContent() string {
	if m.doc.Len() == 0 {
		return m.renderPlaceholder()
	}

	symbols := m.doc.Symbols()
	columns := m.cfg.columns()
	caret := m.doc.Caret()
	sel, selOK := m.doc.Selection()
	gw := m.gutterWidth()
	digits := gw - 1

	var out []string
	for start := 0; start < len(symbols) || start == 0; start += columns {
		end := start + columns
		if end > len(symbols) {
			end = len(symbols)
		}

		var sb strings.Builder
		if gw > 0 {
			numStyle := m.cfg.Style.Ruler
			if m.focused && caret >= start && caret < start+columns {
				numStyle = m.cfg.Style.RulerActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, start+1)))
			sb.WriteString(" ")
		}

		for i := start; i < end; i++ {
			sb.WriteString(m.renderSymbol(symbols[i], i, caret, sel, selOK))
		}

		// The caret can sit one past the last symbol.
		if m.focused && caret == len(symbols) && caret >= start && caret < start+columns {
			sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		}

		out = append(out, sb.String())
	}

	// A full final row leaves the end-of-sequence caret on a row of its own.
	if m.focused && caret == len(symbols) && len(symbols)%columns == 0 && len(symbols) > 0 {
		var sb strings.Builder
		if gw > 0 {
			sb.WriteString(m.cfg.Style.RulerActive.Render(fmt.Sprintf("%*d", digits, caret+1)))
			sb.WriteString(" ")
		}
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

func (m *Model) renderSymbol(sym *seqdoc.Symbol, i, caret int, sel seqdoc.Span, selOK bool) string {
	style := m.symbolStyle(sym)
	if selOK && i >= sel.Start && i < sel.End {
		style = m.cfg.Style.Selection
	}
	if m.focused && i == caret {
		style = m.cfg.Style.Cursor
	}
	return style.Render(sym.Value)
}

// symbolStyle resolves the base style: color function, then override,
// then highlight state.
func (m *Model) symbolStyle(sym *seqdoc.Symbol) lipgloss.Style {
	style := m.cfg.Style.Text
	if m.cfg.ColorFunc != nil {
		style = m.cfg.ColorFunc(sym)
	}
	if sym.ColorOverride != "" {
		style = style.Foreground(lipgloss.Color(string(sym.ColorOverride)))
	}
	if sym.Highlighted {
		style = style.Inherit(m.cfg.Style.Highlight)
	}
	return style
}

func (m *Model) renderPlaceholder() string {
	var sb strings.Builder
	if gw := m.gutterWidth(); gw > 0 {
		sb.WriteString(m.cfg.Style.Ruler.Render(fmt.Sprintf("%*d", gw-1, 1)))
		sb.WriteString(" ")
	}
	if m.focused && m.editable() {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}
	if m.cfg.Placeholder != "" {
		sb.WriteString(m.cfg.Style.Placeholder.Render(m.cfg.Placeholder))
	}
	return sb.String()
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowRuler {
		return 0
	}
	return gutterDigits(m.doc.Len()+1) + 1
}

func gutterDigits(n int) int {
	if n < 1 {
		n = 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}
