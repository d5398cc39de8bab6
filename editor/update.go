package editor

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kestrelbio/seqpad/seqdoc"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Bracketed paste never inserts directly: the platform default is
	// suppressed and the text is routed to the import flow.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return m.requestPaste(string(msg.Runes))
	}

	km := m.cfg.KeyMap
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, km.Left):
		m.doc.MoveCaret(seqdoc.Move{Dir: seqdoc.DirLeft})
	case key.Matches(msg, km.Right):
		m.doc.MoveCaret(seqdoc.Move{Dir: seqdoc.DirRight})
	case key.Matches(msg, km.Up):
		m.doc.MoveCaret(seqdoc.Move{Dir: seqdoc.DirLeft, Step: m.cfg.columns()})
	case key.Matches(msg, km.Down):
		m.doc.MoveCaret(seqdoc.Move{Dir: seqdoc.DirRight, Step: m.cfg.columns()})

	case key.Matches(msg, km.ShiftLeft):
		m.doc.MoveCaret(seqdoc.Move{Dir: seqdoc.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.doc.MoveCaret(seqdoc.Move{Dir: seqdoc.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.doc.MoveCaret(seqdoc.Move{Dir: seqdoc.DirLeft, Step: m.cfg.columns(), Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.doc.MoveCaret(seqdoc.Move{Dir: seqdoc.DirRight, Step: m.cfg.columns(), Extend: true})

	case key.Matches(msg, km.Home):
		m.doc.MoveCaret(seqdoc.Move{Dir: seqdoc.DirHome})
	case key.Matches(msg, km.End):
		m.doc.MoveCaret(seqdoc.Move{Dir: seqdoc.DirEnd})

	case key.Matches(msg, km.Backspace):
		if m.editable() {
			m.doc.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if m.editable() {
			m.doc.DeleteForward()
		}

	case key.Matches(msg, km.Undo):
		if m.editable() {
			_ = m.doc.Undo()
		}
	case key.Matches(msg, km.Redo):
		if m.editable() {
			_ = m.doc.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if m.editable() {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		return m.pasteClipboard()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.typeRunes(msg.Runes)
		}
		// Navigation and modified keys fall through unhandled so the
		// host's native behavior is preserved.
	}

	if m.syncFromDocument() {
		m.followCaret()
	}
	return m, cmd
}

// typeRunes applies the keystroke policy: a character in the accepted
// alphabet replaces the current selection and advances the caret; any
// other character is swallowed at the source.
func (m *Model) typeRunes(runes []rune) {
	if !m.editable() {
		return
	}
	for _, r := range runes {
		up := unicode.ToUpper(r)
		if !m.accepted[up] {
			continue
		}
		m.doc.InsertText(string(up))
	}
}

func (m Model) requestPaste(text string) (Model, tea.Cmd) {
	if !m.doc.PasteEnabled() || !m.editable() {
		return m, nil
	}
	target, ok := m.doc.Selection()
	if !ok {
		target = seqdoc.Span{Start: m.doc.Caret(), End: m.doc.Caret()}
	}
	return m, pasteRequestCmd(normalizePaste(text), target)
}

func (m Model) pasteClipboard() (Model, tea.Cmd) {
	if m.cfg.Clipboard == nil {
		return m, nil
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return m, nil
	}
	return m.requestPaste(s)
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectionText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m *Model) cutSelection() {
	s, ok := m.doc.Selection()
	if !ok {
		return
	}
	if m.cfg.Clipboard != nil {
		if text := m.selectionText(); text != "" {
			_ = m.cfg.Clipboard.WriteText(text)
		}
	}
	m.doc.Remove(s.Start, s.Len(), false)
}

func (m Model) selectionText() string {
	s, ok := m.doc.Selection()
	if !ok {
		return ""
	}
	var sb strings.Builder
	for i := s.Start; i < s.End; i++ {
		if sym, ok := m.doc.At(i); ok {
			sb.WriteString(sym.Value)
		}
	}
	return sb.String()
}

// normalizePaste folds newlines out of external text: a sequence is one
// logical line.
func normalizePaste(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}
