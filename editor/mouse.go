package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kestrelbio/seqpad/seqdoc"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	if !m.focused {
		return m, cmd
	}

	// The mapper is rebuilt per event; it must never survive a mutation.
	mapper := m.layoutMapper()

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, cmd
		}
		idx, ok := mapper.IndexAt(CellPos{X: msg.X, Y: msg.Y})
		if !ok {
			// Unresolved: no caret-dependent handling for this event.
			return m, cmd
		}
		if msg.Shift {
			anchor := m.doc.Caret()
			if raw, rawOK := m.doc.SelectionRaw(); rawOK {
				anchor = raw.Start
			}
			m.mouseAnchor = anchor
			m.doc.SetCaret(idx)
			m.doc.SetSelection(seqdoc.Span{Start: anchor, End: idx})
		} else {
			m.mouseAnchor = idx
			m.doc.SetCaret(idx)
			m.doc.ClearSelection()
		}
		m.mouseDragging = true
		m.emitClick(idx)

	case tea.MouseActionMotion:
		if m.mouseDragging {
			idx, ok := mapper.IndexAt(CellPos{X: msg.X, Y: msg.Y})
			if !ok {
				return m, cmd
			}
			m.doc.SetCaret(idx)
			m.doc.SetSelection(seqdoc.Span{Start: m.mouseAnchor, End: idx})
			break
		}
		m.emitHover(mapper, msg.X, msg.Y)

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	if m.syncFromDocument() {
		m.followCaret()
	}
	return m, cmd
}

func (m *Model) emitHover(mapper layoutMapper, x, y int) {
	if m.cfg.OnHover == nil {
		return
	}
	idx, ok := mapper.IndexAt(CellPos{X: x, Y: y})
	if !ok || idx == m.hoverIndex {
		return
	}
	m.hoverIndex = idx
	if sym, symOK := m.doc.At(idx); symOK {
		m.cfg.OnHover(ElementEvent{Index: idx, Symbol: sym})
	}
}

func (m *Model) emitClick(idx int) {
	if m.cfg.OnClick == nil {
		return
	}
	if sym, ok := m.doc.At(idx); ok {
		m.cfg.OnClick(ElementEvent{Index: idx, Symbol: sym})
	}
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
