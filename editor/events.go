package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kestrelbio/seqpad/seqdoc"
)

// ChangeEvent fires after any non-silent committed mutation.
type ChangeEvent struct {
	Version   uint64
	Caret     int
	Selection struct {
		Span   seqdoc.Span
		Active bool
	}
	Sequence string
}

func buildChangeEvent(d *seqdoc.Document) ChangeEvent {
	ev := ChangeEvent{
		Version:  d.Version(),
		Caret:    d.Caret(),
		Sequence: d.Sequence(),
	}
	if s, ok := d.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Span = s
	}
	return ev
}

// ElementEvent carries the symbol under the pointer for hover/click
// integration with external highlighting or selection.
type ElementEvent struct {
	Index  int
	Symbol *seqdoc.Symbol
}

// PasteRequestMsg is emitted instead of a direct insertion when paste is
// routed through an import flow. Target is the pre-paste selection range
// (collapsed at the caret when nothing is selected); committing the flow
// inserts the chosen sequence at that same range.
type PasteRequestMsg struct {
	Text   string
	Target seqdoc.Span
}

func pasteRequestCmd(text string, target seqdoc.Span) tea.Cmd {
	return func() tea.Msg {
		return PasteRequestMsg{Text: text, Target: target}
	}
}
