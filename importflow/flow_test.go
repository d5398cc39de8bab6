package importflow

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kestrelbio/seqpad/classify"
	"github.com/kestrelbio/seqpad/seqdoc"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFlow_EntersShowing(t *testing.T) {
	m := New(Config{Text: "acgt", AcceptDNA: true})
	if got, want := m.State(), StateShowing; got != want {
		t.Fatalf("state=%v, want %v", got, want)
	}
	if m.Done() {
		t.Fatalf("fresh flow reports done")
	}
	if got, want := len(m.Interpretations()), 1; got != want {
		t.Fatalf("interpretations=%d, want %d", got, want)
	}
}

func TestFlow_CommitResolvesWithSelection(t *testing.T) {
	target := seqdoc.Span{Start: 2, End: 5}
	m := New(Config{Text: "alaglycys", Target: target, AcceptProtein: true})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.State(), StateCommitted; got != want {
		t.Fatalf("state=%v, want %v", got, want)
	}
	if cmd == nil {
		t.Fatalf("expected resolve command")
	}
	res, ok := cmd().(ResolvedMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want ResolvedMsg", cmd())
	}
	// First choice is the three-letter protein reading, translated.
	if got, want := res.Sequence, "AGC"; got != want {
		t.Fatalf("sequence=%q, want %q", got, want)
	}
	if got, want := res.Kind, classify.KindProtein; got != want {
		t.Fatalf("kind=%q, want %q", got, want)
	}
	if got, want := res.Target, target; got != want {
		t.Fatalf("target=%v, want %v", got, want)
	}
}

func TestFlow_CancelResolvesUnknown(t *testing.T) {
	m := New(Config{Text: "acgt", AcceptDNA: true})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got, want := m.State(), StateCancelled; got != want {
		t.Fatalf("state=%v, want %v", got, want)
	}
	res := cmd().(ResolvedMsg)
	if res.Sequence != "" {
		t.Fatalf("sequence=%q, want empty", res.Sequence)
	}
	if got, want := res.Kind, classify.KindUnknown; got != want {
		t.Fatalf("kind=%q, want %q", got, want)
	}
}

func TestFlow_SingleShot(t *testing.T) {
	m := New(Config{Text: "acgt", AcceptDNA: true})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("resolved flow produced a command")
	}
	if got, want := m.State(), StateCancelled; got != want {
		t.Fatalf("state=%v, want %v", got, want)
	}
}

func TestFlow_CycleSelectsInterpretation(t *testing.T) {
	m := New(Config{Text: "ACG", AcceptProtein: true, AcceptDNA: true})
	if got, want := len(m.Interpretations()), 3; got != want {
		t.Fatalf("interpretations=%d, want %d", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	sel, ok := m.Selected()
	if !ok {
		t.Fatalf("no selection")
	}
	if got, want := sel, m.res.OneLetterProtein; got != want {
		t.Fatalf("selected=%v, want one-letter protein", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	sel, _ = m.Selected()
	if got, want := sel, m.res.ThreeLetterProtein; got != want {
		t.Fatalf("selection did not wrap: %v", got)
	}
}

func TestFlow_LiveReclassifyOnEdit(t *testing.T) {
	m := New(Config{Text: "AC", AcceptDNA: true})
	if got, want := m.res.Nucleotide.CleanSequence, "AC"; got != want {
		t.Fatalf("clean=%q, want %q", got, want)
	}

	m, _ = m.Update(keyRunes("g"))
	if got, want := m.res.Nucleotide.CleanSequence, "ACG"; got != want {
		t.Fatalf("clean after edit=%q, want %q", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.res.Nucleotide.CleanSequence, "AC"; got != want {
		t.Fatalf("clean after backspace=%q, want %q", got, want)
	}
}

func TestFlow_CaretMovesDoNotReclassify(t *testing.T) {
	m := New(Config{Text: "ACGT", AcceptDNA: true})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got, want := m.input.caret, 3; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if got, want := m.input.caret, 0; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
	if got, want := m.res.Nucleotide.CleanSequence, "ACGT"; got != want {
		t.Fatalf("clean=%q, want %q", got, want)
	}
}

func TestFlow_InvalidInputStaysVisible(t *testing.T) {
	m := New(Config{Text: "AC!G", AcceptDNA: true})

	if got, want := len(m.res.Display), 4; got != want {
		t.Fatalf("display units=%d, want %d", got, want)
	}
	if m.res.Display[2].Valid {
		t.Fatalf("'!' marked valid")
	}
	if got, want := m.res.Nucleotide.CleanSequence, "ACG"; got != want {
		t.Fatalf("clean=%q, want %q", got, want)
	}
}

func TestFlow_ViewRendersChoices(t *testing.T) {
	m := New(Config{Text: "acgt", AcceptProtein: true, AcceptDNA: true})
	view := m.View()
	if view == "" {
		t.Fatalf("empty view while showing")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.View(); got != "" {
		t.Fatalf("resolved flow rendered %q", got)
	}
}
