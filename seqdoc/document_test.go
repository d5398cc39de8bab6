package seqdoc

import "testing"

func TestDocument_SetCaretClamps(t *testing.T) {
	d := FromText("ATG", Options{})

	d.SetCaret(99)
	if got, want := d.Caret(), 3; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
	d.SetCaret(-2)
	if got, want := d.Caret(), 0; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestDocument_SelectionNormalizes(t *testing.T) {
	d := FromText("ATGC", Options{})

	d.SetSelection(Span{Start: 3, End: 1})
	s, ok := d.Selection()
	if !ok {
		t.Fatalf("expected active selection")
	}
	if got, want := s, (Span{Start: 1, End: 3}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}

	raw, ok := d.SelectionRaw()
	if !ok {
		t.Fatalf("expected raw selection")
	}
	if got, want := raw, (Span{Start: 3, End: 1}); got != want {
		t.Fatalf("raw selection=%v, want %v", got, want)
	}
}

func TestDocument_EmptySelectionInactive(t *testing.T) {
	d := FromText("ATGC", Options{})

	d.SetSelection(Span{Start: 2, End: 2})
	if _, ok := d.Selection(); ok {
		t.Fatalf("empty selection reported active")
	}
}

func TestDocument_SelectionClampsToBounds(t *testing.T) {
	d := FromText("AT", Options{})

	d.SetSelection(Span{Start: -3, End: 99})
	s, ok := d.Selection()
	if !ok {
		t.Fatalf("expected active selection")
	}
	if got, want := s, (Span{Start: 0, End: 2}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
}

func TestDocument_SequenceConcatenatesValues(t *testing.T) {
	d := FromText("MKV", Options{})
	if got, want := d.Sequence(), "MKV"; got != want {
		t.Fatalf("sequence=%q, want %q", got, want)
	}
}

func TestDocument_AtOutOfRange(t *testing.T) {
	d := FromText("A", Options{})
	if _, ok := d.At(-1); ok {
		t.Fatalf("At(-1) resolved")
	}
	if _, ok := d.At(1); ok {
		t.Fatalf("At(1) resolved past end")
	}
}

func TestDocument_FromBoundTextAssignsIndices(t *testing.T) {
	d := FromBoundText("ACG", 10, Options{})
	for i, sym := range d.Symbols() {
		if got, want := sym.SequenceIndex, 10+i; got != want {
			t.Fatalf("symbol %d SequenceIndex=%d, want %d", i, got, want)
		}
	}
	if got, want := d.Mode(), ModeViewer; got != want {
		t.Fatalf("mode=%v, want %v", got, want)
	}
	if d.Editable() {
		t.Fatalf("viewer document reports editable")
	}
}
