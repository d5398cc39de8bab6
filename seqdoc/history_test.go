package seqdoc

import "testing"

func TestUndoRedo_RoundTrip(t *testing.T) {
	d := New(Options{})
	d.Insert(NewRun("ATG"), 0, false)
	d.Remove(1, 1, false)
	if got, want := d.Sequence(), "AG"; got != want {
		t.Fatalf("sequence=%q, want %q", got, want)
	}

	if !d.Undo() {
		t.Fatalf("undo reported no mutation")
	}
	if got, want := d.Sequence(), "ATG"; got != want {
		t.Fatalf("after undo sequence=%q, want %q", got, want)
	}
	checkNumbering(t, d)

	if !d.Redo() {
		t.Fatalf("redo reported no mutation")
	}
	if got, want := d.Sequence(), "AG"; got != want {
		t.Fatalf("after redo sequence=%q, want %q", got, want)
	}
	checkNumbering(t, d)
}

func TestUndo_EmptyHistory(t *testing.T) {
	d := FromText("AT", Options{})
	if d.Undo() {
		t.Fatalf("undo with empty history reported a mutation")
	}
	if d.Redo() {
		t.Fatalf("redo with empty history reported a mutation")
	}
}

func TestUndo_HistoryLimit(t *testing.T) {
	d := New(Options{HistoryLimit: 2})
	d.Insert(NewRun("A"), 0, false)
	d.Insert(NewRun("B"), 1, false)
	d.Insert(NewRun("C"), 2, false)

	if !d.Undo() || !d.Undo() {
		t.Fatalf("expected two undos")
	}
	if d.Undo() {
		t.Fatalf("third undo succeeded past the history limit")
	}
	if got, want := d.Sequence(), "A"; got != want {
		t.Fatalf("sequence=%q, want %q", got, want)
	}
}

func TestUndo_RestoresCaretAndSelection(t *testing.T) {
	d := FromText("ATGC", Options{})
	d.SetSelection(Span{Start: 1, End: 3})
	d.InsertText("U")

	if !d.Undo() {
		t.Fatalf("undo reported no mutation")
	}
	if got, want := d.Sequence(), "ATGC"; got != want {
		t.Fatalf("sequence=%q, want %q", got, want)
	}
	s, ok := d.Selection()
	if !ok {
		t.Fatalf("expected selection restored")
	}
	if got, want := s, (Span{Start: 1, End: 3}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
}

func TestMutationClearsRedo(t *testing.T) {
	d := New(Options{})
	d.Insert(NewRun("A"), 0, false)
	d.Insert(NewRun("T"), 1, false)
	d.Undo()

	d.Insert(NewRun("G"), 1, false)
	if d.Redo() {
		t.Fatalf("redo succeeded after intervening mutation")
	}
	if got, want := d.Sequence(), "AG"; got != want {
		t.Fatalf("sequence=%q, want %q", got, want)
	}
}
