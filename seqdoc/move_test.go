package seqdoc

import "testing"

func TestMoveCaret_LeftRightClamp(t *testing.T) {
	d := FromText("ATG", Options{})
	d.SetCaret(0)

	d.MoveCaret(Move{Dir: DirLeft})
	if got, want := d.Caret(), 0; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}

	d.MoveCaret(Move{Dir: DirRight})
	if got, want := d.Caret(), 1; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}

	d.MoveCaret(Move{Dir: DirRight, Step: 10})
	if got, want := d.Caret(), 3; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestMoveCaret_HomeEnd(t *testing.T) {
	d := FromText("ATGC", Options{})
	d.SetCaret(2)

	d.MoveCaret(Move{Dir: DirHome})
	if got, want := d.Caret(), 0; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
	d.MoveCaret(Move{Dir: DirEnd})
	if got, want := d.Caret(), 4; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestMoveCaret_ExtendBuildsSelection(t *testing.T) {
	d := FromText("ATGC", Options{})
	d.SetCaret(1)

	d.MoveCaret(Move{Dir: DirRight, Extend: true})
	d.MoveCaret(Move{Dir: DirRight, Extend: true})
	s, ok := d.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if got, want := s, (Span{Start: 1, End: 3}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}

	// Non-extend move collapses the selection.
	d.MoveCaret(Move{Dir: DirLeft})
	if _, ok := d.Selection(); ok {
		t.Fatalf("selection survived non-extend move")
	}
}

func TestMoveCaret_NoOpKeepsVersion(t *testing.T) {
	d := FromText("AT", Options{})
	d.MoveCaret(Move{Dir: DirEnd})
	v := d.Version()

	d.MoveCaret(Move{Dir: DirEnd})
	if got := d.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}
