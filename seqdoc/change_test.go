package seqdoc

import "testing"

func TestLastChange_RecordsInsert(t *testing.T) {
	d := New(Options{})
	d.Insert(NewRun("ATG"), 0, false)

	ch, ok := d.LastChange()
	if !ok {
		t.Fatalf("expected a last change")
	}
	if got, want := len(ch.AppliedEdits), 1; got != want {
		t.Fatalf("edits=%d, want %d", got, want)
	}
	e := ch.AppliedEdits[0]
	if got, want := e.SpanAfter, (Span{Start: 0, End: 3}); got != want {
		t.Fatalf("SpanAfter=%v, want %v", got, want)
	}
	if got, want := e.Inserted, "ATG"; got != want {
		t.Fatalf("Inserted=%q, want %q", got, want)
	}
	if got, want := ch.CaretAfter, 3; got != want {
		t.Fatalf("CaretAfter=%d, want %d", got, want)
	}
}

func TestLastChange_RecordsRemove(t *testing.T) {
	d := FromText("ATGC", Options{})
	d.Remove(1, 2, false)

	ch, ok := d.LastChange()
	if !ok {
		t.Fatalf("expected a last change")
	}
	e := ch.AppliedEdits[0]
	if got, want := e.SpanBefore, (Span{Start: 1, End: 3}); got != want {
		t.Fatalf("SpanBefore=%v, want %v", got, want)
	}
	if got, want := e.Removed, "TG"; got != want {
		t.Fatalf("Removed=%q, want %q", got, want)
	}
}

func TestOnChange_ReceivesClone(t *testing.T) {
	d := New(Options{})
	var seen Change
	d.SetOnChange(func(ch Change) { seen = ch })

	d.Insert(NewRun("A"), 0, false)
	if len(seen.AppliedEdits) != 1 {
		t.Fatalf("listener saw %d edits, want 1", len(seen.AppliedEdits))
	}

	// Mutating the listener's copy must not corrupt the document's record.
	seen.AppliedEdits[0].Inserted = "corrupted"
	ch, _ := d.LastChange()
	if got, want := ch.AppliedEdits[0].Inserted, "A"; got != want {
		t.Fatalf("Inserted=%q, want %q", got, want)
	}
}
