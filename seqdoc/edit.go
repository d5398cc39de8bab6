package seqdoc

import "strings"

// Insert inserts run at pos, renumbers from pos onward, and places the
// caret after the inserted run. pos is clamped into [0, Len]. The change
// notification is suppressed when silent is true or the run is empty.
//
// Insert reports whether the document was mutated.
func (d *Document) Insert(run []*Symbol, pos int, silent bool) bool {
	if !d.strategy.mutable() || len(run) == 0 {
		return false
	}

	pos = clampInt(pos, 0, len(d.symbols))

	prev := d.snapshot()
	change := d.beginChange(silent)

	for _, sym := range run {
		d.strategy.adopt(sym)
	}

	out := make([]*Symbol, 0, len(d.symbols)+len(run))
	out = append(out, d.symbols[:pos]...)
	out = append(out, run...)
	out = append(out, d.symbols[pos:]...)
	d.symbols = out
	d.renumber(pos)

	d.caret = pos + len(run)
	d.sel = selectionState{}
	d.version++
	d.recordUndo(prev)
	change.addAppliedEdit(AppliedEdit{
		SpanBefore: Span{Start: pos, End: pos},
		SpanAfter:  Span{Start: pos, End: pos + len(run)},
		Inserted:   runText(run),
	})
	d.commitChange(change)
	return true
}

// Remove detaches and splices out count symbols starting at pos, renumbers
// the remainder, and sets the caret to pos. Both arguments saturate: a
// request past the end removes only what exists. Removing nothing is a
// no-op with no change notification.
//
// Remove reports whether the document was mutated.
func (d *Document) Remove(pos, count int, silent bool) bool {
	if !d.strategy.mutable() {
		return false
	}

	pos = clampInt(pos, 0, len(d.symbols))
	count = clampInt(count, 0, len(d.symbols)-pos)
	if count == 0 {
		return false
	}

	prev := d.snapshot()
	change := d.beginChange(silent)

	removed := d.symbols[pos : pos+count]
	removedText := runText(removed)
	for _, sym := range removed {
		sym.detach()
	}

	d.symbols = append(d.symbols[:pos], d.symbols[pos+count:]...)
	d.renumber(pos)

	d.caret = clampInt(pos, 0, len(d.symbols))
	d.sel = selectionState{}
	d.version++
	d.recordUndo(prev)
	change.addAppliedEdit(AppliedEdit{
		SpanBefore: Span{Start: pos, End: pos + count},
		SpanAfter:  Span{Start: pos, End: pos},
		Removed:    removedText,
	})
	d.commitChange(change)
	return true
}

// Clear removes every symbol. Clearing an already-empty document performs
// no mutation and emits no change.
func (d *Document) Clear(silent bool) bool {
	return d.Remove(0, len(d.symbols), silent)
}

// InsertText replaces the active selection (or inserts at the caret) with
// a run built from s. It is the primitive behind typing and paste commit.
func (d *Document) InsertText(s string) bool {
	if !d.strategy.mutable() {
		return false
	}

	target, ok := d.Selection()
	if !ok {
		target = Span{Start: d.caret, End: d.caret}
	}
	if s == "" {
		if target.IsEmpty() {
			return false
		}
		return d.Remove(target.Start, target.Len(), false)
	}
	return d.Replace(target, s, false)
}

// Replace substitutes the symbols in target with a run built from text,
// as a single change. An empty target inserts; empty text removes.
func (d *Document) Replace(target Span, text string, silent bool) bool {
	if !d.strategy.mutable() {
		return false
	}

	target = NormalizeSpan(ClampSpan(target, len(d.symbols)))
	run := NewRun(text)
	if target.IsEmpty() && len(run) == 0 {
		return false
	}

	removedText := ""
	if !target.IsEmpty() {
		removedText = runText(d.symbols[target.Start:target.End])
	}
	if removedText == text {
		return false
	}

	prev := d.snapshot()
	change := d.beginChange(silent)

	if !target.IsEmpty() {
		removed := d.symbols[target.Start:target.End]
		for _, sym := range removed {
			sym.detach()
		}
		d.symbols = append(d.symbols[:target.Start], d.symbols[target.End:]...)
	}

	for _, sym := range run {
		d.strategy.adopt(sym)
	}
	out := make([]*Symbol, 0, len(d.symbols)+len(run))
	out = append(out, d.symbols[:target.Start]...)
	out = append(out, run...)
	out = append(out, d.symbols[target.Start:]...)
	d.symbols = out
	d.renumber(target.Start)

	d.caret = target.Start + len(run)
	d.sel = selectionState{}
	d.version++
	d.recordUndo(prev)
	change.addAppliedEdit(AppliedEdit{
		SpanBefore: target,
		SpanAfter:  Span{Start: target.Start, End: target.Start + len(run)},
		Inserted:   text,
		Removed:    removedText,
	})
	d.commitChange(change)
	return true
}

// Apply applies edits in order. Each edit's span is interpreted against
// the document state at the time that edit is applied.
func (d *Document) Apply(edits ...Edit) bool {
	if !d.strategy.mutable() || len(edits) == 0 {
		return false
	}
	any := false
	for _, e := range edits {
		if d.Replace(e.Span, e.Text, false) {
			any = true
		}
	}
	return any
}

// DeleteBackward applies backspace semantics: the selection if active,
// otherwise the symbol immediately before the caret.
func (d *Document) DeleteBackward() bool {
	if s, ok := d.Selection(); ok {
		return d.Remove(s.Start, s.Len(), false)
	}
	if d.caret == 0 {
		return false
	}
	return d.Remove(d.caret-1, 1, false)
}

// DeleteForward applies delete-key semantics: the selection if active,
// otherwise the symbol at the caret.
func (d *Document) DeleteForward() bool {
	if s, ok := d.Selection(); ok {
		return d.Remove(s.Start, s.Len(), false)
	}
	if d.caret >= len(d.symbols) {
		return false
	}
	return d.Remove(d.caret, 1, false)
}

func runText(run []*Symbol) string {
	var sb strings.Builder
	for _, sym := range run {
		sb.WriteString(sym.Value)
	}
	return sb.String()
}
