package seqdoc

import "github.com/kestrelbio/seqpad/internal/grapheme"

type docSnapshot struct {
	text  string
	caret int
	sel   selectionState
}

type historyState struct {
	undo []docSnapshot
	redo []docSnapshot
}

func (d *Document) snapshot() docSnapshot {
	return docSnapshot{
		text:  d.Sequence(),
		caret: d.caret,
		sel:   d.sel,
	}
}

func (d *Document) restore(s docSnapshot) {
	for _, sym := range d.symbols {
		sym.detach()
	}
	d.symbols = NewRun(s.text)
	d.renumber(0)
	d.caret = clampInt(s.caret, 0, len(d.symbols))

	if !s.sel.active {
		d.sel = selectionState{}
		return
	}
	anchor := clampInt(s.sel.anchor, 0, len(d.symbols))
	end := clampInt(s.sel.end, 0, len(d.symbols))
	if anchor == end {
		d.sel = selectionState{}
		return
	}
	d.sel = selectionState{active: true, anchor: anchor, end: end}
}

func (d *Document) recordUndo(prev docSnapshot) {
	limit := d.opt.HistoryLimit
	if limit <= 0 {
		return
	}
	d.hist.undo = append(d.hist.undo, prev)
	if len(d.hist.undo) > limit {
		d.hist.undo = d.hist.undo[len(d.hist.undo)-limit:]
	}
	d.hist.redo = nil
}

func (d *Document) CanUndo() bool { return len(d.hist.undo) > 0 }

func (d *Document) CanRedo() bool { return len(d.hist.redo) > 0 }

func (d *Document) Undo() bool {
	if len(d.hist.undo) == 0 || !d.strategy.mutable() {
		return false
	}

	cur := d.snapshot()
	change := d.beginChange(false)

	i := len(d.hist.undo) - 1
	prev := d.hist.undo[i]
	d.hist.undo = d.hist.undo[:i]
	d.hist.redo = append(d.hist.redo, cur)

	d.restore(prev)
	d.version++
	if applied, ok := replacementAppliedEdit(cur.text, prev.text); ok {
		change.addAppliedEdit(applied)
	}
	d.commitChange(change)
	return true
}

func (d *Document) Redo() bool {
	if len(d.hist.redo) == 0 || !d.strategy.mutable() {
		return false
	}

	cur := d.snapshot()
	change := d.beginChange(false)

	i := len(d.hist.redo) - 1
	next := d.hist.redo[i]
	d.hist.redo = d.hist.redo[:i]

	limit := d.opt.HistoryLimit
	if limit > 0 {
		d.hist.undo = append(d.hist.undo, cur)
		if len(d.hist.undo) > limit {
			d.hist.undo = d.hist.undo[len(d.hist.undo)-limit:]
		}
	}

	d.restore(next)
	d.version++
	if applied, ok := replacementAppliedEdit(cur.text, next.text); ok {
		change.addAppliedEdit(applied)
	}
	d.commitChange(change)
	return true
}

func replacementAppliedEdit(beforeText, afterText string) (AppliedEdit, bool) {
	if beforeText == afterText {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		SpanBefore: Span{Start: 0, End: grapheme.Count(beforeText)},
		SpanAfter:  Span{Start: 0, End: grapheme.Count(afterText)},
		Inserted:   afterText,
		Removed:    beforeText,
	}, true
}
