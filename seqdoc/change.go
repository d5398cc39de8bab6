package seqdoc

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Span   Span
}

// AppliedEdit describes one effective edit in a change.
type AppliedEdit struct {
	SpanBefore Span
	SpanAfter  Span
	Inserted   string
	Removed    string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	VersionBefore   uint64
	VersionAfter    uint64
	CaretBefore     int
	CaretAfter      int
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

type changeBuilder struct {
	versionBefore   uint64
	caretBefore     int
	selectionBefore SelectionState
	silent          bool
	appliedEdits    []AppliedEdit
}

// LastChange returns the most recent non-silent effective change.
func (d *Document) LastChange() (Change, bool) {
	if !d.hasLastChange {
		return Change{}, false
	}
	return cloneChange(d.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.AppliedEdits = append([]AppliedEdit(nil), in.AppliedEdits...)
	return out
}

func (d *Document) selectionSnapshot() SelectionState {
	s, ok := d.Selection()
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Span: s}
}

func (d *Document) beginChange(silent bool) changeBuilder {
	return changeBuilder{
		versionBefore:   d.version,
		caretBefore:     d.caret,
		selectionBefore: d.selectionSnapshot(),
		silent:          silent,
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	edit.SpanBefore = NormalizeSpan(edit.SpanBefore)
	edit.SpanAfter = NormalizeSpan(edit.SpanAfter)
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (d *Document) commitChange(cb changeBuilder) {
	if d.version == cb.versionBefore || cb.silent {
		return
	}
	d.lastChange = Change{
		VersionBefore:   cb.versionBefore,
		VersionAfter:    d.version,
		CaretBefore:     cb.caretBefore,
		CaretAfter:      d.caret,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  d.selectionSnapshot(),
		AppliedEdits:    append([]AppliedEdit(nil), cb.appliedEdits...),
	}
	d.hasLastChange = true
	if d.onChange != nil {
		d.onChange(cloneChange(d.lastChange))
	}
}
