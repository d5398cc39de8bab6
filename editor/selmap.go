package editor

import "github.com/kestrelbio/seqpad/seqdoc"

// CellPos is a viewport-local cell coordinate: (0,0) is the top-left of
// the visible content region.
type CellPos struct {
	X int
	Y int
}

// CellRange is one contiguous host selection range in cell coordinates.
type CellRange struct {
	Anchor CellPos
	Focus  CellPos
}

// HostSelection is the selection a rendering surface reports. Most
// surfaces report exactly one range; zero or multiple disjoint ranges
// cannot be mapped onto the document.
type HostSelection struct {
	Ranges []CellRange
}

// SelectionMapper resolves a host selection into logical indices over the
// document. A false second return means "unresolved": the caller must
// skip caret-dependent handling for that event instead of defaulting to
// position 0.
//
// A mapper is only valid for the document version it was built against;
// it is recomputed per event and never cached across mutations.
type SelectionMapper interface {
	// IndexAt maps one cell to a logical index in [0, Len]. Positions in
	// the gutter or below the last row are unresolved; positions past a
	// row's content clamp to that row's end.
	IndexAt(p CellPos) (int, bool)

	// Resolve maps a host selection to a logical span. Unresolved when
	// the selection has zero or multiple ranges, or when either endpoint
	// is unresolved.
	Resolve(sel HostSelection) (seqdoc.Span, bool)
}

// layoutMapper maps through the editor's wrap layout: row-major cells of
// fixed column width after a ruler gutter.
type layoutMapper struct {
	columns int
	gutter  int
	yOffset int
	docLen  int
}

func (lm layoutMapper) IndexAt(p CellPos) (int, bool) {
	if lm.columns <= 0 {
		return 0, false
	}
	if p.X < lm.gutter || p.Y < 0 {
		return 0, false
	}

	row := lm.yOffset + p.Y
	lastRow := lm.docLen / lm.columns
	if row < 0 || row > lastRow {
		return 0, false
	}

	col := p.X - lm.gutter
	if col > lm.columns {
		col = lm.columns
	}

	idx := row*lm.columns + col
	rowEnd := (row + 1) * lm.columns
	if rowEnd > lm.docLen {
		rowEnd = lm.docLen
	}
	if idx > rowEnd {
		idx = rowEnd
	}
	return idx, true
}

func (lm layoutMapper) Resolve(sel HostSelection) (seqdoc.Span, bool) {
	if len(sel.Ranges) != 1 {
		return seqdoc.Span{}, false
	}
	r := sel.Ranges[0]
	start, ok := lm.IndexAt(r.Anchor)
	if !ok {
		return seqdoc.Span{}, false
	}
	end, ok := lm.IndexAt(r.Focus)
	if !ok {
		return seqdoc.Span{}, false
	}
	return seqdoc.NormalizeSpan(seqdoc.Span{Start: start, End: end}), true
}
