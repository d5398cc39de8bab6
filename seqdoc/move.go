package seqdoc

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // document start
	DirEnd  // document end
)

type Move struct {
	Dir    MoveDir
	Step   int  // symbols per step for DirLeft/DirRight; 0 means 1
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

// MoveCaret moves the caret and maintains the selection per Move.Extend.
func (d *Document) MoveCaret(m Move) {
	prevCaret := d.caret
	prevSel := d.sel

	step := m.Step
	if step <= 0 {
		step = 1
	}

	next := prevCaret
	switch m.Dir {
	case DirLeft:
		next = prevCaret - step
	case DirRight:
		next = prevCaret + step
	case DirHome:
		next = 0
	case DirEnd:
		next = len(d.symbols)
	}
	next = clampInt(next, 0, len(d.symbols))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCaret
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCaret == next && selectionStateEqual(prevSel, nextSel) {
		return
	}
	d.caret = next
	d.sel = nextSel
	d.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}
