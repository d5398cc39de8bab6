package seqdoc

import "strings"

type Options struct {
	Mode Mode

	// PasteEnabled controls whether hosts should route paste events into
	// an import flow for this document. The document itself never reads
	// it during mutation; it is carried here because it is per-document
	// state, not per-widget state.
	PasteEnabled bool

	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Document is the pure sequence state: symbols, caret, and selection.
type Document struct {
	symbols []*Symbol
	version uint64

	caret int
	sel   selectionState

	strategy modeStrategy
	opt      Options
	hist     historyState

	lastChange    Change
	hasLastChange bool

	// onChange is invoked after every non-silent committed mutation.
	onChange func(Change)
}

func New(opt Options) *Document {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Document{
		strategy: strategyFor(opt.Mode),
		opt:      opt,
	}
}

// FromText builds a free-edit document pre-filled with text. The initial
// fill is silent: it is construction, not a user mutation.
func FromText(text string, opt Options) *Document {
	d := New(opt)
	if opt.Mode == ModeViewer {
		d.adoptInitial(NewBoundRun(text, 0))
		return d
	}
	d.adoptInitial(NewRun(text))
	return d
}

// FromBoundText builds a viewer document whose symbols back-reference an
// external source starting at first.
func FromBoundText(text string, first int, opt Options) *Document {
	opt.Mode = ModeViewer
	d := New(opt)
	d.adoptInitial(NewBoundRun(text, first))
	return d
}

func (d *Document) adoptInitial(run []*Symbol) {
	d.symbols = run
	d.renumber(0)
	d.caret = len(d.symbols)
}

func (d *Document) Mode() Mode         { return d.strategy.mode() }
func (d *Document) Editable() bool     { return d.strategy.mutable() }
func (d *Document) PasteEnabled() bool { return d.opt.PasteEnabled }

func (d *Document) Len() int { return len(d.symbols) }

func (d *Document) Version() uint64 { return d.version }

// SetOnChange registers the change listener. At most one listener is
// supported; widgets fan out further if they need to.
func (d *Document) SetOnChange(fn func(Change)) { d.onChange = fn }

// At returns the symbol at logical index i.
func (d *Document) At(i int) (*Symbol, bool) {
	if i < 0 || i >= len(d.symbols) {
		return nil, false
	}
	return d.symbols[i], true
}

// Symbols returns the symbols in logical order. The slice is a copy; the
// symbols themselves are shared.
func (d *Document) Symbols() []*Symbol {
	return append([]*Symbol(nil), d.symbols...)
}

// Sequence returns the concatenation of all symbol values.
func (d *Document) Sequence() string {
	var sb strings.Builder
	for _, sym := range d.symbols {
		sb.WriteString(sym.Value)
	}
	return sb.String()
}

func (d *Document) Caret() int { return d.caret }

func (d *Document) SetCaret(pos int) {
	next := clampInt(pos, 0, len(d.symbols))
	if next == d.caret {
		return
	}
	d.caret = next
	d.version++
}

// Selection returns the normalized active selection.
func (d *Document) Selection() (Span, bool) {
	if !d.sel.active {
		return Span{}, false
	}
	s := NormalizeSpan(Span{Start: d.sel.anchor, End: d.sel.end})
	if s.IsEmpty() {
		return Span{}, false
	}
	return s, true
}

// SelectionRaw returns the selection without normalization, preserving
// direction for shift-extend behavior.
func (d *Document) SelectionRaw() (Span, bool) {
	if !d.sel.active || d.sel.anchor == d.sel.end {
		return Span{}, false
	}
	return Span{Start: d.sel.anchor, End: d.sel.end}, true
}

func (d *Document) SetSelection(s Span) {
	clamped := ClampSpan(s, len(d.symbols))
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	prev, prevOK := d.Selection()
	d.sel = next
	cur, curOK := d.Selection()
	if prevOK == curOK && (!prevOK || prev == cur) {
		return
	}
	d.version++
}

func (d *Document) ClearSelection() {
	if !d.sel.active {
		return
	}
	_, wasVisible := d.Selection()
	d.sel = selectionState{}
	if wasVisible {
		d.version++
	}
}

// renumber restores the logical-index invariant from position from onward.
func (d *Document) renumber(from int) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(d.symbols); i++ {
		d.symbols[i].LogicalIndex = i
	}
}
