package seqdoc

// Mode selects the document's editing strategy at construction time.
type Mode uint8

const (
	// ModeFreeEdit is an unbound, editable document. Symbols never carry
	// a SequenceIndex.
	ModeFreeEdit Mode = iota
	// ModeViewer is bound to an external read-only data source. Symbols
	// keep the SequenceIndex assigned at creation and mutations are
	// rejected.
	ModeViewer
)

// modeStrategy isolates per-mode behavior so document logic stays free of
// mode branching.
type modeStrategy interface {
	mode() Mode
	mutable() bool
	// adopt normalizes a symbol as it enters the document.
	adopt(sym *Symbol)
}

type freeEditStrategy struct{}

func (freeEditStrategy) mode() Mode    { return ModeFreeEdit }
func (freeEditStrategy) mutable() bool { return true }
func (freeEditStrategy) adopt(sym *Symbol) {
	sym.SequenceIndex = NoSequenceIndex
}

type viewerStrategy struct{}

func (viewerStrategy) mode() Mode    { return ModeViewer }
func (viewerStrategy) mutable() bool { return false }
func (viewerStrategy) adopt(*Symbol) {}

func strategyFor(m Mode) modeStrategy {
	if m == ModeViewer {
		return viewerStrategy{}
	}
	return freeEditStrategy{}
}
