package seqdoc

import "github.com/kestrelbio/seqpad/internal/grapheme"

// Color is a render-agnostic color value. The empty string means unset;
// hosts decide how to interpret non-empty values (ANSI index, hex, name).
type Color string

// NoSequenceIndex marks a Symbol that has no back-reference into an
// external data source (free-edit mode).
const NoSequenceIndex = -1

// Symbol is one character-sized editable unit of a sequence.
//
// Value holds exactly one grapheme cluster. LogicalIndex is the symbol's
// 0-based position in its owning Document and is re-assigned after every
// structural mutation; a detached Symbol has LogicalIndex -1.
type Symbol struct {
	Value        string
	LogicalIndex int

	// SequenceIndex is a stable back-reference into an external read-only
	// data source. It is set at creation in viewer mode and never changes;
	// in free-edit mode it is always NoSequenceIndex.
	SequenceIndex int

	Highlighted   bool
	ColorOverride Color
}

// NewRun splits text into grapheme clusters and returns one free-edit
// Symbol per cluster. LogicalIndex is assigned on insertion.
func NewRun(text string) []*Symbol {
	clusters := grapheme.Split(text)
	out := make([]*Symbol, 0, len(clusters))
	for _, c := range clusters {
		out = append(out, &Symbol{
			Value:         c,
			LogicalIndex:  -1,
			SequenceIndex: NoSequenceIndex,
		})
	}
	return out
}

// NewBoundRun is like NewRun but assigns consecutive SequenceIndex values
// starting at first, for documents bound to an external source.
func NewBoundRun(text string, first int) []*Symbol {
	run := NewRun(text)
	for i, sym := range run {
		sym.SequenceIndex = first + i
	}
	return run
}

// detach marks the symbol as no longer owned by any document.
func (s *Symbol) detach() {
	s.LogicalIndex = -1
	s.Highlighted = false
}
