package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kestrelbio/seqpad/seqdoc"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal document.
	Text string

	// Mode selects free-edit or viewer behavior. In viewer mode, symbols
	// back-reference an external source starting at BoundStart and the
	// document is read-only.
	Mode       seqdoc.Mode
	BoundStart int

	// Accepted alphabets for typed input. When both are false, both are
	// enabled.
	AcceptProtein bool
	AcceptDNA     bool

	// ReadOnly disables all mutations regardless of mode.
	ReadOnly bool

	// PasteEnabled routes paste events into a PasteRequestMsg instead of
	// inserting directly. When false, paste events are swallowed.
	PasteEnabled bool

	// Columns is the number of symbols per rendered row. Default: 60.
	Columns int

	// ShowRuler renders a 1-based position ruler in the gutter.
	ShowRuler bool

	// Placeholder is shown while the document is empty.
	Placeholder string

	Style  Style
	KeyMap KeyMap

	// ColorFunc resolves the base style for a symbol, e.g. a residue
	// palette. ColorOverride and Highlighted are applied on top.
	ColorFunc func(*seqdoc.Symbol) lipgloss.Style

	Clipboard Clipboard

	// Forwarded to seqdoc.Options.
	HistoryLimit int

	// Event hooks.
	OnChange func(ChangeEvent)
	OnHover  func(ElementEvent)
	OnClick  func(ElementEvent)
}

func (cfg Config) columns() int {
	if cfg.Columns <= 0 {
		return 60
	}
	return cfg.Columns
}

func (cfg Config) acceptFlags() (protein, dna bool) {
	if !cfg.AcceptProtein && !cfg.AcceptDNA {
		return true, true
	}
	return cfg.AcceptProtein, cfg.AcceptDNA
}
