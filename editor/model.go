package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kestrelbio/seqpad/classify"
	"github.com/kestrelbio/seqpad/seqdoc"
)

// Model is a Bubble Tea component that renders and interacts with a
// sequence document.
type Model struct {
	cfg Config
	doc *seqdoc.Document

	accepted map[rune]bool

	focused  bool
	viewport viewport.Model

	lastDocVersion uint64
	lastCaret      int

	mouseDragging bool
	mouseAnchor   int
	hoverIndex    int
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}

	var doc *seqdoc.Document
	opt := seqdoc.Options{
		Mode:         cfg.Mode,
		PasteEnabled: cfg.PasteEnabled,
		HistoryLimit: cfg.HistoryLimit,
	}
	if cfg.Mode == seqdoc.ModeViewer {
		doc = seqdoc.FromBoundText(cfg.Text, cfg.BoundStart, opt)
	} else {
		doc = seqdoc.FromText(cfg.Text, opt)
	}

	protein, dna := cfg.acceptFlags()
	m := Model{
		cfg:        cfg,
		doc:        doc,
		accepted:   classify.Accepted(classify.Options{AcceptProtein: protein, AcceptDNA: dna}),
		focused:    true,
		viewport:   viewport.New(0, 0),
		hoverIndex: -1,
	}
	if cfg.OnChange != nil {
		onChange := cfg.OnChange
		doc.SetOnChange(func(seqdoc.Change) {
			onChange(buildChangeEvent(doc))
		})
	}
	m.lastDocVersion = doc.Version()
	m.lastCaret = doc.Caret()
	m.rebuildContent()
	return m
}

// Document exposes the underlying document for host-driven edits.
func (m Model) Document() *seqdoc.Document { return m.doc }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.rebuildContent()
	m.followCaret()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCaret()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		// Hosts may mutate the document outside of the editor.
		if m.syncFromDocument() {
			m.followCaret()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// CommitPaste inserts a confirmed import-flow sequence at the pre-paste
// target range.
func (m Model) CommitPaste(sequence string, target seqdoc.Span) Model {
	if sequence == "" {
		return m
	}
	m.doc.Apply(seqdoc.Edit{Span: target, Text: sequence})
	m.syncFromDocument()
	m.followCaret()
	return m
}

// Mapper returns a SelectionMapper for the current layout and document
// state. The mapper is a snapshot: it must be re-obtained after any
// mutation.
func (m Model) Mapper() SelectionMapper {
	return m.layoutMapper()
}

func (m Model) layoutMapper() layoutMapper {
	return layoutMapper{
		columns: m.cfg.columns(),
		gutter:  m.gutterWidth(),
		yOffset: m.viewport.YOffset,
		docLen:  m.doc.Len(),
	}
}

func (m Model) editable() bool {
	return !m.cfg.ReadOnly && m.doc.Editable()
}

func (m *Model) syncFromDocument() (caretChanged bool) {
	ver := m.doc.Version()
	caret := m.doc.Caret()
	if ver == m.lastDocVersion && caret == m.lastCaret {
		return false
	}
	caretChanged = caret != m.lastCaret
	m.lastDocVersion = ver
	m.lastCaret = caret
	m.rebuildContent()
	return caretChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCaret() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.doc.Caret() / m.cfg.columns()
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
