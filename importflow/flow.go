package importflow

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kestrelbio/seqpad/classify"
	"github.com/kestrelbio/seqpad/seqdoc"
)

// State is the flow's lifecycle: Idle -> Showing -> {Committed, Cancelled}.
// The terminal states are final; a resolved flow cannot be reused.
type State uint8

const (
	StateIdle State = iota
	StateShowing
	StateCommitted
	StateCancelled
)

// Result is what the flow resolves with. A cancelled flow carries an
// empty sequence and KindUnknown.
type Result struct {
	Sequence string
	Kind     classify.Kind
	Target   seqdoc.Span
}

// ResolvedMsg is emitted exactly once, on commit or cancel.
type ResolvedMsg Result

// KeyMap defines the flow's key bindings.
type KeyMap struct {
	NextChoice key.Binding
	PrevChoice key.Binding
	Commit     key.Binding
	Cancel     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextChoice: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next interpretation")),
		PrevChoice: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous interpretation")),
		Commit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "import")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Config configures a flow. Text is the pasted text; Target is the
// pre-paste selection range the committed sequence will replace.
type Config struct {
	Text   string
	Target seqdoc.Span

	AcceptProtein bool
	AcceptDNA     bool

	KeyMap KeyMap
	Style  Style
}

// Model is a single-shot Bubble Tea component. New enters Showing
// directly; there is no way back to Idle.
type Model struct {
	cfg   Config
	state State
	opt   classify.Options

	input    flowInput
	res      classify.Result
	selected int

	width int
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Commit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if !cfg.AcceptProtein && !cfg.AcceptDNA {
		cfg.AcceptProtein = true
		cfg.AcceptDNA = true
	}
	m := Model{
		cfg:   cfg,
		state: StateShowing,
		opt:   classify.Options{AcceptProtein: cfg.AcceptProtein, AcceptDNA: cfg.AcceptDNA},
		input: newFlowInput(cfg.Text),
		width: 60,
	}
	m.reclassify()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) State() State { return m.state }

// Done reports whether the flow has resolved.
func (m Model) Done() bool {
	return m.state == StateCommitted || m.state == StateCancelled
}

// Interpretations returns the current choices in presentation order.
func (m Model) Interpretations() []*classify.Interpretation {
	return m.res.Interpretations()
}

// Selected returns the currently highlighted interpretation.
func (m Model) Selected() (*classify.Interpretation, bool) {
	choices := m.res.Interpretations()
	if len(choices) == 0 || m.selected >= len(choices) {
		return nil, false
	}
	return choices[m.selected], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.state != StateShowing {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Cancel):
		m.state = StateCancelled
		return m, resolveCmd(Result{Kind: classify.KindUnknown, Target: m.cfg.Target})

	case key.Matches(msg, km.Commit):
		choice, ok := m.Selected()
		if !ok {
			return m, nil
		}
		m.state = StateCommitted
		return m, resolveCmd(Result{
			Sequence: choice.CleanSequence,
			Kind:     choice.Kind,
			Target:   m.cfg.Target,
		})

	case key.Matches(msg, km.NextChoice):
		m.cycle(1)
		return m, nil
	case key.Matches(msg, km.PrevChoice):
		m.cycle(-1)
		return m, nil
	}

	// Everything else edits the raw input; the classification is
	// recomputed live on every change.
	if m.input.handleKey(msg) {
		m.reclassify()
	}
	return m, nil
}

func (m *Model) cycle(delta int) {
	n := len(m.res.Interpretations())
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

func (m *Model) reclassify() {
	m.res = classify.Classify(m.input.Text(), m.opt)
	if n := len(m.res.Interpretations()); n > 0 && m.selected >= n {
		m.selected = n - 1
	}
}

func resolveCmd(res Result) tea.Cmd {
	return func() tea.Msg {
		return ResolvedMsg(res)
	}
}
