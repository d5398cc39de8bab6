package importflow

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kestrelbio/seqpad/internal/grapheme"
)

// flowInput is the flow's own transient editing surface for the raw
// pasted text. Unlike the sequence editor it accepts any character:
// invalid input must stay visible so the user can judge how far the
// paste diverges from a valid sequence.
type flowInput struct {
	units []string
	caret int
}

func newFlowInput(text string) flowInput {
	units := grapheme.Split(text)
	return flowInput{units: units, caret: len(units)}
}

func (in flowInput) Text() string {
	var sb strings.Builder
	for _, u := range in.units {
		sb.WriteString(u)
	}
	return sb.String()
}

// handleKey applies one key event and reports whether the text changed.
func (in *flowInput) handleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 || msg.Alt {
			return false
		}
		for _, u := range grapheme.Split(string(msg.Runes)) {
			in.units = append(in.units[:in.caret], append([]string{u}, in.units[in.caret:]...)...)
			in.caret++
		}
		return true
	case tea.KeySpace:
		in.units = append(in.units[:in.caret], append([]string{" "}, in.units[in.caret:]...)...)
		in.caret++
		return true
	case tea.KeyBackspace:
		if in.caret == 0 {
			return false
		}
		in.units = append(in.units[:in.caret-1], in.units[in.caret:]...)
		in.caret--
		return true
	case tea.KeyDelete:
		if in.caret >= len(in.units) {
			return false
		}
		in.units = append(in.units[:in.caret], in.units[in.caret+1:]...)
		return true
	case tea.KeyLeft:
		if in.caret > 0 {
			in.caret--
		}
		return false
	case tea.KeyRight:
		if in.caret < len(in.units) {
			in.caret++
		}
		return false
	case tea.KeyHome:
		in.caret = 0
		return false
	case tea.KeyEnd:
		in.caret = len(in.units)
		return false
	default:
		return false
	}
}
