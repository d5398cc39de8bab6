package editor

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/kestrelbio/seqpad/seqdoc"
)

// Palette returns n visually distinct colors spread around the HCL hue
// wheel. HCL keeps perceived lightness stable across hues, so every
// residue reads at the same weight.
func Palette(n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	out := make([]lipgloss.Color, 0, n)
	for i := 0; i < n; i++ {
		h := float64(i) * 360.0 / float64(n)
		c := colorful.Hcl(h, 0.5, 0.7).Clamped()
		out = append(out, lipgloss.Color(c.Hex()))
	}
	return out
}

// ResidueStyles assigns a stable foreground style to each letter of
// alphabet, for use as a Config.ColorFunc backend.
func ResidueStyles(alphabet string) map[rune]lipgloss.Style {
	runes := []rune(alphabet)
	colors := Palette(len(runes))
	styles := make(map[rune]lipgloss.Style, len(runes))
	for i, r := range runes {
		styles[r] = lipgloss.NewStyle().Foreground(colors[i])
	}
	return styles
}

// ResidueColorFunc builds a Config.ColorFunc from per-letter styles,
// falling back to base for letters outside the map.
func ResidueColorFunc(styles map[rune]lipgloss.Style, base lipgloss.Style) func(*seqdoc.Symbol) lipgloss.Style {
	return func(sym *seqdoc.Symbol) lipgloss.Style {
		for _, r := range sym.Value {
			if st, ok := styles[r]; ok {
				return st
			}
			break
		}
		return base
	}
}
