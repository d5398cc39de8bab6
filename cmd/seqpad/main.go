// Command seqpad runs the sequence editor widget full-screen, with the
// paste-import flow wired in.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kestrelbio/seqpad/classify"
	"github.com/kestrelbio/seqpad/editor"
	"github.com/kestrelbio/seqpad/importflow"
	"github.com/kestrelbio/seqpad/seqdoc"
	"github.com/kestrelbio/seqpad/seqio/fasta"
)

var rootCmd = &cobra.Command{
	Use:   "seqpad",
	Short: "Terminal editor for protein and nucleotide sequences",
	Long: `seqpad is a terminal widget for editing biological sequences.
Typed input is filtered against the accepted alphabet; pasted text is
classified into protein and nucleotide interpretations before import.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().String("alphabet", "both", "accepted alphabet: protein, dna, or both")
	rootCmd.Flags().String("fasta", "", "load the first record of a FASTA file")
	rootCmd.Flags().Bool("read-only", false, "open as a read-only viewer")
	rootCmd.Flags().Int("width", 60, "symbols per row")

	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("seqpad")
	viper.AutomaticEnv()
}

func run(cmd *cobra.Command, args []string) error {
	protein, dna, err := alphabetFlags(viper.GetString("alphabet"))
	if err != nil {
		return err
	}

	text := ""
	mode := seqdoc.ModeFreeEdit
	if path := viper.GetString("fasta"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open fasta: %w", err)
		}
		rec, err := fasta.ReadOne(f)
		f.Close()
		if err != nil {
			return err
		}
		text = rec.Sequence
		mode = seqdoc.ModeViewer
	}
	if viper.GetBool("read-only") {
		mode = seqdoc.ModeViewer
	}

	cfg := editor.Config{
		Text:          text,
		Mode:          mode,
		AcceptProtein: protein,
		AcceptDNA:     dna,
		PasteEnabled:  mode == seqdoc.ModeFreeEdit,
		Columns:       viper.GetInt("width"),
		ShowRuler:     true,
		Placeholder:   "type or paste a sequence",
		Style:         editor.DefaultStyle(),
	}
	if termenv.ColorProfile() != termenv.Ascii {
		alphabet := classify.Options{AcceptProtein: protein, AcceptDNA: dna}
		letters := acceptedLetters(alphabet)
		cfg.ColorFunc = editor.ResidueColorFunc(editor.ResidueStyles(letters), cfg.Style.Text)
	}

	app := appModel{
		editor:        editor.New(cfg),
		acceptProtein: protein,
		acceptDNA:     dna,
	}
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func alphabetFlags(s string) (protein, dna bool, err error) {
	switch strings.ToLower(s) {
	case "protein":
		return true, false, nil
	case "dna", "nucleotide":
		return false, true, nil
	case "both", "":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("unknown alphabet %q (want protein, dna, or both)", s)
	}
}

func acceptedLetters(opt classify.Options) string {
	set := classify.Accepted(opt)
	var sb strings.Builder
	for r := 'A'; r <= 'Z'; r++ {
		if set[r] {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// appModel hosts the editor and, while a paste is being disambiguated,
// the import flow.
type appModel struct {
	editor editor.Model
	flow   *importflow.Model

	acceptProtein bool
	acceptDNA     bool
}

func (a appModel) Init() tea.Cmd { return nil }

func (a appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.editor = a.editor.SetSize(msg.Width, msg.Height)
		if a.flow != nil {
			flow, cmd := a.flow.Update(msg)
			a.flow = &flow
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return a, tea.Quit
		}
		if a.flow != nil {
			flow, cmd := a.flow.Update(msg)
			a.flow = &flow
			return a, cmd
		}

	case editor.PasteRequestMsg:
		flow := importflow.New(importflow.Config{
			Text:          msg.Text,
			Target:        msg.Target,
			AcceptProtein: a.acceptProtein,
			AcceptDNA:     a.acceptDNA,
		})
		a.flow = &flow
		return a, nil

	case importflow.ResolvedMsg:
		a.flow = nil
		if msg.Kind != classify.KindUnknown {
			a.editor = a.editor.CommitPaste(msg.Sequence, msg.Target)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a appModel) View() string {
	base := a.editor.View()
	if a.flow != nil {
		return a.flow.Composite(base)
	}
	return base
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
