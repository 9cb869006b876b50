package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diegomathiasDD/interfaces/internal/config"
	"github.com/diegomathiasDD/interfaces/internal/formatter"
	"github.com/diegomathiasDD/interfaces/internal/note"
	"github.com/diegomathiasDD/interfaces/internal/ui"
)

var formatCmd = &cobra.Command{
	Use:   "format [TEXT...]",
	Short: "Format text with a named mode",
	Long: `Format text through one of the registered formatting modes.

Text comes from the arguments, from --file, or from stdin when neither
is given. Unknown modes fall back to plain (no transformation).

When --file points at a markdown note, YAML frontmatter is preserved and
its 'mode' key is used unless --mode overrides it.`,
	Example: `  textfmt format -m upper "hello world"
  textfmt format -m reverse Ana
  echo "hello" | textfmt format -m title
  textfmt format -f note.md`,
	RunE: runFormat,
}

var (
	formatMode        string
	formatFile        string
	formatInteractive bool
)

func init() {
	formatCmd.Flags().StringVarP(&formatMode, "mode", "m", "", "formatting mode (see 'textfmt modes')")
	formatCmd.Flags().StringVarP(&formatFile, "file", "f", "", "format a markdown note file")
	formatCmd.Flags().BoolVarP(&formatInteractive, "interactive", "i", false, "pick the mode interactively")
}

func runFormat(cmd *cobra.Command, args []string) error {
	if formatFile != "" {
		return formatNoteFile(cmd.OutOrStdout(), formatFile)
	}

	text, err := gatherText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	mode := chooseMode(formatMode, "", config.Get().GetMode())

	if formatInteractive && ui.IsInteractive() {
		picked, err := pickMode(text)
		if err != nil {
			return fmt.Errorf("failed to pick mode: %w", err)
		}
		if picked != "" {
			mode = picked
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.Resolve(mode).Format(text))
	return nil
}

// formatNoteFile formats the body of a markdown note, keeping its
// frontmatter intact. The note's own mode applies unless --mode is set.
func formatNoteFile(w io.Writer, path string) error {
	n, err := note.ParseFile(path)
	if err != nil {
		return err
	}

	mode := chooseMode(formatMode, n.Meta.Mode, config.Get().GetMode())
	n.Body = formatter.Resolve(mode).Format(n.Body)

	rendered, err := n.Render()
	if err != nil {
		return err
	}
	fmt.Fprint(w, rendered)
	return nil
}

// gatherText joins the argument words, falling back to stdin when no
// arguments were given.
func gatherText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// chooseMode picks the effective mode: an explicit flag wins, then the
// note's own mode, then the configured default.
func chooseMode(flagMode, noteMode, defaultMode string) string {
	if strings.TrimSpace(flagMode) != "" {
		return flagMode
	}
	if strings.TrimSpace(noteMode) != "" {
		return noteMode
	}
	return defaultMode
}

// pickMode runs the interactive picker, previewing each mode against the
// text about to be formatted.
func pickMode(text string) (string, error) {
	sample := text
	if sample == "" {
		sample = "hello world"
	}

	options := make([]ui.ModeOption, 0, len(formatter.Modes()))
	for _, mode := range formatter.Modes() {
		options = append(options, ui.ModeOption{
			Mode:   mode,
			Sample: formatter.Resolve(mode).Format(sample),
		})
	}
	return ui.RunPicker("Pick a mode:", options)
}
