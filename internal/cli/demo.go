package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diegomathiasDD/interfaces/internal/formatter"
	"github.com/diegomathiasDD/interfaces/internal/ui"
)

// demoSample is the fixed string every demo mode formats.
const demoSample = "hello world"

// demoModes is the fixed list the demo walks through. "invalid" is
// deliberate: it shows the fallback to plain.
var demoModes = []string{"upper", "lower", "title", "reverse", "invalid"}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show every formatting mode on a sample string",
	Long: `Apply each formatting mode to a fixed sample string, including an
unrecognized mode to show the plain fallback, then exit.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	color := useColor() && ui.IsStdoutInteractive()

	for _, line := range demoLines(demoSample, color) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), ui.Dim("All modes demonstrated. Try 'textfmt format --help' next.", color))
	return nil
}

// demoLines builds one output line per demo mode.
func demoLines(sample string, color bool) []string {
	lines := make([]string, 0, len(demoModes))
	for _, mode := range demoModes {
		label := fmt.Sprintf("%-8s", mode)
		result := formatter.Resolve(mode).Format(sample)
		lines = append(lines, fmt.Sprintf("%s %s", ui.Label(label, color), result))
	}
	return lines
}
