package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diegomathiasDD/interfaces/internal/config"
	"github.com/diegomathiasDD/interfaces/internal/formatter"
	"github.com/diegomathiasDD/interfaces/internal/message"
	"github.com/diegomathiasDD/interfaces/internal/ui"
)

var greetCmd = &cobra.Command{
	Use:   "greet [NAME]",
	Short: "Build a formatted greeting",
	Long: `Build the greeting message for NAME and run it through the selected
formatting mode. Without NAME, an interactive terminal prompts for one.`,
	Example: `  textfmt greet Diego
  textfmt greet -m upper Diego
  textfmt greet          # prompts for a name when interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGreet,
}

var greetMode string

func init() {
	greetCmd.Flags().StringVarP(&greetMode, "mode", "m", "", "formatting mode (see 'textfmt modes')")
}

func runGreet(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	if name == "" && ui.IsInteractive() {
		entered, err := ui.RunInput("Your name:", "world")
		if err != nil {
			return fmt.Errorf("failed to read name: %w", err)
		}
		name = entered
	}
	if name == "" {
		name = "world"
	}

	cfg := config.Get()
	mode := chooseMode(greetMode, "", cfg.GetMode())

	client, err := message.NewClientWithTemplate(formatter.Resolve(mode), cfg.GetTemplate())
	if err != nil {
		return fmt.Errorf("failed to build message client: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), client.BuildMessage(name))
	return nil
}
