package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/diegomathiasDD/interfaces/internal/formatter"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the recognized formatting modes",
	Long: `List every mode name the resolver recognizes. Any other name falls
back to plain.`,
	RunE: runModes,
}

var modesOutput string

func init() {
	modesCmd.Flags().StringVarP(&modesOutput, "output", "o", "text", "output format: text or yaml")
}

func runModes(cmd *cobra.Command, args []string) error {
	out, err := renderModes(modesOutput)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// renderModes formats the mode list as plain lines or as a YAML document.
func renderModes(format string) (string, error) {
	switch format {
	case "text", "":
		var out string
		for _, mode := range formatter.Modes() {
			out += mode + "\n"
		}
		return out, nil

	case "yaml":
		doc := struct {
			Modes []string `yaml:"modes"`
		}{Modes: formatter.Modes()}

		data, err := yaml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("failed to serialize modes: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown output format %q (want text or yaml)", format)
	}
}
