package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/diegomathiasDD/interfaces/internal/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "textfmt",
		Short: "A pluggable text formatting toolkit",
		Long: `Textfmt formats text through interchangeable strategies (upper, lower,
title, reverse, plain) selected by name at runtime.`,
		Example: `  textfmt format -m upper "hello world"   # HELLO WORLD
  textfmt greet -m title diego            # Hello, Diego! Welcome To The System.
  textfmt modes                           # list recognized modes
  textfmt demo                            # show every mode on a sample string`,
		SilenceErrors: true,
		RunE:          handleUnknownCommand,
	}
)

// Execute runs the root command
func Execute() error {
	// Enable Cobra's built-in command suggestions
	rootCmd.SuggestionsMinimumDistance = 2

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.textfmt/config.toml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable styled output")

	viper.BindPFlag("ui.no_color_flag", rootCmd.PersistentFlags().Lookup("no-color"))

	// Add subcommands
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if err := config.Init(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
}

// Helper functions for CLI

func printSuccess(msg string) {
	fmt.Printf("✓ %s\n", msg)
}

func printInfo(msg string) {
	fmt.Printf("→ %s\n", msg)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("textfmt v0.1.0")
	},
}

// handleUnknownCommand handles the case when no subcommand is provided
func handleUnknownCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return fmt.Errorf("unknown command %q", args[0])
}

// useColor reports whether styled output should be emitted for the
// current invocation.
func useColor() bool {
	if viper.GetBool("ui.no_color_flag") {
		return false
	}
	return config.Get().ShouldColor()
}
