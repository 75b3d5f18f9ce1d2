// Package cli provides the Cobra command structure for gohilite.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gohilite/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gohilite command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "gohilite",
		Short: "Regex syntax highlighting, bracket matching and minimaps",
		Long: `gohilite is the text-intelligence core of a code editor, usable from a shell.

It highlights Python, C-family, JavaScript/TypeScript and HTML sources with
ordered regex rule tables, finds matching bracket pairs around a cursor,
and renders a scaled minimap of a document as JSON, PNG or a terminal
preview. The scan command audits whole trees concurrently.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if cmd.Flags().Changed("log-level") {
				logging.SetLevel(logLevel)
			}
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().String("color", "auto",
		"colorize output: auto, always, never")
	// Command lookup strips flags before cobra adds --help, so register it
	// now or "--help --color never" reads "--color" as the help value.
	rootCmd.InitDefaultHelpFlag()

	// Add subcommands.
	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newMatchCommand())
	rootCmd.AddCommand(newMinimapCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	newHelpRenderer().install(rootCmd)

	return rootCmd
}
