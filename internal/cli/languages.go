package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohilite/internal/logging"
	"github.com/yaklabco/gohilite/internal/ui/pretty"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

type languagesFlags struct {
	format string
}

// languageInfo represents a profile in JSON output.
type languageInfo struct {
	Language   string   `json:"language"`
	Title      string   `json:"title"`
	Aliases    []string `json:"aliases"`
	Extensions []string `json:"extensions"`
	Rules      []string `json:"rules"`
}

func newLanguagesCommand() *cobra.Command {
	flags := &languagesFlags{}

	cmd := &cobra.Command{
		Use:     "languages",
		Aliases: []string{"langs"},
		Short:   "List language profiles",
		Long: `List the built-in language profiles with their aliases, the file
extensions that select them, and their rule tables in precedence order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles := syntax.Profiles()

			switch flags.format {
			case formatJSON:
				return outputLanguagesJSON(cmd, profiles)
			case "table":
				colorMode, _ := cmd.Flags().GetString("color") //nolint:errcheck // Falls back to auto.
				out := cmd.OutOrStdout()
				colorEnabled := pretty.IsColorEnabled(colorMode, out)
				formatter := pretty.NewTableFormatter(pretty.NewStyles(colorEnabled), colorEnabled,
					pretty.TerminalWidth(out, 0))
				_, err := fmt.Fprint(out, formatter.FormatProfiles(profiles))
				if err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				return nil
			case "text":
			default:
				return fmt.Errorf("%w: format %q: must be text, table or json", ErrInvalidUsage, flags.format)
			}

			logger := logging.NewInteractive()
			logger.Info("available languages")

			for _, p := range profiles {
				logger.Info(string(p.Language),
					logging.FieldTitle, p.Title,
					logging.FieldExtensions, strings.Join(p.Extensions, " "),
					logging.FieldRules, len(p.Rules),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, table, json")

	return cmd
}

// outputLanguagesJSON outputs profiles as a JSON array.
func outputLanguagesJSON(cmd *cobra.Command, profiles []syntax.Profile) error {
	infos := make([]languageInfo, 0, len(profiles))
	for _, p := range profiles {
		rules := make([]string, 0, len(p.Rules))
		for _, r := range p.Rules {
			rules = append(rules, r.Name)
		}
		infos = append(infos, languageInfo{
			Language:   string(p.Language),
			Title:      p.Title,
			Aliases:    append([]string{}, p.Aliases...),
			Extensions: p.Extensions,
			Rules:      rules,
		})
	}

	if err := writeJSON(cmd.OutOrStdout(), infos, false); err != nil {
		return fmt.Errorf("encoding languages: %w", err)
	}
	return nil
}
