package cli

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohilite/internal/configloader"
	"github.com/yaklabco/gohilite/internal/ui/pretty"
)

// flagLinePattern splits a pflag usage line into indent, flag names and
// description. pflag separates the last two by at least two spaces.
var flagLinePattern = regexp.MustCompile(`^(\s*)(\S.*?)\s{2,}(\S.*)$`) //nolint:gochecknoglobals // Compiled once.

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end}}

{{- if not .HasParent}}

{{ heading "Environment:" }}
{{ envVars }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trimTrailing . }}

{{end}}` + usageTemplate

// helpRenderer renders cobra help and usage text with the highlight palette.
// Color is resolved per invocation so --color applies to help output.
type helpRenderer struct {
	usage *template.Template
	help  *template.Template
}

// newHelpRenderer parses the help templates. The funcs are placeholders
// until render binds them to a style set.
func newHelpRenderer() *helpRenderer {
	funcs := helpFuncs(pretty.NewStyles(false))
	return &helpRenderer{
		usage: template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate)),
		help:  template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate)),
	}
}

// install sets the help and usage functions on cmd; subcommands inherit them.
func (h *helpRenderer) install(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return h.render(h.usage, c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.render(h.help, c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func (h *helpRenderer) render(tmpl *template.Template, cmd *cobra.Command) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	bound, err := tmpl.Clone()
	if err != nil {
		return fmt.Errorf("clone %s template: %w", tmpl.Name(), err)
	}
	if err := bound.Funcs(helpFuncs(styles)).Execute(cmd.OutOrStdout(), cmd); err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return nil
}

func helpFuncs(styles *pretty.Styles) template.FuncMap {
	return template.FuncMap{
		"heading":      styles.SummaryTitle.Render,
		"command":      styles.Keyword.Render,
		"subcommand":   styles.Function.Render,
		"example":      styles.Comment.Render,
		"dim":          styles.Dim.Render,
		"join":         strings.Join,
		"rpad":         rpad,
		"trimTrailing": trimTrailingWhitespace,
		"flags":        func(usages string) string { return styleFlagUsages(styles, usages) },
		"envVars":      func() string { return envVarsUsage(styles) },
	}
}

// styleFlagUsages colors flag names and dims their value type.
func styleFlagUsages(styles *pretty.Styles, usages string) string {
	lines := strings.Split(strings.TrimSuffix(usages, "\n"), "\n")
	for i, line := range lines {
		m := flagLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		tokens := strings.Fields(m[2])
		for j, tok := range tokens {
			if name, ok := strings.CutPrefix(tok, "-"); ok {
				comma := strings.HasSuffix(name, ",")
				tokens[j] = styles.Builtin.Render("-" + strings.TrimSuffix(name, ","))
				if comma {
					tokens[j] += ","
				}
				continue
			}
			tokens[j] = styles.Dim.Render(tok)
		}
		lines[i] = m[1] + strings.Join(tokens, " ") + "   " + m[3]
	}
	return strings.Join(lines, "\n")
}

// envVarsUsage lists the GOHILITE_* variables with their descriptions.
func envVarsUsage(styles *pretty.Styles) string {
	names := configloader.SortedEnvVars()
	help := configloader.ListEnvVars()

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "  "+styles.Builtin.Render(rpad(name, width))+"   "+help[name])
	}
	return strings.Join(lines, "\n")
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
