// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/gohilite/pkg/syntax"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Token kind styles
	Keyword  lipgloss.Style
	String   lipgloss.Style
	Comment  lipgloss.Style
	Function lipgloss.Style
	Number   lipgloss.Style
	Class    lipgloss.Style
	Operator lipgloss.Style
	Builtin  lipgloss.Style

	// Bracket match highlight
	BracketMatch lipgloss.Style

	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Location components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableWarnRow   lipgloss.Style
	TableLegend    lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style

	colorEnabled bool
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// ColorEnabled reports whether the styles emit color.
func (s *Styles) ColorEnabled() bool {
	return s.colorEnabled
}

// newColorStyles creates styles with true-color token colors and ANSI 256
// colors for chrome.
func newColorStyles() *Styles {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }

	return &Styles{
		Keyword:  fg("#569cd6"),
		String:   fg("#ce9178"),
		Comment:  fg("#6a9955").Italic(true),
		Function: fg("#dcdcaa"),
		Number:   fg("#b5cea8"),
		Class:    fg("#4ec9b0"),
		Operator: fg("#d4d4d4"),
		Builtin:  fg("#c586c0"),

		BracketMatch: lipgloss.NewStyle().Background(lipgloss.Color("#3a3d41")).Bold(true),

		Error:   fg("9").Bold(true),
		Warning: fg("11").Bold(true),
		Info:    fg("12").Bold(true),

		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   fg("8"),
		Message:    lipgloss.NewStyle(),
		SourceLine: fg("7"),
		Caret:      fg("9"),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      fg("10").Bold(true),
		Failure:      fg("9").Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableWarnRow:   fg("11"),
		TableLegend:    fg("8").Italic(true),
		TableSeparator: fg("8"),

		Dim:  fg("8"),
		Bold: lipgloss.NewStyle().Bold(true),

		colorEnabled: true,
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Keyword:        plain,
		String:         plain,
		Comment:        plain,
		Function:       plain,
		Number:         plain,
		Class:          plain,
		Operator:       plain,
		Builtin:        plain,
		BracketMatch:   plain,
		Error:          plain,
		Warning:        plain,
		Info:           plain,
		FilePath:       plain,
		Location:       plain,
		Message:        plain,
		SourceLine:     plain,
		Caret:          plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableWarnRow:   plain,
		TableLegend:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// KindStyle returns the style for a token kind. Unknown kinds render plain.
func (s *Styles) KindStyle(kind syntax.Kind) lipgloss.Style {
	switch kind {
	case syntax.KindKeyword:
		return s.Keyword
	case syntax.KindString:
		return s.String
	case syntax.KindComment:
		return s.Comment
	case syntax.KindFunction:
		return s.Function
	case syntax.KindNumber:
		return s.Number
	case syntax.KindClass:
		return s.Class
	case syntax.KindOperator:
		return s.Operator
	case syntax.KindBuiltin:
		return s.Builtin
	default:
		return lipgloss.NewStyle()
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
