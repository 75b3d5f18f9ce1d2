package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohilite/internal/logging"
	"github.com/yaklabco/gohilite/internal/ui/pretty"
	"github.com/yaklabco/gohilite/pkg/config"
	"github.com/yaklabco/gohilite/pkg/document"
	"github.com/yaklabco/gohilite/pkg/highlight"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

type highlightFlags struct {
	format      string
	language    string
	mode        string
	lineNumbers bool
	compact     bool
}

// highlightOutput is the JSON form of a highlighted file.
type highlightOutput struct {
	Path     string              `json:"path"`
	Language syntax.Language     `json:"language"`
	Mode     highlight.Mode      `json:"mode"`
	Length   int                 `json:"length"`
	Counts   map[syntax.Kind]int `json:"counts"`
	Spans    []highlight.Span    `json:"spans"`
}

func newHighlightCommand() *cobra.Command {
	flags := &highlightFlags{}

	cmd := &cobra.Command{
		Use:   "highlight FILE",
		Short: "Highlight a source file",
		Long: `Highlight a source file with its language's rule table.

Text output paints the file with ANSI colors; JSON output lists the spans
as codepoint ranges in rule-table order.

Examples:
  gohilite highlight app.py                 # Colored output
  gohilite highlight -n app.py              # With line numbers
  gohilite highlight --format json app.js   # Spans as JSON
  gohilite highlight --language clike x.inc # Force a profile`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "language profile (default: detect)")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "overlap mode: exclusive, layered (default from config)")
	cmd.Flags().BoolVarP(&flags.lineNumbers, "line-numbers", "n", false, "prefix lines with their number")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")

	return cmd
}

func runHighlight(cmd *cobra.Command, path string, flags *highlightFlags) error {
	if flags.format != "text" && flags.format != formatJSON {
		return fmt.Errorf("%w: format %q: must be text or json", ErrInvalidUsage, flags.format)
	}

	ctx := commandContext(cmd)

	cfg, err := loadConfig(ctx, cmd, &config.Config{
		Language:  flags.language,
		Highlight: config.HighlightConfig{Mode: flags.mode},
	})
	if err != nil {
		return err
	}

	doc, err := loadDocument(ctx, path, cfg)
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	engine.Open(doc.Language)
	spans := engine.HighlightDocument(doc)
	engine.Close(doc.Language)

	logging.FromContext(ctx).Debug("highlighted",
		logging.FieldPath, path,
		logging.FieldSpans, len(spans),
		logging.FieldMode, engine.Mode(),
	)

	if flags.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), highlightOutput{
			Path:     path,
			Language: doc.Language,
			Mode:     engine.Mode(),
			Length:   doc.Len(),
			Counts:   highlight.CountByKind(spans),
			Spans:    spans,
		}, flags.compact)
	}

	colorMode, _ := cmd.Flags().GetString("color") //nolint:errcheck // Falls back to auto.
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	return writeHighlighted(out, styles, doc, spans, flags.lineNumbers)
}

// writeHighlighted paints doc with spans, optionally numbering lines.
func writeHighlighted(w io.Writer, styles *pretty.Styles, doc document.Document, spans []highlight.Span, lineNumbers bool) error {
	bw := bufio.NewWriter(w)

	rendered := styles.RenderHighlighted(doc.Text, highlight.Paint(spans, doc.Len()))
	if !lineNumbers {
		if _, err := bw.WriteString(rendered); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return flush(bw)
	}

	lines := strings.Split(rendered, "\n")
	// A final newline leaves an empty trailing element that is not a line.
	if strings.HasSuffix(doc.Text, "\n") {
		lines = lines[:len(lines)-1]
	}
	width := len(fmt.Sprint(len(lines)))
	for i, line := range lines {
		prefix := styles.Dim.Render(fmt.Sprintf("%*d │ ", width, i+1))
		if _, err := fmt.Fprintf(bw, "%s%s\n", prefix, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return flush(bw)
}

func flush(bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// writeJSON encodes v to w, indented unless compact.
func writeJSON(w io.Writer, v any, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
