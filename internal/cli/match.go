package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohilite/internal/logging"
	"github.com/yaklabco/gohilite/internal/ui/pretty"
	"github.com/yaklabco/gohilite/pkg/bracket"
	"github.com/yaklabco/gohilite/pkg/config"
	"github.com/yaklabco/gohilite/pkg/document"
)

type matchFlags struct {
	format    string
	language  string
	offset    int
	line      int
	col       int
	noContext bool
}

// matchPosition is one end of a matched pair.
type matchPosition struct {
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Char   string `json:"char"`
}

// matchPair is the JSON form of a bracket.Match.
type matchPair struct {
	Open  matchPosition `json:"open"`
	Close matchPosition `json:"close"`
}

// matchOutput is the JSON form of the match command.
type matchOutput struct {
	Path    string      `json:"path"`
	Cursor  int         `json:"cursor"`
	Matches []matchPair `json:"matches"`
}

func newMatchCommand() *cobra.Command {
	flags := &matchFlags{}

	cmd := &cobra.Command{
		Use:   "match FILE",
		Short: "Find the bracket pair at a cursor position",
		Long: `Find matching bracket pairs around a cursor.

The character before the cursor is examined first, then the one after it.
An opener is matched forward and a closer backward, honoring nesting.
The cursor is a codepoint offset (--offset) or a 1-based line and column.

Examples:
  gohilite match app.js --offset 42
  gohilite match app.js --line 3 --col 17
  gohilite match app.js --line 3 --col 17 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "language profile (default: detect)")
	cmd.Flags().IntVar(&flags.offset, "offset", -1, "cursor as a codepoint offset")
	cmd.Flags().IntVar(&flags.line, "line", 0, "cursor line (1-based)")
	cmd.Flags().IntVar(&flags.col, "col", 1, "cursor column (1-based)")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source lines in text output")
	cmd.MarkFlagsMutuallyExclusive("offset", "line")

	return cmd
}

func runMatch(cmd *cobra.Command, path string, flags *matchFlags) error {
	if flags.format != "text" && flags.format != formatJSON {
		return fmt.Errorf("%w: format %q: must be text or json", ErrInvalidUsage, flags.format)
	}

	ctx := commandContext(cmd)

	cfg, err := loadConfig(ctx, cmd, &config.Config{Language: flags.language})
	if err != nil {
		return err
	}

	doc, err := loadDocument(ctx, path, cfg)
	if err != nil {
		return err
	}

	index := doc.Index()
	cursor, err := resolveCursor(index, flags)
	if err != nil {
		return err
	}
	doc = doc.WithCursor(cursor)

	runes := []rune(doc.Text)
	matches := bracket.MatchRunes(runes, doc.Cursor)

	logging.FromContext(ctx).Debug("matched brackets",
		logging.FieldPath, path,
		logging.FieldCursor, doc.Cursor,
		"matches", len(matches),
	)

	if flags.format == formatJSON {
		out := matchOutput{Path: path, Cursor: doc.Cursor, Matches: make([]matchPair, 0, len(matches))}
		for _, m := range matches {
			out.Matches = append(out.Matches, matchPair{
				Open:  position(index, runes, m.First),
				Close: position(index, runes, m.Second),
			})
		}
		return writeJSON(cmd.OutOrStdout(), out, false)
	}

	colorMode, _ := cmd.Flags().GetString("color") //nolint:errcheck // Falls back to auto.
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	bw := bufio.NewWriter(cmd.OutOrStdout())
	if len(matches) == 0 {
		line, col := index.LineAt(doc.Cursor)
		fmt.Fprintln(bw, styles.Dim.Render(fmt.Sprintf("no bracket pair at %d:%d", line, col)))
		return flush(bw)
	}

	for _, m := range matches {
		open := position(index, runes, m.First)
		closing := position(index, runes, m.Second)
		fmt.Fprint(bw, styles.FormatMatch(m, open.Line, open.Column, closing.Line, closing.Column))
		if flags.noContext {
			continue
		}
		fmt.Fprint(bw, styles.FormatSourceContext(index.LineContent(open.Line), open.Column))
		if closing.Line != open.Line {
			fmt.Fprint(bw, styles.FormatSourceContext(index.LineContent(closing.Line), closing.Column))
		}
	}
	return flush(bw)
}

// resolveCursor turns the cursor flags into a codepoint offset.
func resolveCursor(index *document.Index, flags *matchFlags) (int, error) {
	switch {
	case flags.offset >= 0:
		return flags.offset, nil
	case flags.line > 0:
		offset, ok := index.Offset(flags.line, flags.col)
		if !ok {
			return 0, fmt.Errorf("%w: position %d:%d is outside the file", ErrInvalidUsage, flags.line, flags.col)
		}
		return offset, nil
	default:
		return 0, fmt.Errorf("%w: one of --offset or --line is required", ErrInvalidUsage)
	}
}

func position(index *document.Index, runes []rune, offset int) matchPosition {
	line, col := index.LineAt(offset)
	return matchPosition{Offset: offset, Line: line, Column: col, Char: string(runes[offset])}
}
