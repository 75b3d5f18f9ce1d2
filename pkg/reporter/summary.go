package reporter

import (
	"bufio"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/gohilite/internal/ui/pretty"
	"github.com/yaklabco/gohilite/pkg/runner"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

// Table layout constants for summary output.
// Both tables use the same width for visual consistency.
const (
	tableWidth    = 60
	labelColWidth = 20
	numColWidth   = 10
	percentScale  = 100
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// languageRow aggregates the files of one language.
type languageRow struct {
	language  syntax.Language
	files     int
	lines     int
	spans     int
	unmatched int
}

// SummaryReporter formats results as aggregated tables: per language and
// per span kind.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || result.Stats.FilesProcessed == 0 {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No files highlighted"))
		return 0, nil
	}

	r.renderLanguageTable(byLanguage(result))
	fmt.Fprintln(r.bw)
	r.renderKindTable(result.Stats)
	fmt.Fprintln(r.bw)
	fmt.Fprint(r.bw, r.styles.Bold.Render("Total: ")+r.styles.FormatSummaryOneLine(result.Stats))

	return result.Stats.UnmatchedBrackets, nil
}

// byLanguage groups highlighted files by language, sorted by language id.
func byLanguage(result *runner.Result) []languageRow {
	rows := make(map[syntax.Language]*languageRow)
	for _, file := range result.Files {
		fr := file.Result
		if file.Error != nil || fr == nil || fr.Skipped {
			continue
		}
		row, ok := rows[fr.Language]
		if !ok {
			row = &languageRow{language: fr.Language}
			rows[fr.Language] = row
		}
		row.files++
		row.lines += fr.Lines
		row.spans += fr.Spans
		row.unmatched += len(fr.Brackets.Unmatched)
	}

	out := make([]languageRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	slices.SortFunc(out, func(a, b languageRow) int {
		return strings.Compare(string(a.language), string(b.language))
	})
	return out
}

func (r *SummaryReporter) renderLanguageTable(rows []languageRow) {
	fmt.Fprintln(r.bw, r.styles.Bold.Render("Languages"))
	fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	// Header - pad first, then style
	fmt.Fprintf(r.bw, "%s%s%s%s%s\n",
		r.styles.TableHeader.Render(padRight("Language", labelColWidth)),
		r.styles.TableHeader.Render(padLeft("Files", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Lines", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Spans", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Unmatched", numColWidth)),
	)
	fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, row := range rows {
		name := padRight(row.language.String(), labelColWidth)
		if row.unmatched > 0 {
			name = r.styles.TableWarnRow.Render(name)
		}
		fmt.Fprintf(r.bw, "%s%s%s%s%s\n",
			name,
			padLeft(strconv.Itoa(row.files), numColWidth),
			padLeft(strconv.Itoa(row.lines), numColWidth),
			padLeft(strconv.Itoa(row.spans), numColWidth),
			padLeft(strconv.Itoa(row.unmatched), numColWidth),
		)
	}
}

func (r *SummaryReporter) renderKindTable(stats runner.Stats) {
	fmt.Fprintln(r.bw, r.styles.Bold.Render("Span kinds"))
	fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.bw, "%s%s%s\n",
		r.styles.TableHeader.Render(padRight("Kind", labelColWidth)),
		r.styles.TableHeader.Render(padLeft("Spans", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Share", numColWidth)),
	)
	fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, kind := range syntax.Kinds() {
		n := stats.SpansByKind[kind]
		if n == 0 {
			continue
		}
		share := 0.0
		if stats.SpansTotal > 0 {
			share = float64(n) * percentScale / float64(stats.SpansTotal)
		}
		fmt.Fprintf(r.bw, "%s%s%s\n",
			r.styles.KindStyle(kind).Render(padRight(kind.String(), labelColWidth)),
			padLeft(strconv.Itoa(n), numColWidth),
			padLeft(fmt.Sprintf("%.1f%%", share), numColWidth),
		)
	}
}
