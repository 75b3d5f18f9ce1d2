package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gohilite/internal/ui/pretty"
	"github.com/yaklabco/gohilite/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TableReporter formats results as a styled table, one row per file.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, colorEnabled, pretty.TerminalWidth(opts.Writer, defaultTermWidth)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to scan."))
		}
		return 0, nil
	}

	display := *result
	display.Files = make([]runner.FileOutcome, len(result.Files))
	for i, file := range result.Files {
		file.Path = r.opts.displayPath(file.Path)
		display.Files[i] = file
	}

	fmt.Fprint(r.bw, r.formatter.FormatTable(&display))

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.formatter.FormatTableSummary(result.Stats, ""))
	}

	return countIssues(result), nil
}
