package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gohilite/internal/ui/pretty"
	"github.com/yaklabco/gohilite/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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

	var total int
	for _, file := range result.Files {
		total += r.reportFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// reportFile writes one file's outcome and returns its issue count.
func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	path := r.opts.displayPath(file.Path)

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return 0
	}

	fr := file.Result
	if fr == nil {
		return 0
	}

	if fr.Skipped {
		if r.opts.Verbose {
			fmt.Fprintf(r.bw, "%s: %s\n", r.styles.FilePath.Render(path), r.styles.Dim.Render("skipped: "+fr.SkipReason))
		}
		return 0
	}

	if len(fr.Issues) == 0 {
		if r.opts.Verbose {
			fmt.Fprintf(r.bw, "%s %s\n", r.styles.FilePath.Render(path), r.styles.Dim.Render(
				fmt.Sprintf("(%s, %d lines, %d spans)", fr.Language, fr.Lines, fr.Spans)))
		}
		return 0
	}

	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(fr.Issues)))
	for _, issue := range fr.Issues {
		source := ""
		if r.opts.ShowContext {
			source = issue.Source
		}
		char := []rune(issue.Char)
		if len(char) == 0 {
			continue
		}
		fmt.Fprint(r.bw, r.styles.FormatBracketIssue(path, issue.Line, issue.Column, char[0], source))
	}
	fmt.Fprintln(r.bw)

	return len(fr.Issues)
}
