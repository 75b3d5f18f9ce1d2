// Package reporter formats scan results for terminals and machines.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gohilite/pkg/runner"
)

// Reporter formats and writes scan results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of unmatched brackets reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	// Default writer to stdout if not specified
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// countIssues counts unmatched brackets across all files.
func countIssues(result *runner.Result) int {
	if result == nil {
		return 0
	}
	var total int
	for _, file := range result.Files {
		if file.Result != nil {
			total += len(file.Result.Brackets.Unmatched)
		}
	}
	return total
}
