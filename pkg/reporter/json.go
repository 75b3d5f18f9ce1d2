package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gohilite/pkg/runner"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

// jsonSchemaVersion is bumped when the JSON layout changes incompatibly.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path string `json:"path"`
	*runner.FileResult
	Error string `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered   int                     `json:"filesDiscovered"`
	FilesProcessed    int                     `json:"filesProcessed"`
	FilesSkipped      int                     `json:"filesSkipped"`
	FilesErrored      int                     `json:"filesErrored"`
	FilesUnbalanced   int                     `json:"filesUnbalanced"`
	FilesByLanguage   map[syntax.Language]int `json:"filesByLanguage"`
	LinesTotal        int                     `json:"linesTotal"`
	SpansTotal        int                     `json:"spansTotal"`
	SpansByKind       map[syntax.Kind]int     `json:"spansByKind"`
	UnmatchedBrackets int                     `json:"unmatchedBrackets"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.UnmatchedBrackets, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			FilesByLanguage: make(map[syntax.Language]int),
			SpansByKind:     make(map[syntax.Kind]int),
		},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		entry := JSONFileResult{
			Path:       r.opts.displayPath(file.Path),
			FileResult: file.Result,
		}
		if file.Error != nil {
			entry.Error = file.Error.Error()
		}
		output.Files = append(output.Files, entry)
	}

	stats := result.Stats
	output.Summary.FilesDiscovered = stats.FilesDiscovered
	output.Summary.FilesProcessed = stats.FilesProcessed
	output.Summary.FilesSkipped = stats.FilesSkipped
	output.Summary.FilesErrored = stats.FilesErrored
	output.Summary.FilesUnbalanced = stats.FilesUnbalanced
	output.Summary.LinesTotal = stats.LinesTotal
	output.Summary.SpansTotal = stats.SpansTotal
	output.Summary.UnmatchedBrackets = stats.UnmatchedBrackets
	for lang, n := range stats.FilesByLanguage {
		output.Summary.FilesByLanguage[lang] = n
	}
	for kind, n := range stats.SpansByKind {
		output.Summary.SpansByKind[kind] = n
	}

	return output
}
