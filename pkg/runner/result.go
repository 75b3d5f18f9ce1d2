package runner

import (
	"github.com/yaklabco/gohilite/pkg/bracket"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

// FileResult is the analysis of one source file.
type FileResult struct {
	// Language is the profile the file was highlighted with.
	Language syntax.Language `json:"language"`

	// Bytes and Lines measure the file.
	Bytes int `json:"bytes"`
	Lines int `json:"lines"`

	// Spans is the number of highlight spans produced.
	Spans int `json:"spans"`

	// SpansByKind counts spans per token kind.
	SpansByKind map[syntax.Kind]int `json:"spansByKind,omitempty"`

	// Brackets is the balance audit outside strings and comments.
	Brackets bracket.Report `json:"brackets"`

	// Issues locates each unmatched bracket.
	Issues []BracketIssue `json:"issues,omitempty"`

	// Digest is the SHA-256 of the file content.
	Digest string `json:"sha256"`

	// Skipped is set when the file was read but not highlighted.
	Skipped bool `json:"skipped,omitempty"`

	// SkipReason explains a skip.
	SkipReason string `json:"skipReason,omitempty"`
}

// BracketIssue is one unmatched bracket with its position.
type BracketIssue struct {
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Char   string `json:"char"`

	// Source is the text of the line holding the bracket.
	Source string `json:"-"`
}

// FileOutcome wraps FileResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the analysis for this file.
	// May be nil if the file encountered an error during processing.
	Result *FileResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully highlighted.
	FilesProcessed int

	// FilesSkipped is the number of files read but not highlighted.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesByLanguage counts highlighted files per language.
	FilesByLanguage map[syntax.Language]int

	// SpansTotal is the total number of spans across all files.
	SpansTotal int

	// SpansByKind maps token kinds to span counts.
	SpansByKind map[syntax.Kind]int

	// UnmatchedBrackets is the total number of unpaired brackets.
	UnmatchedBrackets int

	// FilesUnbalanced is the number of files with at least one unpaired bracket.
	FilesUnbalanced int

	// LinesTotal is the total line count of highlighted files.
	LinesTotal int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasFailures reports whether any file could not be processed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasIssues reports whether any file has unbalanced brackets.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.UnmatchedBrackets > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		FilesByLanguage: make(map[syntax.Language]int),
		SpansByKind:     make(map[syntax.Kind]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	fr := outcome.Result
	if fr == nil {
		return
	}

	if fr.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.FilesByLanguage[fr.Language]++
	r.Stats.LinesTotal += fr.Lines
	r.Stats.SpansTotal += fr.Spans
	for kind, n := range fr.SpansByKind {
		r.Stats.SpansByKind[kind] += n
	}

	if n := len(fr.Brackets.Unmatched); n > 0 {
		r.Stats.UnmatchedBrackets += n
		r.Stats.FilesUnbalanced++
	}
}
