package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohilite/pkg/bracket"
	"github.com/yaklabco/gohilite/pkg/reporter"
	"github.com/yaklabco/gohilite/pkg/runner"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "table", input: "table", want: reporter.FormatTable},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format reporter.Format
		want   bool
	}{
		{reporter.FormatText, true},
		{reporter.FormatTable, true},
		{reporter.FormatJSON, true},
		{reporter.FormatSummary, true},
		{reporter.Format("sarif"), false},
		{reporter.Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "table reporter", format: reporter.FormatTable},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "summary reporter", format: reporter.FormatSummary},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := reporter.Options{
				Writer: &buf,
				Format: tt.format,
				Color:  "never",
			}

			rep, err := reporter.New(opts)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, rep)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

// createTestResult builds a result with one clean file, one unbalanced
// file, one skipped file and one failure.
func createTestResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/work/src/app.py",
				Result: &runner.FileResult{
					Language:    syntax.LanguagePython,
					Bytes:       40,
					Lines:       3,
					Spans:       5,
					SpansByKind: map[syntax.Kind]int{syntax.KindKeyword: 3, syntax.KindString: 2},
					Brackets:    bracket.Report{Pairs: 2},
				},
			},
			{
				Path: "/work/src/broken.js",
				Result: &runner.FileResult{
					Language:    syntax.LanguageECMAScript,
					Bytes:       14,
					Lines:       2,
					Spans:       1,
					SpansByKind: map[syntax.Kind]int{syntax.KindKeyword: 1},
					Brackets:    bracket.Report{Unmatched: []int{10, 12}},
					Issues: []runner.BracketIssue{
						{Offset: 10, Line: 1, Column: 11, Char: "(", Source: "function f( {"},
						{Offset: 12, Line: 1, Column: 13, Char: "{", Source: "function f( {"},
					},
				},
			},
			{
				Path:   "/work/notes.txt",
				Result: &runner.FileResult{Skipped: true, SkipReason: runner.SkipUnknownLanguage},
			},
			{
				Path:  "/work/gone.c",
				Error: errors.New("read failed"),
			},
		},
		Stats: runner.Stats{
			FilesDiscovered:   4,
			FilesProcessed:    2,
			FilesSkipped:      1,
			FilesErrored:      1,
			FilesByLanguage:   map[syntax.Language]int{syntax.LanguagePython: 1, syntax.LanguageECMAScript: 1},
			LinesTotal:        5,
			SpansTotal:        6,
			SpansByKind:       map[syntax.Kind]int{syntax.KindKeyword: 4, syntax.KindString: 2},
			UnmatchedBrackets: 2,
			FilesUnbalanced:   1,
		},
	}
}

func TestTextReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "No files to scan")
}

func TestTextReporter_WithIssues(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		ShowContext: true,
		WorkingDir:  "/work",
	})

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.Contains(t, output, filepath.Join("src", "broken.js")+" (2 issues)")
	assert.Contains(t, output, ":1:11")
	assert.Contains(t, output, "unmatched '('")
	assert.Contains(t, output, "function f( {")
	assert.Contains(t, output, "gone.c: error: read failed")
	assert.NotContains(t, output, "app.py")
	assert.NotContains(t, output, "notes.txt")
	assert.Contains(t, output, "2 unmatched brackets in 1 file")
}

func TestTextReporter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:  &buf,
		Color:   "never",
		Verbose: true,
	})

	_, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "/work/src/app.py (python, 3 lines, 5 spans)")
	assert.Contains(t, output, "/work/notes.txt: skipped: "+runner.SkipUnknownLanguage)
}

func TestTextReporter_NoContext(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

	_, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "^")
}

func TestJSONReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Should still produce valid JSON
	var output reporter.JSONOutput
	err = json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", output.Version)
	assert.Empty(t, output.Files)
}

func TestJSONReporter_WithResults(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer:     &buf,
		WorkingDir: "/work",
	})

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	require.Len(t, output.Files, 4)
	assert.Equal(t, filepath.Join("src", "app.py"), output.Files[0].Path)
	require.NotNil(t, output.Files[0].FileResult)
	assert.Equal(t, syntax.LanguagePython, output.Files[0].Language)
	assert.Equal(t, 3, output.Files[0].SpansByKind[syntax.KindKeyword])

	require.NotNil(t, output.Files[1].FileResult)
	require.Len(t, output.Files[1].Issues, 2)
	assert.Equal(t, 11, output.Files[1].Issues[0].Column)
	assert.Empty(t, output.Files[1].Issues[0].Source)

	assert.Nil(t, output.Files[3].FileResult)
	assert.Equal(t, "read failed", output.Files[3].Error)

	assert.Equal(t, 2, output.Summary.UnmatchedBrackets)
	assert.Equal(t, 6, output.Summary.SpansTotal)
	assert.Equal(t, 4, output.Summary.SpansByKind[syntax.KindKeyword])
	assert.Equal(t, 1, output.Summary.FilesByLanguage[syntax.LanguageECMAScript])
}

func TestJSONReporter_KindKeysAreNames(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	_, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"spansByKind":{"keyword":4,"string":2}`)
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer:  &buf,
		Color:   "never",
		Compact: true,
	})

	_, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)

	// Compact output should be a single line
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestTableReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTableReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		WorkingDir:  "/work",
	})

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.Contains(t, output, "FILE")
	assert.Contains(t, output, filepath.Join("src", "app.py"))
	assert.NotContains(t, output, "/work/")
	assert.Contains(t, output, "skipped")
	assert.Contains(t, output, "2 files highlighted | 6 spans | 2 unmatched")
}

func TestTableReporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTableReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	count, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "No files to scan")
}

func TestDefaultOptions(t *testing.T) {
	opts := reporter.DefaultOptions()

	assert.NotNil(t, opts.Writer)
	assert.NotNil(t, opts.ErrorWriter)
	assert.Equal(t, reporter.FormatText, opts.Format)
	assert.Equal(t, "auto", opts.Color)
	assert.True(t, opts.ShowContext)
	assert.True(t, opts.ShowSummary)
	assert.False(t, opts.Verbose)
}
