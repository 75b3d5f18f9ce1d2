package pretty

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/gohilite/pkg/runner"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "1204 spans in 3 files, 2 unmatched brackets in 1 file".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	parts := []string{fmt.Sprintf("%d %s in %d %s",
		stats.SpansTotal, plural(stats.SpansTotal, "span", "spans"),
		stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles),
	)}

	if stats.UnmatchedBrackets > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d unmatched %s in %d %s",
			stats.UnmatchedBrackets, plural(stats.UnmatchedBrackets, "bracket", "brackets"),
			stats.FilesUnbalanced, plural(stats.FilesUnbalanced, wordFile, wordFiles),
		)))
	} else if stats.FilesProcessed > 0 {
		parts = append(parts, s.Success.Render("brackets balanced"))
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files highlighted: " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")
	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:     " +
			s.Dim.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}
	builder.WriteString("  Lines:             " +
		s.SummaryValue.Render(strconv.Itoa(stats.LinesTotal)) + "\n")

	langs := make([]syntax.Language, 0, len(stats.FilesByLanguage))
	for lang := range stats.FilesByLanguage {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	for _, lang := range langs {
		builder.WriteString(fmt.Sprintf("    %-16s %s\n", lang.String()+":",
			s.SummaryValue.Render(strconv.Itoa(stats.FilesByLanguage[lang]))))
	}

	builder.WriteString("\n")

	builder.WriteString("  Total spans:       " +
		s.SummaryValue.Render(strconv.Itoa(stats.SpansTotal)) + "\n")
	for _, kind := range syntax.Kinds() {
		n := stats.SpansByKind[kind]
		if n == 0 {
			continue
		}
		builder.WriteString(fmt.Sprintf("    %-16s %s\n", kind.String()+":",
			s.KindStyle(kind).Render(strconv.Itoa(n))))
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Scan failed for some files"))
	case stats.UnmatchedBrackets > 0:
		builder.WriteString(s.Warning.Render(fmt.Sprintf("%d unmatched brackets in %d files",
			stats.UnmatchedBrackets, stats.FilesUnbalanced)))
	default:
		builder.WriteString(s.Success.Render("All brackets balanced"))
	}
	builder.WriteString("\n")

	return builder.String()
}
