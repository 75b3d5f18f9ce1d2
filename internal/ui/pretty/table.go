package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gohilite/pkg/runner"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

// Table formatting constants.
const (
	tablePadding     = 2
	numericColumns   = 4 // LINES, SPANS, BRACKETS, STATUS
	numericWidth     = 8
	statusWidth      = 10
	minFileWidth     = 20
	minLangWidth     = 10
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	statusOK         = "ok"
)

// TableRow represents a single row in the scan table.
type TableRow struct {
	File      string
	Language  string
	Lines     int
	Spans     int
	Unmatched int
	Status    string
}

// Unbalanced reports whether the row has unpaired brackets.
func (r TableRow) Unbalanced() bool {
	return r.Unmatched > 0
}

// TableFormatter formats scan results as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

type columnWidths struct {
	file int
	lang int
}

// FormatTable formats runner results as a styled table, one row per file.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(result.Files))
	for _, file := range result.Files {
		rows = append(rows, OutcomeToTableRow(file))
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")
	builder.WriteString(t.formatLegend())
	builder.WriteString("\n")

	return builder.String()
}

// FormatProfiles formats the language profiles as a table.
func (t *TableFormatter) FormatProfiles(profiles []syntax.Profile) string {
	const (
		langCol  = 12
		titleCol = 34
	)

	var builder strings.Builder
	header := fmt.Sprintf(" %-*s  %-*s  %s", langCol, "LANGUAGE", titleCol, "TITLE", "EXTENSIONS")
	builder.WriteString(t.styles.TableHeader.Render(header))
	builder.WriteString("\n")

	sepWidth := min(t.termWidth, langCol+titleCol+tablePadding*3+numericWidth*3)
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(lightSeparator, sepWidth)))
	builder.WriteString("\n")

	for _, p := range profiles {
		builder.WriteString(fmt.Sprintf(" %-*s  %-*s  %s\n",
			langCol, string(p.Language),
			titleCol, truncateString(p.Title, titleCol),
			strings.Join(p.Extensions, " "),
		))
	}
	return builder.String()
}

// calculateColumnWidths determines optimal column widths based on content.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{file: minFileWidth, lang: minLangWidth}

	for _, row := range rows {
		widths.file = max(widths.file, len(row.File))
		widths.lang = max(widths.lang, len(row.Language))
	}

	if total := t.calculateTotalWidth(widths); total > t.termWidth {
		widths.file = max(minFileWidth, widths.file-(total-t.termWidth))
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.file + widths.lang + numericWidth*3 + statusWidth +
		tablePadding*(numericColumns+2)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %*s  %-*s",
		widths.file, "FILE",
		widths.lang, "LANG",
		numericWidth, "LINES",
		numericWidth, "SPANS",
		numericWidth, "BRACKETS",
		statusWidth, "STATUS",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.calculateTotalWidth(widths)))
}

// formatRow formats a single table row; unbalanced files are highlighted.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	brackets := statusOK
	if row.Unbalanced() {
		brackets = strconv.Itoa(row.Unmatched)
	}

	content := fmt.Sprintf(" %-*s  %-*s  %*d  %*d  %*s  %-*s",
		widths.file, truncateFilePath(row.File, widths.file),
		widths.lang, truncateString(row.Language, widths.lang),
		numericWidth, row.Lines,
		numericWidth, row.Spans,
		numericWidth, brackets,
		statusWidth, truncateString(row.Status, statusWidth),
	)

	switch {
	case row.Status != statusOK:
		return t.styles.Dim.Render(content)
	case row.Unbalanced():
		return t.styles.TableWarnRow.Render(content)
	default:
		return content
	}
}

// formatLegend formats the legend explaining the table colors.
func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(" Legend: BRACKETS = unmatched bracket count")
	}
	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s = unbalanced  %s = skipped or failed",
			t.styles.TableWarnRow.Render(" unbalanced "), t.styles.Dim.Render(" skipped ")),
	)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats, duration string) string {
	parts := []string{
		fmt.Sprintf("%d files highlighted", stats.FilesProcessed),
		fmt.Sprintf("%d spans", stats.SpansTotal),
	}

	if stats.UnmatchedBrackets > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d unmatched", stats.UnmatchedBrackets)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, t.styles.Dim.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}
	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}

// OutcomeToTableRow converts a file outcome to a table row.
func OutcomeToTableRow(file runner.FileOutcome) TableRow {
	row := TableRow{File: file.Path, Status: statusOK}
	switch {
	case file.Error != nil:
		row.Status = "error"
	case file.Result == nil:
		row.Status = "-"
	case file.Result.Skipped:
		row.Status = "skipped"
		row.Language = file.Result.Language.String()
	default:
		row.Language = file.Result.Language.String()
		row.Lines = file.Result.Lines
		row.Spans = file.Result.Spans
		row.Unmatched = len(file.Result.Brackets.Unmatched)
	}
	return row
}
