package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gohilite/pkg/bracket"
	"github.com/yaklabco/gohilite/pkg/highlight"
)

// RenderHighlighted renders text with each run styled by its kind. Runs are
// codepoint ranges tiling the text, as produced by highlight.Paint. Offsets
// listed in marks (bracket match positions) are additionally rendered with
// the BracketMatch style.
func (s *Styles) RenderHighlighted(text string, runs []highlight.Run, marks ...int) string {
	runes := []rune(text)
	if len(runs) == 0 {
		runs = []highlight.Run{{Start: 0, End: len(runes)}}
	}

	marked := make(map[int]bool, len(marks))
	for _, m := range marks {
		marked[m] = true
	}

	var builder strings.Builder
	for _, run := range runs {
		start := max(0, min(run.Start, len(runes)))
		end := max(start, min(run.End, len(runes)))
		style := s.KindStyle(run.Kind)

		// Style line by line so ANSI sequences never straddle a newline.
		segStart := start
		for i := start; i <= end; i++ {
			atEnd := i == end
			if !atEnd && runes[i] != '\n' && !marked[i] {
				continue
			}
			if i > segStart {
				builder.WriteString(style.Render(string(runes[segStart:i])))
			}
			if atEnd {
				break
			}
			if runes[i] == '\n' {
				builder.WriteByte('\n')
			} else {
				builder.WriteString(s.BracketMatch.Inherit(style).Render(string(runes[i])))
			}
			segStart = i + 1
		}
	}
	return builder.String()
}

// FormatBracketIssue formats an unmatched bracket for terminal output.
func (s *Styles) FormatBracketIssue(path string, line, column int, char rune, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d", s.FilePath.Render(path), line, column)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		s.Warning.Render("warning"),
		s.Message.Render(fmt.Sprintf("unmatched %q", char)),
	))

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, column))
	}

	return builder.String()
}

// FormatMatch formats a bracket pair found at the cursor.
func (s *Styles) FormatMatch(m bracket.Match, firstLine, firstCol, secondLine, secondCol int) string {
	return fmt.Sprintf("%s %s %s\n",
		s.Location.Render(fmt.Sprintf("%d:%d", firstLine, firstCol)),
		s.Dim.Render("<->"),
		s.Location.Render(fmt.Sprintf("%d:%d", secondLine, secondCol)),
	) + s.Dim.Render(fmt.Sprintf("  offsets %d..%d", m.First, m.Second)) + "\n"
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with issue output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
