package document

import (
	"sort"
	"strings"
)

// LineInfo describes one line in codepoint offsets.
type LineInfo struct {
	// StartOffset is the offset of the first codepoint of the line.
	StartOffset int

	// NewlineStart is where the line terminator begins. For CRLF it points
	// at the '\r'. For the final line it equals EndOffset.
	NewlineStart int

	// EndOffset is the offset just past the terminator.
	EndOffset int
}

// Len returns the length of the line's content, excluding its terminator.
func (l LineInfo) Len() int {
	return l.NewlineStart - l.StartOffset
}

// BuildLines constructs line metadata from text. Lines are split on '\n';
// text that is empty or ends in a newline still has a final, empty line.
func BuildLines(text string) []LineInfo {
	lines := make([]LineInfo, 0, strings.Count(text, "\n")+1)
	lineStart := 0
	pos := 0
	prevCR := false

	for _, char := range text {
		if char == '\n' {
			newlineStart := pos
			if prevCR {
				newlineStart = pos - 1
			}
			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    pos + 1,
			})
			lineStart = pos + 1
		}
		prevCR = char == '\r'
		pos++
	}

	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: pos,
		EndOffset:    pos,
	})

	return lines
}

// Index holds the line table and offset map of one text.
type Index struct {
	text    string
	lines   []LineInfo
	offsets *Offsets
}

// NewIndex builds an index over text.
func NewIndex(text string) *Index {
	return &Index{
		text:    text,
		lines:   BuildLines(text),
		offsets: NewOffsets(text),
	}
}

// Lines returns the line table.
func (x *Index) Lines() []LineInfo {
	return x.lines
}

// LineCount returns the number of lines; it is always at least one.
func (x *Index) LineCount() int {
	return len(x.lines)
}

// Offsets returns the byte/codepoint offset map.
func (x *Index) Offsets() *Offsets {
	return x.offsets
}

// LineAt converts a codepoint offset to 1-based line and column numbers.
// Offsets past the end map to the end of the last line.
// Returns (0, 0) for negative offsets.
func (x *Index) LineAt(offset int) (int, int) {
	if offset < 0 {
		return 0, 0
	}

	lineIdx := sort.Search(len(x.lines), func(i int) bool {
		return x.lines[i].EndOffset > offset
	})
	if lineIdx >= len(x.lines) {
		lineIdx = len(x.lines) - 1
	}

	line := x.lines[lineIdx]
	if offset > line.NewlineStart && lineIdx == len(x.lines)-1 {
		offset = line.NewlineStart
	}

	return lineIdx + 1, offset - line.StartOffset + 1
}

// Offset converts 1-based line and column numbers to a codepoint offset.
// The column may point one past the last character of the line.
// Returns (0, false) if out of range.
func (x *Index) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(x.lines) || col < 1 {
		return 0, false
	}

	info := x.lines[line-1]
	offset := info.StartOffset + col - 1
	if offset > info.NewlineStart {
		return 0, false
	}

	return offset, true
}

// LineContent returns the text of a 1-based line, excluding its terminator.
// Returns "" if the line number is out of range.
func (x *Index) LineContent(line int) string {
	if line < 1 || line > len(x.lines) {
		return ""
	}

	info := x.lines[line-1]
	start := x.offsets.ByteOffset(info.StartOffset)
	end := x.offsets.ByteOffset(info.NewlineStart)
	return x.text[start:end]
}
