package bracket

import "strings"

// IndentUnit is the indentation added after a line that opens a block.
const IndentUnit = "    "

// AutoClose returns the character to insert after r when r is typed:
// the counterpart of an opener, or the same character for a quote.
func AutoClose(r rune) (rune, bool) {
	if IsOpener(r) {
		return Counterpart(r)
	}
	switch r {
	case '"', '\'':
		return r, true
	}
	return 0, false
}

// Wrap surrounds a selection with r and its auto-close partner.
// It reports false when r does not auto-close.
func Wrap(selection string, r rune) (string, bool) {
	closer, ok := AutoClose(r)
	if !ok {
		return "", false
	}
	return string(r) + selection + string(closer), true
}

// SkipOver reports whether typing quote with next directly after the
// cursor should step over next instead of inserting a new pair.
func SkipOver(quote, next rune) bool {
	return quote == next && (quote == '"' || quote == '\'')
}

// PairedDelete reports whether a backspace between before and after should
// delete both: an opener followed by its closer, or two equal quotes.
func PairedDelete(before, after rune) bool {
	if IsOpener(before) {
		closer, _ := Counterpart(before)
		return closer == after
	}
	switch before {
	case '"', '\'', '`':
		return before == after
	}
	return false
}

// NewlineIndent returns the indentation for a line inserted after line:
// the same leading whitespace, plus IndentUnit when line ends with ':'
// or an opening bracket.
func NewlineIndent(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]

	stripped := strings.TrimRight(trimmed, " \t\r")
	if strings.HasSuffix(stripped, ":") ||
		strings.HasSuffix(stripped, "{") ||
		strings.HasSuffix(stripped, "[") ||
		strings.HasSuffix(stripped, "(") {
		indent += IndentUnit
	}
	return indent
}
