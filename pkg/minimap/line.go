package minimap

import (
	"strings"
	"unicode/utf8"
)

// Line is the minimap's view of one document line.
type Line struct {
	Category Category `json:"category"`

	// IndentLevel is the leading whitespace width in columns, with tabs
	// expanded to the configured tab width.
	IndentLevel int `json:"indentLevel"`

	// Density is the trimmed line length relative to the configured
	// maximum, capped at 1.
	Density float64 `json:"density"`

	Blank bool `json:"blank"`
}

// AnalyzeLine derives the minimap properties of one line.
func AnalyzeLine(line string, opts Options) Line {
	trimmed := strings.TrimRight(line, " \t\r\f\v")
	if trimmed == "" {
		return Line{Blank: true}
	}

	indent := 0
	for _, r := range trimmed {
		if r == ' ' {
			indent++
		} else if r == '\t' {
			indent += opts.TabWidth
		} else {
			break
		}
	}

	density := 1.0
	if opts.MaxLineLength > 0 {
		density = min(1, float64(utf8.RuneCountInString(trimmed))/float64(opts.MaxLineLength))
	}

	return Line{
		Category:    Classify(trimmed),
		IndentLevel: indent,
		Density:     density,
	}
}

// indentOffset is the horizontal start of a line's bar on a canvas of the
// given width: a fifteenth of the width per four columns, at most a third.
func indentOffset(indent, width int) int {
	offset := int(float64(indent) / 4 * (float64(width) / 15))
	return min(width/3, offset)
}
