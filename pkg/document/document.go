// Package document provides the immutable buffer snapshot shared by the
// highlighter, bracket matcher and minimap, plus line and offset indexes
// over it.
package document

import (
	"unicode/utf8"

	"github.com/yaklabco/gohilite/pkg/syntax"
)

// Document is a snapshot of an editor buffer.
//
// All offsets are codepoint offsets into Text. ScrollFirstLine is the
// 0-based, possibly fractional, index of the first line visible in the
// primary view. A Document is a value; the With* helpers return copies.
type Document struct {
	// Path is informational only; it may be empty.
	Path string

	Text            string
	Language        syntax.Language
	Cursor          int
	ScrollFirstLine float64
}

// New creates a document with the cursor and scroll position at the top.
func New(text string, lang syntax.Language) Document {
	return Document{Text: text, Language: lang}
}

// Len returns the number of codepoints in the text.
func (d Document) Len() int {
	return utf8.RuneCountInString(d.Text)
}

// WithText returns a copy with new text. The cursor is clamped to it.
func (d Document) WithText(text string) Document {
	d.Text = text
	d.Cursor = clamp(d.Cursor, 0, d.Len())
	return d
}

// WithCursor returns a copy with the cursor moved to offset, clamped to
// [0, Len()].
func (d Document) WithCursor(offset int) Document {
	d.Cursor = clamp(offset, 0, d.Len())
	return d
}

// WithScroll returns a copy scrolled so that line (0-based) is the first
// visible line. Negative values are treated as zero.
func (d Document) WithScroll(line float64) Document {
	if line < 0 {
		line = 0
	}
	d.ScrollFirstLine = line
	return d
}

// Index builds the line and offset indexes for the current text.
func (d Document) Index() *Index {
	return NewIndex(d.Text)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
