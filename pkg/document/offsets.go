package document

import (
	"sort"
	"unicode/utf8"
)

// Offsets maps between byte offsets and codepoint offsets of one string.
// Pure ASCII text maps one to one and stores no table.
type Offsets struct {
	byteLen int
	count   int

	// starts[i] is the byte offset of codepoint i; nil for ASCII text.
	starts []int
}

// NewOffsets builds the offset map for text. Each invalid UTF-8 byte counts
// as one codepoint, matching a []rune conversion.
func NewOffsets(text string) *Offsets {
	o := &Offsets{byteLen: len(text)}

	if isASCII(text) {
		o.count = len(text)
		return o
	}

	o.starts = make([]int, 0, utf8.RuneCountInString(text))
	for idx := range text {
		o.starts = append(o.starts, idx)
	}
	o.count = len(o.starts)
	return o
}

func isASCII(text string) bool {
	for i := range len(text) {
		if text[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// RuneCount returns the number of codepoints.
func (o *Offsets) RuneCount() int {
	return o.count
}

// ASCII reports whether byte and codepoint offsets coincide.
func (o *Offsets) ASCII() bool {
	return o.starts == nil
}

// RuneOffset converts a byte offset to the number of codepoints that start
// before it. Offsets inside a multi-byte sequence round up to the next
// codepoint. The result is clamped to [0, RuneCount()].
func (o *Offsets) RuneOffset(byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset >= o.byteLen {
		return o.count
	}
	if o.starts == nil {
		return byteOffset
	}
	return sort.SearchInts(o.starts, byteOffset)
}

// ByteOffset converts a codepoint offset to a byte offset, clamped to
// [0, len(text)].
func (o *Offsets) ByteOffset(runeOffset int) int {
	if runeOffset <= 0 {
		return 0
	}
	if runeOffset >= o.count {
		return o.byteLen
	}
	if o.starts == nil {
		return runeOffset
	}
	return o.starts[runeOffset]
}
