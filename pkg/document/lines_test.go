package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohilite/pkg/document"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []document.LineInfo
	}{
		{
			name:    "empty content",
			content: "",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 0},
			},
		},
		{
			name:    "single line no newline",
			content: "hello",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "single line with LF",
			content: "hello\n",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "CRLF",
			content: "a\r\nb",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 4, EndOffset: 4},
			},
		},
		{
			name:    "multibyte counts codepoints",
			content: "héllo\nwörld",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 11, EndOffset: 11},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, document.BuildLines(tt.content))
		})
	}
}

func TestIndex_LineAtAndOffset(t *testing.T) {
	t.Parallel()

	idx := document.NewIndex("ab\ncdé\n\nf")
	require.Equal(t, 4, idx.LineCount())

	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{7, 3, 1},
		{8, 4, 1},
		{9, 4, 2},
		{100, 4, 2},
	}

	for _, tt := range tests {
		line, col := idx.LineAt(tt.offset)
		assert.Equal(t, tt.line, line, "line of %d", tt.offset)
		assert.Equal(t, tt.col, col, "col of %d", tt.offset)

		if tt.offset <= 9 {
			offset, ok := idx.Offset(line, col)
			require.True(t, ok)
			assert.Equal(t, tt.offset, offset)
		}
	}

	line, col := idx.LineAt(-1)
	assert.Zero(t, line)
	assert.Zero(t, col)

	_, ok := idx.Offset(0, 1)
	assert.False(t, ok)
	_, ok = idx.Offset(1, 4)
	assert.False(t, ok)
	_, ok = idx.Offset(5, 1)
	assert.False(t, ok)
}

func TestIndex_LineContent(t *testing.T) {
	t.Parallel()

	idx := document.NewIndex("ab\r\ncdé\n")
	assert.Equal(t, "ab", idx.LineContent(1))
	assert.Equal(t, "cdé", idx.LineContent(2))
	assert.Equal(t, "", idx.LineContent(3))
	assert.Equal(t, "", idx.LineContent(4))
}
