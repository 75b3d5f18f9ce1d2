package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gohilite/internal/ui/pretty"
	"github.com/yaklabco/gohilite/pkg/bracket"
	"github.com/yaklabco/gohilite/pkg/highlight"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

func TestRenderHighlighted_NoColorPreservesText(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	text := "def f():\n    return 1\n"
	runs := []highlight.Run{
		{Kind: syntax.KindKeyword, Start: 0, End: 3},
		{Start: 3, End: 4},
		{Kind: syntax.KindFunction, Start: 4, End: 5},
		{Start: 5, End: 13},
		{Kind: syntax.KindKeyword, Start: 13, End: 19},
		{Start: 19, End: 20},
		{Kind: syntax.KindNumber, Start: 20, End: 21},
		{Start: 21, End: 22},
	}

	assert.Equal(t, text, styles.RenderHighlighted(text, runs))
	assert.Equal(t, text, styles.RenderHighlighted(text, runs, 6, 7))
}

func TestRenderHighlighted_EmptyRuns(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "plain", styles.RenderHighlighted("plain", nil))
	assert.Empty(t, styles.RenderHighlighted("", nil))
}

func TestRenderHighlighted_MultibyteText(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	text := "s = 'héllo'"
	runs := []highlight.Run{
		{Start: 0, End: 4},
		{Kind: syntax.KindString, Start: 4, End: 11},
	}
	assert.Equal(t, text, styles.RenderHighlighted(text, runs))
}

func TestFormatBracketIssue(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	result := styles.FormatBracketIssue("main.js", 3, 5, '}', "    }")

	assert.Contains(t, result, "main.js:3:5")
	assert.Contains(t, result, "warning")
	assert.Contains(t, result, "unmatched '}'")
	assert.Contains(t, result, "            ^")
}

func TestFormatSourceContext(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	result := styles.FormatSourceContext("foo(bar", 4)

	assert.Equal(t, "        foo(bar\n           ^\n", result)
	assert.Equal(t, "        x\n", styles.FormatSourceContext("x", 0))
}

func TestFormatMatch(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	result := styles.FormatMatch(bracket.Match{First: 3, Second: 9}, 1, 4, 2, 2)

	assert.Equal(t, "1:4 <-> 2:2\n  offsets 3..9\n", result)
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "a.py", styles.FormatFileHeader("a.py", 0))
	assert.Equal(t, "a.py (2 issues)", styles.FormatFileHeader("a.py", 2))
}
