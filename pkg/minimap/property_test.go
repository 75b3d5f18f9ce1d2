package minimap_test

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/yaklabco/gohilite/pkg/minimap"
)

func TestProperty_RowsStayInWindow(t *testing.T) {
	t.Parallel()

	r := minimap.NewRenderer(minimap.DefaultOptions())
	rapid.Check(t, func(rt *rapid.T) {
		lines := rapid.SliceOf(rapid.StringOf(rapid.RuneFrom([]rune(" \tabc#/(")))).Draw(rt, "lines")
		text := strings.Join(lines, "\n")
		first := rapid.Float64Range(0, 1000).Draw(rt, "first")
		visible := rapid.Float64Range(0, 100).Draw(rt, "visible")
		width := rapid.IntRange(0, 300).Draw(rt, "width")
		height := rapid.IntRange(0, 900).Draw(rt, "height")

		frame := r.Render(text, minimap.Viewport{FirstLine: first, VisibleLines: visible}, minimap.Size{Width: width, Height: height})

		lo := int(first) - minimap.DefaultWindowBefore
		hi := int(first) + minimap.DefaultWindowAfter
		source := strings.Split(text, "\n")
		for _, rect := range frame.Rects {
			if rect.Line < lo || rect.Line >= hi {
				rt.Fatalf("line %d painted outside [%d, %d)", rect.Line, lo, hi)
			}
			if strings.TrimSpace(source[rect.Line]) == "" {
				rt.Fatalf("blank line %d painted", rect.Line)
			}
			if rect.Y != rect.Line*frame.Pitch || rect.Width <= 0 || rect.X+rect.Width > width {
				rt.Fatalf("bad geometry %+v on width %d", rect, width)
			}
		}

		if frame.Indicator.Height < float64(frame.Pitch) {
			rt.Fatalf("indicator height %v below pitch", frame.Indicator.Height)
		}
		if frame.ScrollOffset < 0 || (frame.ScrollOffset > 0 && frame.ScrollOffset > float64(frame.ContentHeight-height)) {
			rt.Fatalf("scroll offset %v outside content", frame.ScrollOffset)
		}
	})
}
