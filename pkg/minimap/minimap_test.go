package minimap_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohilite/pkg/document"
	"github.com/yaklabco/gohilite/pkg/minimap"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		expected minimap.Category
	}{
		{"# comment", minimap.CategoryComment},
		{"    // comment", minimap.CategoryComment},
		{"def foo():", minimap.CategoryDefinition},
		{"class Foo:", minimap.CategoryDefinition},
		{"  protected int x;", minimap.CategoryDefinition},
		{"const x = 1", minimap.CategoryDefinition},
		{"import os", minimap.CategoryImport},
		{"x = require('a') # from here", minimap.CategoryImport},
		{"using System;", minimap.CategoryImport},
		{"if x:", minimap.CategoryControlFlow},
		{"else:", minimap.CategoryControlFlow},
		{"return x", minimap.CategoryControlFlow},
		{"x = 1", minimap.CategoryPlain},
		{"iffy = 2", minimap.CategoryPlain},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, minimap.Classify(tt.line))
		})
	}
}

func TestAnalyzeLine(t *testing.T) {
	t.Parallel()

	opts := minimap.DefaultOptions()

	assert.True(t, minimap.AnalyzeLine("", opts).Blank)
	assert.True(t, minimap.AnalyzeLine(" \t \r", opts).Blank)

	line := minimap.AnalyzeLine("\t  x = 1  ", opts)
	assert.False(t, line.Blank)
	assert.Equal(t, 6, line.IndentLevel)
	assert.InDelta(t, 0.08, line.Density, 1e-9)

	long := minimap.AnalyzeLine(strings.Repeat("x", 250), opts)
	assert.InDelta(t, 1.0, long.Density, 1e-9)
}

func TestRender_Rows(t *testing.T) {
	t.Parallel()

	r := minimap.NewRenderer(minimap.DefaultOptions())
	frame := r.Render("def foo():\n    return 1\n# c", minimap.Viewport{VisibleLines: 10}, minimap.Size{Width: 100, Height: 600})

	assert.Equal(t, []minimap.Rect{
		{Line: 0, Category: minimap.CategoryDefinition, X: 0, Y: 0, Width: 10, Height: 2},
		{Line: 1, Category: minimap.CategoryControlFlow, X: 6, Y: 3, Width: 11, Height: 2},
		{Line: 2, Category: minimap.CategoryComment, X: 0, Y: 6, Width: 3, Height: 2},
	}, frame.Rects)

	assert.Equal(t, 3, frame.Pitch)
	assert.Equal(t, 3, frame.TotalLines)
	assert.Equal(t, 9, frame.ContentHeight)
	assert.Zero(t, frame.ScrollOffset)
	assert.Equal(t, minimap.Indicator{Y: 0, Height: 30, Width: 100, Stroke: 2}, frame.Indicator)
}

func TestRender_BlankOnly(t *testing.T) {
	t.Parallel()

	r := minimap.NewRenderer(minimap.DefaultOptions())
	for _, text := range []string{"", "\n\n", "   \n\t\n  "} {
		frame := r.Render(text, minimap.Viewport{}, minimap.Size{Width: 100, Height: 600})
		assert.Empty(t, frame.Rects, "text %q", text)
		assert.Equal(t, 100, frame.Indicator.Width)
		assert.GreaterOrEqual(t, frame.Indicator.Height, float64(frame.Pitch))
	}
}

func TestRender_ScrollAndWindow(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("x\n", 999) + "x"
	r := minimap.NewRenderer(minimap.DefaultOptions())
	frame := r.Render(text, minimap.Viewport{FirstLine: 499.5, VisibleLines: 40}, minimap.Size{Width: 100, Height: 600})

	require.Equal(t, 1000, frame.TotalLines)
	assert.Equal(t, 3000, frame.ContentHeight)
	assert.InDelta(t, 1200, frame.ScrollOffset, 1e-9)
	assert.Equal(t, 449, frame.FirstPainted)
	assert.Equal(t, 699, frame.LastPainted)

	require.Len(t, frame.Rects, 250)
	assert.Equal(t, 449, frame.Rects[0].Line)
	assert.Equal(t, 698, frame.Rects[len(frame.Rects)-1].Line)

	assert.InDelta(t, 1498.5, frame.Indicator.Y, 1e-9)
	assert.InDelta(t, 120, frame.Indicator.Height, 1e-9)
}

func TestRender_ScrollPastEndIsClamped(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("x\n", 400)
	r := minimap.NewRenderer(minimap.DefaultOptions())
	frame := r.Render(text, minimap.Viewport{FirstLine: 5000}, minimap.Size{Width: 100, Height: 600})

	assert.InDelta(t, float64(frame.ContentHeight-600), frame.ScrollOffset, 1e-9)
	assert.Empty(t, frame.Rects)
}

func TestFrame_LineAt(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("abc\n", 999) + "abc"
	r := minimap.NewRenderer(minimap.DefaultOptions())
	frame := r.Render(text, minimap.Viewport{FirstLine: 499.5, VisibleLines: 40}, minimap.Size{Width: 100, Height: 600})

	assert.Equal(t, 400, frame.LineAt(0))
	assert.Equal(t, 0, frame.LineAt(-1e6))
	assert.Equal(t, 999, frame.LineAt(1e6))

	for _, rect := range frame.Rects {
		y := float64(rect.Y) - frame.ScrollOffset + float64(rect.Height)/2
		require.Equal(t, rect.Line, frame.LineAt(y))
	}
}

func TestWindowFor(t *testing.T) {
	t.Parallel()

	doc := document.New("a\nb", syntax.LanguageNone).WithScroll(12.5)
	vp := minimap.WindowFor(doc, 400, 20)
	assert.InDelta(t, 12.5, vp.FirstLine, 1e-9)
	assert.InDelta(t, 20, vp.VisibleLines, 1e-9)

	assert.Equal(t, minimap.Window{First: 12.5, Last: 32.5}, vp.Window())
	assert.Zero(t, minimap.WindowFor(doc, 400, 0).VisibleLines)
}

func TestRender_DocumentMatchesText(t *testing.T) {
	t.Parallel()

	doc := document.New("class A:\n    pass\n", syntax.LanguagePython).WithScroll(1)
	r := minimap.NewRenderer(minimap.DefaultOptions())
	canvas := minimap.Size{Width: 80, Height: 200}

	assert.Equal(t,
		r.Render(doc.Text, minimap.WindowFor(doc, 300, 15), canvas),
		r.RenderDocument(doc, 300, 15, canvas))
}

func TestNewRenderer_Defaults(t *testing.T) {
	t.Parallel()

	r := minimap.NewRenderer(minimap.Options{})
	assert.Equal(t, minimap.DefaultOptions(), r.Options())

	custom := minimap.NewRenderer(minimap.Options{LineHeight: 4, LineGap: 0, TabWidth: 8})
	assert.Equal(t, 4, custom.Options().Pitch())
	assert.Equal(t, 8, custom.Options().TabWidth)
	assert.Zero(t, custom.Options().WindowBefore)

	negative := minimap.NewRenderer(minimap.Options{LineHeight: 2, LineGap: -1, WindowBefore: -1})
	assert.Equal(t, minimap.DefaultLineGap, negative.Options().LineGap)
	assert.Equal(t, minimap.DefaultWindowBefore, negative.Options().WindowBefore)

	frame := r.Render(strings.Repeat("x\n", 300), minimap.Viewport{FirstLine: 100, VisibleLines: 10},
		minimap.Size{Width: 100, Height: 600})
	assert.Equal(t, 100-minimap.DefaultWindowBefore, frame.FirstPainted)
	assert.Equal(t, 100+minimap.DefaultWindowAfter, frame.LastPainted)
	assert.Equal(t, 3, frame.Pitch)
}

func TestFrame_Draw(t *testing.T) {
	t.Parallel()

	r := minimap.NewRenderer(minimap.DefaultOptions())
	frame := r.Render("def foo():\n    return 1\n# c", minimap.Viewport{FirstLine: 10, VisibleLines: 2}, minimap.Size{Width: 100, Height: 50})
	img := frame.Image()

	require.Equal(t, 100, img.Bounds().Dx())
	require.Equal(t, 50, img.Bounds().Dy())
	assert.Equal(t, minimap.CategoryDefinition.Color(), img.RGBAAt(5, 1))
	assert.Equal(t, minimap.CategoryComment.Color(), img.RGBAAt(1, 7))
	assert.Equal(t, minimap.Background, img.RGBAAt(50, 1))
	assert.Equal(t, minimap.IndicatorColor, img.RGBAAt(50, 30))
	assert.Equal(t, minimap.IndicatorColor, img.RGBAAt(0, 32))
	assert.Equal(t, minimap.Background, img.RGBAAt(50, 32))

	scaled := frame.Scaled(2)
	assert.Equal(t, 200, scaled.Bounds().Dx())
	assert.Equal(t, 100, scaled.Bounds().Dy())
	assert.Equal(t, minimap.CategoryDefinition.Color(), scaled.RGBAAt(10, 2))

	var buf bytes.Buffer
	require.NoError(t, frame.WritePNG(&buf, 3))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 300, decoded.Bounds().Dx())
}
