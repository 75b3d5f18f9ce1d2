package minimap

import (
	"math"
	"strings"

	"github.com/yaklabco/gohilite/pkg/document"
)

// Size is a canvas size in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Viewport is the part of the document shown in the primary view, in
// 0-based, possibly fractional, line units.
type Viewport struct {
	FirstLine    float64 `json:"firstLine"`
	VisibleLines float64 `json:"visibleLines"`
}

// Window returns the viewport as a [First, Last] line interval.
func (v Viewport) Window() Window {
	first := max(0, v.FirstLine)
	return Window{First: first, Last: first + max(0, v.VisibleLines)}
}

// Window is a line interval of the document.
type Window struct {
	First float64 `json:"first"`
	Last  float64 `json:"last"`
}

// WindowFor derives the viewport of a document shown in a view of
// viewHeightPx pixels with lines textLineHeightPx pixels tall.
func WindowFor(doc document.Document, viewHeightPx, textLineHeightPx float64) Viewport {
	visible := 0.0
	if textLineHeightPx > 0 && viewHeightPx > 0 {
		visible = viewHeightPx / textLineHeightPx
	}
	return Viewport{
		FirstLine:    max(0, doc.ScrollFirstLine),
		VisibleLines: visible,
	}
}

// Renderer builds minimap frames. It holds only configuration and is safe
// for concurrent use.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer. The zero Options selects the defaults.
// Otherwise a negative LineGap or WindowBefore, or a non-positive value in
// any other field, takes its default.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts.normalized()}
}

// Options returns the effective renderer options.
func (r *Renderer) Options() Options {
	return r.opts
}

// RenderDocument renders a document for a primary view of the given
// pixel height and text line height.
func (r *Renderer) RenderDocument(doc document.Document, viewHeightPx, textLineHeightPx float64, canvas Size) Frame {
	return r.Render(doc.Text, WindowFor(doc, viewHeightPx, textLineHeightPx), canvas)
}

// Render lays out the minimap of text for the viewport on a canvas.
//
// Line i occupies y = i*pitch in content space. Only lines within the
// half-open range [first-WindowBefore, first+WindowAfter) are painted, so
// line first+WindowAfter itself is not, and blank lines paint nothing. When the content is taller than the canvas, the frame
// scrolls in proportion to the viewport's position in the document.
func (r *Renderer) Render(text string, vp Viewport, canvas Size) Frame {
	lines := strings.Split(text, "\n")
	total := len(lines)
	pitch := r.opts.Pitch()
	window := vp.Window()

	frame := Frame{
		Canvas:        canvas,
		Pitch:         pitch,
		TotalLines:    total,
		ContentHeight: total * pitch,
		Window:        window,
	}

	if total > 1 && frame.ContentHeight > canvas.Height {
		fraction := min(1, window.First/float64(total-1))
		frame.ScrollOffset = fraction * float64(frame.ContentHeight-canvas.Height)
	}

	first := int(math.Floor(window.First))
	start := max(0, first-r.opts.WindowBefore)
	end := min(total, first+r.opts.WindowAfter)
	frame.FirstPainted = start
	frame.LastPainted = max(start, end)

	for i := start; i < end; i++ {
		info := AnalyzeLine(lines[i], r.opts)
		if info.Blank {
			continue
		}

		x := indentOffset(info.IndentLevel, canvas.Width)
		width := int(info.Density * float64(canvas.Width-x))
		if width <= 0 {
			continue
		}

		y := i * pitch
		frame.Rects = append(frame.Rects, Rect{
			Line:     i,
			Category: info.Category,
			X:        x,
			Y:        y,
			Width:    width,
			Height:   r.opts.LineHeight,
		})
	}

	top := window.First * float64(pitch)
	height := max((window.Last-window.First)*float64(pitch), float64(pitch))
	frame.Indicator = Indicator{
		Y:      top,
		Height: height,
		Width:  canvas.Width,
		Stroke: IndicatorStroke,
	}

	return frame
}
