package minimap

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Rect is one painted line bar, in content coordinates.
type Rect struct {
	Line     int      `json:"line"`
	Category Category `json:"category"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
}

// Bounds returns the rectangle covered by the bar.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Indicator is the outline marking the primary view, in content
// coordinates. It spans the canvas width.
type Indicator struct {
	Y      float64 `json:"y"`
	Height float64 `json:"height"`
	Width  int     `json:"width"`
	Stroke int     `json:"stroke"`
}

// Frame is one rendered minimap: a paint list plus the scroll state needed
// to place it on the canvas.
type Frame struct {
	Canvas Size `json:"canvas"`
	Pitch  int  `json:"pitch"`

	TotalLines    int `json:"totalLines"`
	ContentHeight int `json:"contentHeight"`

	// ScrollOffset is the content y shown at the top of the canvas.
	ScrollOffset float64 `json:"scrollOffset"`

	Window Window `json:"window"`

	// FirstPainted and LastPainted bound the lines considered for
	// painting, as a half-open interval.
	FirstPainted int `json:"firstPainted"`
	LastPainted  int `json:"lastPainted"`

	Rects     []Rect    `json:"rects"`
	Indicator Indicator `json:"indicator"`
}

// LineAt maps a canvas y coordinate (as from a click) to the 0-based
// document line drawn there, clamped to the document.
func (f Frame) LineAt(y float64) int {
	if f.Pitch <= 0 || f.TotalLines == 0 {
		return 0
	}
	line := int(math.Floor((y + f.ScrollOffset) / float64(f.Pitch)))
	return max(0, min(line, f.TotalLines-1))
}

// Draw rasterizes the frame onto dst, aligning the canvas origin with
// dst.Bounds().Min.
func (f Frame) Draw(dst xdraw.Image) {
	f.DrawBars(dst)

	origin := dst.Bounds().Min
	canvas := f.canvasRect().Add(origin)
	outline := f.IndicatorRect().Add(origin)
	strokeRect(dst, outline.Intersect(canvas), outline, f.Indicator.Stroke)
}

// DrawBars rasterizes the background and line bars without the viewport
// indicator.
func (f Frame) DrawBars(dst xdraw.Image) {
	origin := dst.Bounds().Min
	canvas := f.canvasRect().Add(origin)
	scroll := int(math.Round(f.ScrollOffset))

	xdraw.Draw(dst, canvas, image.NewUniform(Background), image.Point{}, xdraw.Src)

	for _, r := range f.Rects {
		area := r.Bounds().Add(image.Pt(0, -scroll)).Add(origin).Intersect(canvas)
		if area.Empty() {
			continue
		}
		xdraw.Draw(dst, area, image.NewUniform(r.Category.Color()), image.Point{}, xdraw.Src)
	}
}

// IndicatorRect returns the indicator outline in canvas coordinates. It may
// extend past the canvas.
func (f Frame) IndicatorRect() image.Rectangle {
	scroll := int(math.Round(f.ScrollOffset))
	top := int(math.Round(f.Indicator.Y)) - scroll
	bottom := int(math.Round(f.Indicator.Y+f.Indicator.Height)) - scroll
	return image.Rect(0, top, f.Indicator.Width, bottom)
}

// OnIndicator reports whether the canvas pixel (x, y) is part of the drawn
// indicator outline.
func (f Frame) OnIndicator(x, y int) bool {
	stroke := f.Indicator.Stroke
	outline := f.IndicatorRect()
	p := image.Pt(x, y)
	if stroke <= 0 || !p.In(outline.Intersect(f.canvasRect())) {
		return false
	}
	return x < outline.Min.X+stroke || x >= outline.Max.X-stroke ||
		y < outline.Min.Y+stroke || y >= outline.Max.Y-stroke
}

func (f Frame) canvasRect() image.Rectangle {
	return image.Rect(0, 0, max(0, f.Canvas.Width), max(0, f.Canvas.Height))
}

// strokeRect draws the border of outline, clipped to clip.
func strokeRect(dst xdraw.Image, clip, outline image.Rectangle, stroke int) {
	if stroke <= 0 || clip.Empty() {
		return
	}
	src := image.NewUniform(IndicatorColor)
	edges := []image.Rectangle{
		image.Rect(outline.Min.X, outline.Min.Y, outline.Max.X, outline.Min.Y+stroke),
		image.Rect(outline.Min.X, outline.Max.Y-stroke, outline.Max.X, outline.Max.Y),
		image.Rect(outline.Min.X, outline.Min.Y, outline.Min.X+stroke, outline.Max.Y),
		image.Rect(outline.Max.X-stroke, outline.Min.Y, outline.Max.X, outline.Max.Y),
	}
	for _, edge := range edges {
		if area := edge.Intersect(clip); !area.Empty() {
			xdraw.Draw(dst, area, src, image.Point{}, xdraw.Src)
		}
	}
}

// Image rasterizes the frame into a new image of the canvas size.
func (f Frame) Image() *image.RGBA {
	img := image.NewRGBA(f.canvasRect())
	f.Draw(img)
	return img
}

// Scaled rasterizes the frame and upsamples it by an integer factor with
// nearest-neighbor sampling, keeping bar edges crisp.
func (f Frame) Scaled(factor int) *image.RGBA {
	src := f.Image()
	if factor <= 1 {
		return src
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// WritePNG encodes the frame, scaled by factor, as PNG.
func (f Frame) WritePNG(w io.Writer, factor int) error {
	if err := png.Encode(w, f.Scaled(factor)); err != nil {
		return fmt.Errorf("encode minimap png: %w", err)
	}
	return nil
}
