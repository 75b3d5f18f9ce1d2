package pretty

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/yaklabco/gohilite/pkg/minimap"
)

const upperHalfBlock = "▀"

// TerminalWidth returns the column count of w when it is a terminal, or
// fallback otherwise.
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// RenderPreview draws a minimap frame into at most cols terminal columns.
// With color, each cell packs two pixel rows using an upper half block.
// Without color, cells holding a bar are drawn as '#' and the remaining
// cells on the viewport outline as '|'.
func (s *Styles) RenderPreview(frame minimap.Frame, cols int) string {
	img := frame.Image()
	bounds := img.Bounds()
	if bounds.Empty() || cols <= 0 {
		return ""
	}

	step := max(1, (bounds.Dx()+cols-1)/cols)
	width := bounds.Dx() / step
	height := bounds.Dy() / step

	var builder strings.Builder
	if s.colorEnabled {
		for y := 0; y+1 < height; y += 2 {
			for x := range width {
				top := sample(img, x*step, y*step)
				bottom := sample(img, x*step, (y+1)*step)
				builder.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(hexColor(top))).
					Background(lipgloss.Color(hexColor(bottom))).
					Render(upperHalfBlock))
			}
			builder.WriteByte('\n')
		}
		return builder.String()
	}

	bars := image.NewRGBA(bounds)
	frame.DrawBars(bars)
	for y := 0; y+1 < height; y += 2 {
		for x := range width {
			cell := image.Rect(x*step, y*step, (x+1)*step, (y+2)*step)
			builder.WriteByte(asciiCell(frame, bars, cell))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func sample(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(img.Rect.Min.X+x, img.Rect.Min.Y+y)
}

// asciiCell picks the glyph for the canvas pixels in cell. Bars win over
// the indicator outline.
func asciiCell(frame minimap.Frame, bars *image.RGBA, cell image.Rectangle) byte {
	outline := false
	for y := cell.Min.Y; y < cell.Max.Y; y++ {
		for x := cell.Min.X; x < cell.Max.X; x++ {
			if sample(bars, x, y) != minimap.Background {
				return '#'
			}
			if frame.OnIndicator(x, y) {
				outline = true
			}
		}
	}
	if outline {
		return '|'
	}
	return ' '
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
