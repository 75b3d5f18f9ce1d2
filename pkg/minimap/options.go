package minimap

// Default geometry.
const (
	DefaultLineHeight    = 2
	DefaultLineGap       = 1
	DefaultMaxLineLength = 100
	DefaultWindowBefore  = 50
	DefaultWindowAfter   = 200
	DefaultTabWidth      = 4
	DefaultWidth         = 100
	DefaultHeight        = 600

	// IndicatorStroke is the outline width of the viewport indicator.
	IndicatorStroke = 2
)

// Options configures a Renderer.
type Options struct {
	// LineHeight is the bar height of one line in pixels.
	LineHeight int

	// LineGap is the empty space below each bar.
	LineGap int

	// MaxLineLength is the line length that fills the full width.
	MaxLineLength int

	// WindowBefore and WindowAfter bound the painted lines around the
	// first visible line.
	WindowBefore int
	WindowAfter  int

	TabWidth int
}

// DefaultOptions returns the default renderer geometry.
func DefaultOptions() Options {
	return Options{
		LineHeight:    DefaultLineHeight,
		LineGap:       DefaultLineGap,
		MaxLineLength: DefaultMaxLineLength,
		WindowBefore:  DefaultWindowBefore,
		WindowAfter:   DefaultWindowAfter,
		TabWidth:      DefaultTabWidth,
	}
}

// Pitch is the vertical distance between consecutive lines.
func (o Options) Pitch() int {
	return o.LineHeight + o.LineGap
}

// normalized fills in defaults. The zero Options is DefaultOptions;
// otherwise LineGap and WindowBefore may be zero and only negative values
// fall back, while the other fields must be positive.
func (o Options) normalized() Options {
	d := DefaultOptions()
	if o == (Options{}) {
		return d
	}
	if o.LineHeight <= 0 {
		o.LineHeight = d.LineHeight
	}
	if o.LineGap < 0 {
		o.LineGap = d.LineGap
	}
	if o.MaxLineLength <= 0 {
		o.MaxLineLength = d.MaxLineLength
	}
	if o.WindowBefore < 0 {
		o.WindowBefore = d.WindowBefore
	}
	if o.WindowAfter <= 0 {
		o.WindowAfter = d.WindowAfter
	}
	if o.TabWidth <= 0 {
		o.TabWidth = d.TabWidth
	}
	return o
}
