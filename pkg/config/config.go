// Package config defines core configuration types for gohilite.
// These types are pure data structures with no external dependencies on Viper or other config loaders.
package config

// OutputFormat specifies the output format for command results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// HighlightMode values accepted by HighlightConfig.Mode.
const (
	HighlightModeExclusive = "exclusive"
	HighlightModeLayered   = "layered"
)

// DefaultMaxBytes is the default highlight input cap (8 MiB).
const DefaultMaxBytes = 8 << 20

// HighlightConfig controls the highlight engine.
type HighlightConfig struct {
	// Mode is "exclusive" (strings and comments own their text) or
	// "layered" (every rule paints independently).
	Mode string `mapstructure:"mode" yaml:"mode"`

	// MaxBytes caps the highlighted input size; 0 disables the cap.
	MaxBytes int `mapstructure:"max_bytes" yaml:"max_bytes"`

	// ReleaseOnClose drops a language's compiled rules when its last
	// document is closed.
	ReleaseOnClose bool `mapstructure:"release_on_close" yaml:"release_on_close"`
}

// MinimapConfig controls minimap geometry.
type MinimapConfig struct {
	LineHeight    int `mapstructure:"line_height" yaml:"line_height"`
	LineGap       int `mapstructure:"line_gap" yaml:"line_gap"`
	MaxLineLength int `mapstructure:"max_line_length" yaml:"max_line_length"`
	WindowBefore  int `mapstructure:"window_before" yaml:"window_before"`
	WindowAfter   int `mapstructure:"window_after" yaml:"window_after"`
	TabWidth      int `mapstructure:"tab_width" yaml:"tab_width"`

	// Width and Height are the canvas size in pixels.
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`

	// ViewLines is the number of lines visible in the primary view.
	ViewLines float64 `mapstructure:"view_lines" yaml:"view_lines"`

	// Scale is the PNG upscaling factor.
	Scale int `mapstructure:"scale" yaml:"scale"`
}

// Config is the root configuration structure for gohilite.
type Config struct {
	// Highlight configures the highlight engine.
	Highlight HighlightConfig `mapstructure:"highlight" yaml:"highlight"`

	// Minimap configures the minimap renderer.
	Minimap MinimapConfig `mapstructure:"minimap" yaml:"minimap"`

	// Ignore contains glob patterns for files the scan command skips.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Jobs specifies the number of parallel scan workers (0 = GOMAXPROCS).
	Jobs int `mapstructure:"jobs" yaml:"jobs"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Language forces a language profile instead of detection.
	Language string `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Highlight: HighlightConfig{
			Mode:     HighlightModeExclusive,
			MaxBytes: DefaultMaxBytes,
		},
		Minimap: MinimapConfig{
			LineHeight:    2,
			LineGap:       1,
			MaxLineLength: 100,
			WindowBefore:  50,
			WindowAfter:   200,
			TabWidth:      4,
			Width:         100,
			Height:        600,
			ViewLines:     40,
			Scale:         1,
		},
		Ignore: nil,
		Format: FormatText,
		Jobs:   0, // 0 means use GOMAXPROCS
	}
}
