package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gohilite/pkg/config"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "minimap.line_height").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// knownModes lists valid highlight mode values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownModes = map[string]bool{
	config.HighlightModeExclusive: true,
	config.HighlightModeLayered:   true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Highlight.Mode != "" && !knownModes[cfg.Highlight.Mode] {
		result.fail("highlight.mode", cfg.Highlight.Mode,
			"invalid mode %q; must be one of: exclusive, layered", cfg.Highlight.Mode)
	}
	if cfg.Highlight.MaxBytes < 0 {
		result.fail("highlight.max_bytes", cfg.Highlight.MaxBytes, "max_bytes must be >= 0 (0 means no limit)")
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: text, table, json, summary", cfg.Format)
	}

	if cfg.Language != "" {
		if _, ok := syntax.ParseLanguage(cfg.Language); !ok {
			result.fail("language", cfg.Language, "unknown language %q", cfg.Language)
		}
	}

	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	validateMinimap(cfg.Minimap, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateMinimap checks minimap geometry. Zero leaves a field at its
// default, so only negative values are rejected.
func validateMinimap(m config.MinimapConfig, result *ValidationResult) {
	fields := []struct {
		field string
		value int
	}{
		{"minimap.line_height", m.LineHeight},
		{"minimap.line_gap", m.LineGap},
		{"minimap.max_line_length", m.MaxLineLength},
		{"minimap.window_before", m.WindowBefore},
		{"minimap.window_after", m.WindowAfter},
		{"minimap.tab_width", m.TabWidth},
		{"minimap.width", m.Width},
		{"minimap.height", m.Height},
		{"minimap.scale", m.Scale},
	}
	for _, f := range fields {
		if f.value < 0 {
			result.fail(f.field, f.value, "must not be negative")
		}
	}

	if m.ViewLines < 0 {
		result.fail("minimap.view_lines", m.ViewLines, "must not be negative")
	}

	if m.WindowAfter > 0 && m.ViewLines > float64(m.WindowAfter) {
		result.warn("minimap.view_lines", m.ViewLines,
			"view_lines %.0f exceeds window_after %d; the indicator extends past painted lines",
			m.ViewLines, m.WindowAfter)
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidMode returns true if the highlight mode is valid.
func IsValidMode(mode string) bool {
	return knownModes[mode]
}
