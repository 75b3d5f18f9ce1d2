package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/gohilite/pkg/config"
)

// envVarPrefix is the prefix for all gohilite environment variables.
const envVarPrefix = "GOHILITE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeFloat
	envTypeSlice
)

// envMapping defines an environment variable to config field mapping.
type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"HIGHLIGHT_MODE":             {"highlight.mode", envTypeString, "Highlight mode: exclusive or layered"},
	"HIGHLIGHT_MAX_BYTES":        {"highlight.max_bytes", envTypeInt, "Largest highlighted input in bytes (0 = no limit)"},
	"HIGHLIGHT_RELEASE_ON_CLOSE": {"highlight.release_on_close", envTypeBool, "Drop compiled rules when a language's last document closes"},
	"MINIMAP_LINE_HEIGHT":        {"minimap.line_height", envTypeInt, "Minimap bar height in pixels"},
	"MINIMAP_LINE_GAP":           {"minimap.line_gap", envTypeInt, "Minimap gap between bars in pixels"},
	"MINIMAP_MAX_LINE_LENGTH":    {"minimap.max_line_length", envTypeInt, "Line length that fills the minimap width"},
	"MINIMAP_WINDOW_BEFORE":      {"minimap.window_before", envTypeInt, "Lines painted above the first visible line"},
	"MINIMAP_WINDOW_AFTER":       {"minimap.window_after", envTypeInt, "Lines painted below the first visible line"},
	"MINIMAP_TAB_WIDTH":          {"minimap.tab_width", envTypeInt, "Columns per tab when measuring indentation"},
	"MINIMAP_WIDTH":              {"minimap.width", envTypeInt, "Minimap canvas width in pixels"},
	"MINIMAP_HEIGHT":             {"minimap.height", envTypeInt, "Minimap canvas height in pixels"},
	"MINIMAP_VIEW_LINES":         {"minimap.view_lines", envTypeFloat, "Lines visible in the primary view"},
	"MINIMAP_SCALE":              {"minimap.scale", envTypeInt, "PNG upscaling factor"},
	"JOBS":                       {"jobs", envTypeInt, "Number of parallel workers (0 = auto)"},
	"FORMAT":                     {"format", envTypeString, "Output format: text, json, or summary"},
	"LANGUAGE":                   {"language", envTypeString, "Force a language profile instead of detection"},
	"IGNORE":                     {"ignore", envTypeSlice, "Comma-separated list of ignore patterns"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOHILITE_ (e.g., GOHILITE_HIGHLIGHT_MODE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number for %s: %q", envVar, value)
		}
		return setFloatField(cfg, mapping.field, f)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "highlight.mode":
		cfg.Highlight.Mode = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "language":
		cfg.Language = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "highlight.release_on_close":
		cfg.Highlight.ReleaseOnClose = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	m := &cfg.Minimap
	targets := map[string]*int{
		"highlight.max_bytes":     &cfg.Highlight.MaxBytes,
		"minimap.line_height":     &m.LineHeight,
		"minimap.line_gap":        &m.LineGap,
		"minimap.max_line_length": &m.MaxLineLength,
		"minimap.window_before":   &m.WindowBefore,
		"minimap.window_after":    &m.WindowAfter,
		"minimap.tab_width":       &m.TabWidth,
		"minimap.width":           &m.Width,
		"minimap.height":          &m.Height,
		"minimap.scale":           &m.Scale,
		"jobs":                    &cfg.Jobs,
	}

	target, ok := targets[field]
	if !ok {
		return fmt.Errorf("unknown integer field: %s", field)
	}
	*target = value
	return nil
}

// setFloatField sets a floating-point field on the config by field path.
func setFloatField(cfg *config.Config, field string, value float64) error {
	switch field {
	case "minimap.view_lines":
		cfg.Minimap.ViewLines = value
	default:
		return fmt.Errorf("unknown number field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.help
	}
	return vars
}

// SortedEnvVars returns the supported environment variable names in order.
func SortedEnvVars() []string {
	names := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		names = append(names, envVarPrefix+suffix)
	}
	sort.Strings(names)
	return names
}
