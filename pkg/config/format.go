package config

import (
	"fmt"
	"strings"
)

// ParseFormat converts a string to an OutputFormat.
// The empty string selects FormatText.
func ParseFormat(s string) (OutputFormat, error) {
	if s == "" {
		return FormatText, nil
	}
	format := OutputFormat(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid format %q (valid: text, table, json, summary)", s)
	}
	return format, nil
}
