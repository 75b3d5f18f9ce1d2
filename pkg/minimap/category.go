// Package minimap renders a scaled overview of a document: one thin bar
// per line, colored by a coarse line category, plus an outline marking
// the part of the document visible in the primary view.
package minimap

import (
	"fmt"
	"image/color"
	"strings"
)

// Category is the coarse classification of one line.
type Category uint8

// Line categories, in classification priority order.
const (
	CategoryPlain Category = iota
	CategoryComment
	CategoryDefinition
	CategoryImport
	CategoryControlFlow
)

//nolint:gochecknoglobals // Lookup tables.
var (
	categoryNames = [...]string{
		CategoryPlain:       "plain",
		CategoryComment:     "comment",
		CategoryDefinition:  "definition",
		CategoryImport:      "import",
		CategoryControlFlow: "control",
	}

	categoryColors = [...]color.RGBA{
		CategoryPlain:       {R: 212, G: 212, B: 212, A: 255},
		CategoryComment:     {R: 106, G: 153, B: 85, A: 255},
		CategoryDefinition:  {R: 220, G: 220, B: 170, A: 255},
		CategoryImport:      {R: 78, G: 201, B: 176, A: 255},
		CategoryControlFlow: {R: 86, G: 156, B: 214, A: 255},
	}

	commentPrefixes    = []string{"#", "//"}
	definitionPrefixes = []string{
		"def ", "class ", "function ", "public ", "private ", "protected ",
		"async ", "const ", "let ", "var ",
	}
	importMarkers   = []string{"import ", "from ", "include ", "using "}
	controlPrefixes = []string{"if ", "else", "for ", "while ", "switch ", "case ", "return "}
)

// Background is the minimap canvas color.
//
//nolint:gochecknoglobals // Fixed palette entry.
var Background = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255}

// IndicatorColor is the viewport outline color.
//
//nolint:gochecknoglobals // Fixed palette entry.
var IndicatorColor = color.RGBA{R: 0x56, G: 0x9c, B: 0xd6, A: 255}

func (c Category) String() string {
	if int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("invalid minimap category %d", uint8(c))
	}
	return []byte(categoryNames[c]), nil
}

// Color returns the fixed fill color of the category.
func (c Category) Color() color.RGBA {
	if int(c) >= len(categoryColors) {
		return categoryColors[CategoryPlain]
	}
	return categoryColors[c]
}

// Classify returns the category of a line. Leading whitespace is ignored.
// The first matching test wins: comment prefix, definition prefix, import
// keyword anywhere in the line, control-flow prefix.
func Classify(line string) Category {
	stripped := strings.TrimLeft(line, " \t\r\f\v")

	switch {
	case hasAnyPrefix(stripped, commentPrefixes):
		return CategoryComment
	case hasAnyPrefix(stripped, definitionPrefixes):
		return CategoryDefinition
	case containsAny(stripped, importMarkers):
		return CategoryImport
	case hasAnyPrefix(stripped, controlPrefixes):
		return CategoryControlFlow
	default:
		return CategoryPlain
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
