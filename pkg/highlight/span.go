// Package highlight turns document text into classified spans using the
// rule tables in package syntax.
package highlight

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gohilite/pkg/syntax"
)

// Span is a classified half-open range [Start, End) of codepoint offsets.
type Span struct {
	Kind  syntax.Kind `json:"kind"`
	Start int         `json:"start"`
	End   int         `json:"end"`

	// Rule names the rule that produced the span.
	Rule string `json:"rule"`
}

// Len returns the number of codepoints covered.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether offset lies inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Mode selects how overlapping rule matches are resolved.
type Mode string

const (
	// ModeExclusive lets string and comment rules own their text: other
	// rules may not start inside them.
	ModeExclusive Mode = "exclusive"

	// ModeLayered runs every rule independently and leaves overlaps to
	// paint order.
	ModeLayered Mode = "layered"
)

// IsValid returns true if m is a known mode.
func (m Mode) IsValid() bool {
	return m == ModeExclusive || m == ModeLayered
}

// ParseMode converts a string to a Mode. The empty string selects
// ModeExclusive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeExclusive):
		return ModeExclusive, nil
	case string(ModeLayered):
		return ModeLayered, nil
	default:
		return "", fmt.Errorf("invalid highlight mode %q (valid: exclusive, layered)", s)
	}
}

// CountByKind tallies spans per kind.
func CountByKind(spans []Span) map[syntax.Kind]int {
	counts := make(map[syntax.Kind]int)
	for _, s := range spans {
		counts[s.Kind]++
	}
	return counts
}
