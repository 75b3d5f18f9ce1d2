package highlight

import "github.com/yaklabco/gohilite/pkg/syntax"

// Run is a maximal stretch of codepoints painted with one kind.
// Kind is zero for unhighlighted text.
type Run struct {
	Kind  syntax.Kind `json:"kind,omitempty"`
	Start int         `json:"start"`
	End   int         `json:"end"`
}

// Paint flattens spans over a text of n codepoints. Spans are applied in
// list order, so a later span overrides an earlier one where they overlap.
// The returned runs tile [0, n) without gaps.
func Paint(spans []Span, n int) []Run {
	if n <= 0 {
		return nil
	}

	kinds := make([]syntax.Kind, n)
	for _, s := range spans {
		start := max(s.Start, 0)
		end := min(s.End, n)
		for i := start; i < end; i++ {
			kinds[i] = s.Kind
		}
	}

	runs := []Run{{Kind: kinds[0], Start: 0}}
	for i := 1; i < n; i++ {
		if kinds[i] != kinds[i-1] {
			runs[len(runs)-1].End = i
			runs = append(runs, Run{Kind: kinds[i], Start: i})
		}
	}
	runs[len(runs)-1].End = n
	return runs
}
