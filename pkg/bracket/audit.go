package bracket

// Report summarizes bracket balance over a whole text.
type Report struct {
	// Pairs is the number of matched opener/closer pairs.
	Pairs int `json:"pairs"`

	// Unmatched holds the codepoint offsets of brackets without a partner,
	// in ascending order.
	Unmatched []int `json:"unmatched,omitempty"`
}

// Balanced reports whether every bracket found a partner.
func (r Report) Balanced() bool {
	return len(r.Unmatched) == 0
}

// Audit pairs brackets across runes with a stack. A closer that does not
// match the innermost open bracket is reported unmatched and leaves the
// stack untouched. Offsets for which skip returns true are ignored, which
// lets callers exclude brackets inside strings and comments. Angle
// brackets are not audited since they double as comparison operators.
func Audit(runes []rune, skip func(offset int) bool) Report {
	var (
		report Report
		stack  []int
	)

	for i, r := range runes {
		if r == '<' || r == '>' {
			continue
		}
		counterpart, dir, ok := pairFor(r)
		if !ok || (skip != nil && skip(i)) {
			continue
		}

		if dir == Forward {
			stack = append(stack, i)
			continue
		}

		top := len(stack) - 1
		if top >= 0 && runes[stack[top]] == counterpart {
			stack = stack[:top]
			report.Pairs++
			continue
		}
		report.Unmatched = append(report.Unmatched, i)
	}

	if len(stack) > 0 {
		report.Unmatched = mergeSorted(report.Unmatched, stack)
	}
	return report
}

func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
