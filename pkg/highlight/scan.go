package highlight

import (
	"regexp"
	"sort"
	"unicode/utf8"
)

// byteRange is a half-open byte range into the scanned text.
type byteRange struct {
	start, end int
}

// groupRange extracts capture group g from a submatch index slice.
// It reports false when the group did not participate or is empty.
func groupRange(loc []int, group int) (byteRange, bool) {
	if 2*group+1 >= len(loc) {
		return byteRange{}, false
	}
	start, end := loc[2*group], loc[2*group+1]
	if start < 0 || end <= start {
		return byteRange{}, false
	}
	return byteRange{start: start, end: end}, true
}

// scanAll runs re over the whole text and returns the tagged ranges of
// every non-overlapping match, in ascending order. A match is dropped when
// either the whole match or its tagged group starts inside one of masks.
func scanAll(text string, re *regexp.Regexp, group int, masks []byteRange) []byteRange {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([]byteRange, 0, len(matches))
	for _, loc := range matches {
		r, ok := groupRange(loc, group)
		if !ok {
			continue
		}
		if insideAny(masks, loc[0]) || insideAny(masks, r.start) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// maskRule is one participant of the exclusive tokenizer.
type maskRule struct {
	index int
	re    *regexp.Regexp
	group int
}

// tokenize runs the mask rules as one leftmost-first tokenizer. At each
// position the earliest match among all rules wins, ties go to the rule
// listed first, and scanning resumes at the end of the accepted match.
//
// It returns the tagged ranges per rule index and the accepted ranges in
// ascending order.
func tokenize(text string, rules []maskRule) (map[int][]byteRange, []byteRange) {
	byRule := make(map[int][]byteRange, len(rules))
	var accepted []byteRange

	// next[i] caches rule i's leftmost match at or after the position it
	// was computed from; it stays valid while its start is >= pos.
	next := make([][]int, len(rules))
	done := make([]bool, len(rules))

	pos := 0
	for pos <= len(text) {
		best := -1
		for i, rule := range rules {
			if done[i] {
				continue
			}
			if next[i] == nil || next[i][0] < pos {
				loc := rule.re.FindStringSubmatchIndex(text[pos:])
				if loc == nil {
					done[i] = true
					continue
				}
				for j := range loc {
					if loc[j] >= 0 {
						loc[j] += pos
					}
				}
				next[i] = loc
			}
			if best < 0 || next[i][0] < next[best][0] {
				best = i
			}
		}
		if best < 0 {
			break
		}

		loc := next[best]
		rule := rules[best]
		if r, ok := groupRange(loc, rule.group); ok {
			byRule[rule.index] = append(byRule[rule.index], r)
			accepted = append(accepted, r)
		}

		end := loc[1]
		if end == loc[0] {
			// Empty match: step over one codepoint.
			if end >= len(text) {
				break
			}
			_, size := utf8.DecodeRuneInString(text[end:])
			end += size
		}
		pos = end
	}

	return byRule, accepted
}

// insideAny reports whether offset falls inside one of the sorted,
// disjoint ranges.
func insideAny(ranges []byteRange, offset int) bool {
	idx := sort.Search(len(ranges), func(i int) bool {
		return ranges[i].end > offset
	})
	return idx < len(ranges) && ranges[idx].start <= offset
}
