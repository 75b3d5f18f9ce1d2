// Package bracket finds the bracket paired with the one at the cursor and
// provides the pure decisions behind bracket auto-pairing.
package bracket

// Match is a pair of codepoint offsets holding a matched opener and closer.
// First is always less than Second.
type Match struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// Direction is the scan direction from an anchor.
type Direction int

const (
	// Forward scans toward the end of the text (from an opener).
	Forward Direction = 1
	// Backward scans toward the start of the text (from a closer).
	Backward Direction = -1
)

// pairFor returns the counterpart, the scan direction and whether r is a
// bracket at all.
func pairFor(r rune) (rune, Direction, bool) {
	switch r {
	case '(':
		return ')', Forward, true
	case ')':
		return '(', Backward, true
	case '[':
		return ']', Forward, true
	case ']':
		return '[', Backward, true
	case '{':
		return '}', Forward, true
	case '}':
		return '{', Backward, true
	case '<':
		return '>', Forward, true
	case '>':
		return '<', Backward, true
	}
	return 0, 0, false
}

// IsOpener returns true if r opens a bracket pair.
func IsOpener(r rune) bool {
	_, dir, ok := pairFor(r)
	return ok && dir == Forward
}

// IsCloser returns true if r closes a bracket pair.
func IsCloser(r rune) bool {
	_, dir, ok := pairFor(r)
	return ok && dir == Backward
}

// Counterpart returns the bracket paired with r.
func Counterpart(r rune) (rune, bool) {
	match, _, ok := pairFor(r)
	return match, ok
}

// Scan walks from the bracket at runes[start] in direction dir, counting
// the anchor character up and its counterpart down, and returns the first
// offset other than start where the count returns to zero.
// It reports false if start is out of range, runes[start] is not a
// bracket, or the text ends first.
func Scan(runes []rune, start int, dir Direction) (int, bool) {
	if start < 0 || start >= len(runes) || (dir != Forward && dir != Backward) {
		return 0, false
	}

	anchor := runes[start]
	target, _, ok := pairFor(anchor)
	if !ok {
		return 0, false
	}

	count := 0
	for i := start; i >= 0 && i < len(runes); i += int(dir) {
		switch runes[i] {
		case anchor:
			count++
		case target:
			count--
		}
		if count == 0 && i != start {
			return i, true
		}
	}
	return 0, false
}

// MatchAt finds matched pairs anchored at the cursor. It examines the
// character before the cursor and then the one after it; an opener is
// matched forward, a closer backward. At most two matches are returned,
// the before-cursor one first, and a pair found from both anchors is
// reported once. The cursor is clamped to [0, len].
func MatchAt(text string, cursor int) []Match {
	return MatchRunes([]rune(text), cursor)
}

// MatchRunes is MatchAt over pre-decoded text.
func MatchRunes(runes []rune, cursor int) []Match {
	cursor = max(0, min(cursor, len(runes)))

	var out []Match
	for _, anchor := range []int{cursor - 1, cursor} {
		if anchor < 0 || anchor >= len(runes) {
			continue
		}
		_, dir, ok := pairFor(runes[anchor])
		if !ok {
			continue
		}
		other, found := Scan(runes, anchor, dir)
		if !found {
			continue
		}

		m := Match{First: min(anchor, other), Second: max(anchor, other)}
		if len(out) > 0 && out[0] == m {
			continue
		}
		out = append(out, m)
	}
	return out
}
