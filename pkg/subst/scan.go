package subst

import (
	"bytes"
)

// Apply runs the left-to-right substitution scan over src and returns a
// freshly built buffer. See ApplyStats for the algorithm.
func (s *RuleSet) Apply(src []byte) []byte {
	out, _ := s.ApplyStats(src)
	return out
}

// ApplyStats is Apply plus a per-rule match count, indexed by rule-set
// position.
//
// A cursor starts at 0. Each step finds, for every rule, the earliest
// occurrence of its literal at or after the cursor, and selects the
// rule with the smallest skip; an exact tie goes to the rule earlier in
// the set. The skipped bytes are copied verbatim, the replacement text
// is emitted, and the cursor advances past the matched literal, so
// matches are consumed exactly once and replacement text is never
// rescanned. When no rule matches, the remainder is copied verbatim.
//
// Per-rule occurrence offsets are cached between steps so the buffer is
// not rescanned from the cursor for rules whose next match is already
// known to lie ahead.
func (s *RuleSet) ApplyStats(src []byte) ([]byte, []int) {
	counts := make([]int, len(s.rules))
	if len(s.rules) == 0 {
		return append([]byte(nil), src...), counts
	}

	out := make([]byte, 0, len(src))

	// next[i] is the offset of rule i's next occurrence, -1 when the
	// literal does not occur again. Entries go stale (fall behind the
	// cursor) only when another rule's match overlapped them.
	next := make([]int, len(s.rules))
	for i := range s.rules {
		next[i] = bytes.Index(src, s.rules[i].from)
	}

	cursor := 0
	for cursor < len(src) {
		best := -1
		for i := range s.rules {
			if next[i] >= 0 && next[i] < cursor {
				rel := bytes.Index(src[cursor:], s.rules[i].from)
				if rel < 0 {
					next[i] = -1
				} else {
					next[i] = cursor + rel
				}
			}
			if next[i] < 0 {
				continue
			}
			// Strict < keeps the earliest rule in set order on ties.
			if best < 0 || next[i] < next[best] {
				best = i
			}
		}

		if best < 0 {
			out = append(out, src[cursor:]...)
			break
		}

		rule := &s.rules[best]
		out = append(out, src[cursor:next[best]]...)
		out = append(out, rule.to...)
		cursor = next[best] + len(rule.from)
		counts[best]++

		// This occurrence is consumed; force a re-find next step.
		next[best] = cursor - 1
		if cursor >= len(src) {
			next[best] = -1
		}
	}

	return out, counts
}
