// Package fuzzy ranks candidate names by edit distance. The parser uses it
// to attach a "did you mean" suggestion to unknown-argument errors.
package fuzzy

import "strings"

// Matcher finds near matches within a maximum Levenshtein distance. Inputs
// shorter than two characters never match; suggesting against a single
// letter is noise.
type Matcher struct {
	maxDistance int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{maxDistance: maxDistance}
}

// FindBest returns the closest candidate within the maximum distance, or ""
// when none qualifies. Ties break on shorter distance first, then on
// lexicographic order so output stays deterministic.
func (m *Matcher) FindBest(input string, candidates []string) string {
	if len(input) < 2 {
		return ""
	}
	lowerIn := strings.ToLower(input)

	best := ""
	bestDist := m.maxDistance + 1
	for _, candidate := range candidates {
		if candidate == input {
			continue
		}
		d := m.distance(lowerIn, strings.ToLower(candidate))
		if d < bestDist || (d == bestDist && best != "" && candidate < best) {
			best = candidate
			bestDist = d
		}
	}
	if bestDist > m.maxDistance {
		return ""
	}
	return best
}

// distance computes the Levenshtein distance between a and b using two
// rolling rows, bailing out at maxDistance+1 when a row's minimum already
// exceeds the cap.
func (m *Matcher) distance(a, b string) int {
	if a == b {
		return 0
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			cur[j] = min(cur[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

// FindBest is a convenience wrapper around a one-shot Matcher.
func FindBest(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, candidates)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
