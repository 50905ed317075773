// Package suggest finds declared names close to a mistyped one.
package suggest

import (
	"sort"
	"strings"
)

// Matcher ranks candidates by edit distance from an input.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher returns a matcher accepting candidates at most maxDistance
// edits away. Inputs shorter than two characters never match.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{maxDistance: maxDistance, minLength: 2}
}

// Match is a candidate within range of the input.
type Match struct {
	Value    string
	Distance int
}

// Closest returns the best candidate, or "" when none is in range or the
// input is itself a candidate.
func (m *Matcher) Closest(input string, candidates []string) string {
	matches := m.Matches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// Matches returns every candidate in range, nearest first. Ties go to the
// longer shared prefix, then to declaration order. Comparison ignores case
// and exact matches are excluded.
func (m *Matcher) Matches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}
	input = strings.ToLower(input)

	var matches []Match
	prefix := map[string]int{}
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == input {
			return nil
		}
		d := m.distance(input, lc)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Value: c, Distance: d})
		prefix[c] = sharedPrefix(input, lc)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return prefix[matches[i].Value] > prefix[matches[j].Value]
	})
	return matches
}

// distance is the Levenshtein distance over runes, capped at
// maxDistance+1 once no row can come back in range.
func (m *Matcher) distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(rb)-len(ra) > m.maxDistance {
		return m.maxDistance + 1
	}

	prev := make([]int, len(ra)+1)
	cur := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(rb); i++ {
		cur[0] = i
		best := i
		for j := 1; j <= len(ra); j++ {
			cost := 1
			if ra[j-1] == rb[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			best = min(best, cur[j])
		}
		if best > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(ra)]
}

func sharedPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
