// Package suggest finds command names similar to a mistyped one.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score required for a command to be suggested.
const threshold = 0.5

// Candidate is a command that may be suggested, matched by its name or any of its aliases.
type Candidate struct {
	Name    string
	Aliases []string
}

// FindSimilar returns up to maxResults candidate names similar to target, most similar first.
// Aliases count toward a candidate's score but only its name is returned.
func FindSimilar(target string, candidates []Candidate, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	type scored struct {
		name  string
		score float64
	}
	suggestions := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		best := calculateSimilarity(target, c.Name)
		for _, alias := range c.Aliases {
			best = max(best, calculateSimilarity(target, alias))
		}
		if best > threshold {
			suggestions = append(suggestions, scored{name: c.Name, score: best})
		}
	}

	slices.SortFunc(suggestions, func(a, b scored) int {
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, maxResults)
	for i := 0; i < len(suggestions) && i < maxResults; i++ {
		result = append(result, suggestions[i].name)
	}
	return result
}

func calculateSimilarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	distance := levenshteinDistance(a, b)
	maxLen := float64(max(len(a), len(b)))
	return 1.0 - float64(distance)/maxLen
}

// levenshteinDistance computes the edit distance between a and b keeping only two rows of the
// dynamic programming table.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
