package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the minimum Similarity for a suggestion.
const DefaultThreshold = 0.6

// Candidate is a name scored against a query.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those reaching
// threshold, best first. Ties keep lexicographic order.
func Rank(name string, candidates []string, threshold float64) []Candidate {
	var out []Candidate

	for _, c := range candidates {
		if s := Similarity(name, c); s >= threshold {
			out = append(out, Candidate{Name: c, Score: s})
		}
	}

	slices.SortFunc(out, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return out
}

// Suggest returns up to limit candidates close to name, best first.
// A limit of zero or less means no limit.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates, DefaultThreshold)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Name
	}

	return out
}
