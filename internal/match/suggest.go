package match

import "sort"

// DefaultMinScore is the similarity a candidate needs to be suggested.
const DefaultMinScore = 0.5

// Suggestion is a known key ranked against a wanted one.
type Suggestion struct {
	Key   string
	Score float64
}

// Rank scores every candidate against want and returns those reaching
// minScore, best first. Ties keep candidate order.
func Rank(want string, candidates []string, minScore float64) []Suggestion {
	var out []Suggestion

	for _, c := range candidates {
		if c == want {
			continue
		}

		score := NormalizedLevenshteinScore(want, c)
		if score < minScore {
			continue
		}

		out = append(out, Suggestion{Key: c, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// Suggest returns up to limit candidate keys that look like want.
func Suggest(want string, candidates []string, limit int) []string {
	ranked := Rank(want, candidates, DefaultMinScore)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	keys := make([]string, 0, len(ranked))
	for _, s := range ranked {
		keys = append(keys, s.Key)
	}

	return keys
}

// Find returns the candidate whose normalized form equals want's, if any.
// It lets "選項Ａ" or "選項 A" resolve to a "選項A" column.
func Find(want string, candidates []string) (string, bool) {
	nw := NormalizeKey(want)

	for _, c := range candidates {
		if NormalizeKey(c) == nw {
			return c, true
		}
	}

	return "", false
}
