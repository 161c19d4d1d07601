package match

import "sort"

// DefaultMinScore is the lowest similarity Suggest reports.
const DefaultMinScore = 0.6

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit known keywords similar to name, best first.
// Ties keep the order of known.
func Suggest(name string, known []string, minScore float64, limit int) []string {
	var hits []scored

	for _, k := range known {
		s := KeywordScore(name, k)
		if s >= minScore {
			hits = append(hits, scored{name: k, score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}

	return out
}
