package reco

import "sort"

// rankTop orders scored candidates by descending raw score and truncates
// to n. The sort is stable: equal raw scores keep their candidate-set
// order, which is the only tie-break rule. Asking for more than exist is
// not an error.
func rankTop(scored []ScoredCandidate, n int) []ScoredCandidate {
	ranked := make([]ScoredCandidate, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Raw > ranked[j].Raw
	})

	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}

	return ranked[:n]
}
