package ranking

import (
	"sort"

	"vehicle-diagnosis-be/pkg/store"
)

// Rank orders candidates by weight, highest first, and returns at most n.
// Candidates with equal weight keep their original relative order.
// A candidate missing from weights ranks as weight 0.
func Rank(candidates []store.Candidate, weights map[string]float64, n int) []store.Candidate {
	ranked := make([]store.Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return weights[ranked[i].ProblemID] > weights[ranked[j].ProblemID]
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Shortlist ranks the session's fixed candidate set into its terminal shortlist
func Shortlist(session *store.Session) []store.Candidate {
	return Rank(session.Candidates, session.Weights, store.ShortlistSize)
}
