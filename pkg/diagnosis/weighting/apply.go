package weighting

import (
	"sort"

	"vehicle-diagnosis-be/pkg/store"
)

// Apply adds deltas to the session weights and floors each resulting weight at zero.
// Ids outside the weight map are discarded and returned sorted.
func Apply(s *store.Session, deltas map[string]float64) []string {
	ignored := []string{}
	for id, d := range deltas {
		w, ok := s.Weights[id]
		if !ok {
			ignored = append(ignored, id)
			continue
		}
		w += d
		if w < 0 {
			w = 0
		}
		s.Weights[id] = w
	}
	sort.Strings(ignored)
	return ignored
}
