package retrieval

import (
	"context"
	"strings"

	"vehicle-diagnosis-be/pkg/store"
)

// Entry is the part of a catalog problem the index needs
type Entry struct {
	ProblemID    string
	Name         string
	Descriptions []string
}

// Text is what gets embedded for an entry
func (e Entry) Text() string {
	return e.Name + " " + strings.Join(e.Descriptions, " ")
}

func (e Entry) candidate(distance float64) store.Candidate {
	excerpt := ""
	if len(e.Descriptions) > 0 {
		excerpt = e.Descriptions[0]
	}
	return store.Candidate{
		ProblemID:   e.ProblemID,
		ProblemName: e.Name,
		Description: excerpt,
		Score:       Score(distance),
	}
}

// Score maps a squared L2 distance into (0, 1]
func Score(distance float64) float64 {
	return 1 / (1 + distance)
}

// Index answers nearest-problem queries over a catalog snapshot.
// Retrieve returns at most k candidates by descending score; an empty result means no match.
type Index interface {
	Retrieve(ctx context.Context, query string, k int) ([]store.Candidate, error)
	Rebuild(ctx context.Context, entries []Entry) error
	Size(ctx context.Context) (int, error)
}
