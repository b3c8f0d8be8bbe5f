package ranking

import (
	"testing"

	"vehicle-diagnosis-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func candidates(ids ...string) []store.Candidate {
	out := make([]store.Candidate, len(ids))
	for i, id := range ids {
		out[i] = store.Candidate{ProblemID: id, ProblemName: "Problem " + id}
	}
	return out
}

func ids(cs []store.Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ProblemID
	}
	return out
}

func TestRank(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		weights map[string]float64
		n       int
		want    []string
	}{
		{
			name:    "descending by weight",
			ids:     []string{"A", "B", "C"},
			weights: map[string]float64{"A": 0.2, "B": 0.9, "C": 0.5},
			n:       3,
			want:    []string{"B", "C", "A"},
		},
		{
			name:    "ties keep original order",
			ids:     []string{"A", "B", "C", "D"},
			weights: map[string]float64{"A": 0.5, "B": 0.7, "C": 0.5, "D": 0.7},
			n:       4,
			want:    []string{"B", "D", "A", "C"},
		},
		{
			name:    "truncates to n",
			ids:     []string{"A", "B", "C", "D", "E"},
			weights: map[string]float64{"A": 1, "B": 2, "C": 3, "D": 4, "E": 5},
			n:       3,
			want:    []string{"E", "D", "C"},
		},
		{
			name:    "fewer than n returns all",
			ids:     []string{"A", "B"},
			weights: map[string]float64{"A": 0.1, "B": 0.3},
			n:       3,
			want:    []string{"B", "A"},
		},
		{
			name:    "missing weight ranks as zero",
			ids:     []string{"A", "B"},
			weights: map[string]float64{"B": 0.1},
			n:       3,
			want:    []string{"B", "A"},
		},
		{
			name:    "empty",
			ids:     []string{},
			weights: map[string]float64{},
			n:       3,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(candidates(tt.ids...), tt.weights, tt.n)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := candidates("A", "B", "C")
	Rank(in, map[string]float64{"A": 0, "B": 1, "C": 2}, 3)
	assert.Equal(t, []string{"A", "B", "C"}, ids(in))
}

func TestRankIsDeterministic(t *testing.T) {
	in := candidates("A", "B", "C", "D", "E", "F")
	weights := map[string]float64{"A": 0.4, "B": 0.4, "C": 0.9, "D": 0.4, "E": 0.1, "F": 0.9}

	first := ids(Rank(in, weights, 6))
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, ids(Rank(in, weights, 6)))
	}
	assert.Equal(t, []string{"C", "F", "A", "B", "D", "E"}, first)
}

func TestShortlist(t *testing.T) {
	session := store.NewSession("s1", []store.Candidate{
		{ProblemID: "A", Score: 0.9},
		{ProblemID: "B", Score: 0.7},
		{ProblemID: "C", Score: 0.5},
		{ProblemID: "D", Score: 0.4},
	})
	session.Weights["D"] = 1.5

	assert.Equal(t, []string{"D", "A", "B"}, ids(Shortlist(session)))
}
