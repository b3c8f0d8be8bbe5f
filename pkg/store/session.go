package store

import "time"

// Candidate is a catalog problem scored for one diagnosis session
type Candidate struct {
	ProblemID   string  `json:"problem_id"`
	ProblemName string  `json:"problem_name"`
	Description string  `json:"description"`
	Score       float64 `json:"similarity_score"` // 1 / (1 + distance), in (0, 1]
}

// Session represents one customer's diagnosis conversation
type Session struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id"`
	Symptom    string `json:"symptom"`

	// Fixed at creation, ordered by similarity
	Candidates []Candidate `json:"candidates"`

	// One entry per candidate, keys never change after creation
	Weights map[string]float64 `json:"weights"`

	AskedQuestions []string `json:"asked_questions"`
	Answers        []string `json:"answers"`

	// The question emitted to the client that has not been answered yet
	PendingQuestion string `json:"pending_question"`

	Round int `json:"round"`

	// Set exactly once, when Round reaches MaxRounds
	Shortlist []Candidate `json:"shortlist"`
	Narrowed  bool        `json:"narrowed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	// Number of candidates retrieved for a new session
	TopK = 10
	// Number of candidates (by original similarity) shown to the oracles
	OracleContextSize = 5
	// Number of clarification rounds before narrowing
	MaxRounds = 3
	// Number of candidates kept in the final shortlist
	ShortlistSize = 3
)

// Stage is the client-facing state of a session
type Stage string

const (
	StageClarification Stage = "clarification"
	StageEstimation    Stage = "estimation"
	StageError         Stage = "error"
)

// NewSession initializes weights from candidate similarity scores
func NewSession(id string, candidates []Candidate) *Session {
	weights := make(map[string]float64, len(candidates))
	for _, c := range candidates {
		weights[c.ProblemID] = c.Score
	}

	fixed := make([]Candidate, len(candidates))
	copy(fixed, candidates)

	now := time.Now()
	return &Session{
		ID:             id,
		Candidates:     fixed,
		Weights:        weights,
		AskedQuestions: []string{},
		Answers:        []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// OracleContext returns the first OracleContextSize candidates in original order
func (s *Session) OracleContext() []Candidate {
	n := OracleContextSize
	if len(s.Candidates) < n {
		n = len(s.Candidates)
	}
	return s.Candidates[:n]
}

// IsTerminal reports whether all clarification rounds have been answered
func (s *Session) IsTerminal() bool {
	return s.Round >= MaxRounds
}

// NextQuestionNumber is the 1-based number of the question awaiting an answer
func (s *Session) NextQuestionNumber() int {
	return s.Round + 1
}

// Clone returns a deep copy so stores never share mutable state with callers
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Candidates = append([]Candidate(nil), s.Candidates...)
	c.AskedQuestions = append([]string{}, s.AskedQuestions...)
	c.Answers = append([]string{}, s.Answers...)
	if s.Shortlist != nil {
		c.Shortlist = append([]Candidate{}, s.Shortlist...)
	}
	c.Weights = make(map[string]float64, len(s.Weights))
	for k, v := range s.Weights {
		c.Weights[k] = v
	}
	return &c
}
