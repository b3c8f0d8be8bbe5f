package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"vehicle-diagnosis-be/internal/pkg/logger"
	"vehicle-diagnosis-be/pkg/diagnosis/question"
	"vehicle-diagnosis-be/pkg/diagnosis/weighting"
	"vehicle-diagnosis-be/pkg/llm"
	"vehicle-diagnosis-be/pkg/lock"
	"vehicle-diagnosis-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu       sync.Mutex
	sessions map[string]*store.Session
	updates  int
}

func newMemRepo() *memRepo {
	return &memRepo{sessions: map[string]*store.Session{}}
}

func (m *memRepo) Create(_ context.Context, s *store.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *memRepo) Get(_ context.Context, id string) (*store.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id].Clone(), nil
}

func (m *memRepo) Update(_ context.Context, s *store.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	m.sessions[s.ID] = s.Clone()
	return nil
}

type fixedRetriever struct {
	candidates []store.Candidate
	err        error
}

func (f fixedRetriever) Retrieve(_ context.Context, _ string, k int) ([]store.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.candidates) > k {
		return f.candidates[:k], nil
	}
	return f.candidates, nil
}

type scriptedQuestions struct {
	mu    sync.Mutex
	calls int
}

func (s *scriptedQuestions) Next(_ context.Context, _ []store.Candidate, _ []string, number int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return fmt.Sprintf("question %d", number)
}

type adjustCall struct {
	question, answer string
	ids              []string
}

type scriptedWeights struct {
	mu     sync.Mutex
	rounds []map[string]float64
	calls  []adjustCall
}

func (s *scriptedWeights) Adjust(_ context.Context, candidates []store.Candidate, q, a string) weighting.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ProblemID
	}
	s.calls = append(s.calls, adjustCall{question: q, answer: a, ids: ids})
	if len(s.rounds) == 0 {
		return weighting.Outcome{Deltas: map[string]float64{}, Reason: "no script"}
	}
	d := s.rounds[0]
	s.rounds = s.rounds[1:]
	return weighting.Outcome{Deltas: d, OK: true}
}

var abc = []store.Candidate{
	{ProblemID: "A", ProblemName: "Alternator failure", Score: 0.9},
	{ProblemID: "B", ProblemName: "Battery drain", Score: 0.7},
	{ProblemID: "C", ProblemName: "Corroded cables", Score: 0.5},
}

func newTestEngine(candidates []store.Candidate, weights *scriptedWeights) (*Engine, *memRepo, *scriptedQuestions) {
	repo := newMemRepo()
	qs := &scriptedQuestions{}
	e := NewEngine(fixedRetriever{candidates: candidates}, qs, weights, repo, lock.NewLocalLocker(), logger.NewNopLogger())
	return e, repo, qs
}

func TestEngine_WorkedScenario(t *testing.T) {
	ctx := context.Background()
	weights := &scriptedWeights{rounds: []map[string]float64{
		{"A": 0.2, "B": -0.1},
		{"C": 0.3},
		{"A": -0.3, "C": -0.3},
	}}
	e, repo, _ := newTestEngine(abc, weights)

	res, err := e.Start(ctx, StartInput{CustomerID: "CUST1", VehicleID: "VEH1", Symptom: "car will not start"})
	require.NoError(t, err)
	assert.Equal(t, store.StageClarification, res.Stage)
	assert.Equal(t, "question 1", res.Question)
	assert.Equal(t, 1, res.QuestionNumber)
	assert.Equal(t, 3, res.TotalQuestions)
	assert.Equal(t, []string{"Alternator failure", "Battery drain", "Corroded cables"}, res.Candidates)
	id := res.SessionID

	res, err = e.Answer(ctx, id, "only in the morning")
	require.NoError(t, err)
	assert.Equal(t, "question 2", res.Question)
	assert.Equal(t, 2, res.QuestionNumber)

	s, _ := repo.Get(ctx, id)
	assert.InDelta(t, 1.1, s.Weights["A"], 1e-9)
	assert.InDelta(t, 0.6, s.Weights["B"], 1e-9)
	assert.InDelta(t, 0.5, s.Weights["C"], 1e-9)

	res, err = e.Answer(ctx, id, "a burning smell")
	require.NoError(t, err)
	assert.Equal(t, 3, res.QuestionNumber)

	s, _ = repo.Get(ctx, id)
	assert.InDelta(t, 0.8, s.Weights["C"], 1e-9)

	res, err = e.Answer(ctx, id, "lights flicker")
	require.NoError(t, err)
	assert.Equal(t, store.StageEstimation, res.Stage)
	require.Len(t, res.TopProblems, 3)
	assert.Equal(t, "A", res.TopProblems[0].ProblemID)
	assert.Equal(t, "B", res.TopProblems[1].ProblemID)
	assert.Equal(t, "C", res.TopProblems[2].ProblemID)

	s, _ = repo.Get(ctx, id)
	assert.InDelta(t, 0.8, s.Weights["A"], 1e-9)
	assert.InDelta(t, 0.6, s.Weights["B"], 1e-9)
	assert.InDelta(t, 0.5, s.Weights["C"], 1e-9)
	assert.Equal(t, []string{"question 1", "question 2", "question 3"}, s.AskedQuestions)
	assert.Equal(t, []string{"only in the morning", "a burning smell", "lights flicker"}, s.Answers)
	assert.Equal(t, 3, s.Round)
	assert.True(t, s.Narrowed)
	assert.Empty(t, s.PendingQuestion)
	assert.Equal(t, "CUST1", s.CustomerID)
	assert.Equal(t, "VEH1", s.VehicleID)
}

func TestEngine_AdjusterReceivesEmittedQuestionAndOriginalTopFive(t *testing.T) {
	ctx := context.Background()
	many := make([]store.Candidate, 8)
	for i := range many {
		many[i] = store.Candidate{ProblemID: fmt.Sprintf("P%d", i), Score: 1 - float64(i)/10}
	}
	weights := &scriptedWeights{rounds: []map[string]float64{{"P7": 0.3}, {"P7": 0.3}}}
	e, _, _ := newTestEngine(many, weights)

	res, err := e.Start(ctx, StartInput{Symptom: "noise"})
	require.NoError(t, err)

	_, err = e.Answer(ctx, res.SessionID, "first")
	require.NoError(t, err)
	_, err = e.Answer(ctx, res.SessionID, "second")
	require.NoError(t, err)

	require.Len(t, weights.calls, 2)
	assert.Equal(t, "question 1", weights.calls[0].question)
	assert.Equal(t, "question 2", weights.calls[1].question)
	// Weight changes never reorder the oracle context
	for _, c := range weights.calls {
		assert.Equal(t, []string{"P0", "P1", "P2", "P3", "P4"}, c.ids)
	}
}

func TestEngine_NoMatchPersistsNothing(t *testing.T) {
	e, repo, qs := newTestEngine(nil, &scriptedWeights{})

	res, err := e.Start(context.Background(), StartInput{Symptom: "???"})
	require.NoError(t, err)

	assert.Equal(t, store.StageError, res.Stage)
	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, NoMatchMessage, res.Message)
	assert.Empty(t, repo.sessions)
	assert.Equal(t, 0, qs.calls)
}

func TestEngine_RetrievalErrorPropagates(t *testing.T) {
	repo := newMemRepo()
	e := NewEngine(fixedRetriever{err: errors.New("db down")}, &scriptedQuestions{}, &scriptedWeights{}, repo, lock.NewLocalLocker(), logger.NewNopLogger())

	_, err := e.Start(context.Background(), StartInput{Symptom: "noise"})
	assert.ErrorIs(t, err, ErrIndexUnavailable)
	assert.ErrorContains(t, err, "db down")
	assert.Empty(t, repo.sessions)
}

func TestEngine_TerminalSessionIsIdempotent(t *testing.T) {
	ctx := context.Background()
	weights := &scriptedWeights{rounds: []map[string]float64{{"B": 0.3}, {"B": 0.3}, {"C": 0.1}}}
	e, repo, _ := newTestEngine(abc, weights)

	res, _ := e.Start(ctx, StartInput{Symptom: "noise"})
	id := res.SessionID
	var last *Result
	for _, a := range []string{"a1", "a2", "a3"} {
		var err error
		last, err = e.Answer(ctx, id, a)
		require.NoError(t, err)
	}
	require.Equal(t, store.StageEstimation, last.Stage)
	updates := repo.updates

	for i := 0; i < 3; i++ {
		again, err := e.Answer(ctx, id, "extra answer")
		require.NoError(t, err)
		assert.Equal(t, last.TopProblems, again.TopProblems)
	}

	s, _ := repo.Get(ctx, id)
	assert.Equal(t, 3, s.Round)
	assert.Len(t, s.Answers, 3)
	assert.NotContains(t, s.Answers, "extra answer")
	assert.Len(t, weights.calls, 3)
	assert.Equal(t, updates, repo.updates)
}

func TestEngine_UnknownSession(t *testing.T) {
	e, _, _ := newTestEngine(abc, &scriptedWeights{})

	_, err := e.Answer(context.Background(), "missing", "hi")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = e.Status(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestEngine_StatusMidSession(t *testing.T) {
	ctx := context.Background()
	e, _, qs := newTestEngine(abc, &scriptedWeights{})

	res, _ := e.Start(ctx, StartInput{Symptom: "noise"})
	_, err := e.Answer(ctx, res.SessionID, "first")
	require.NoError(t, err)
	calls := qs.calls

	st, err := e.Status(ctx, res.SessionID)
	require.NoError(t, err)
	assert.Equal(t, store.StageClarification, st.Stage)
	assert.Equal(t, "question 2", st.Question)
	assert.Equal(t, 2, st.QuestionNumber)
	assert.Equal(t, calls, qs.calls)
}

func TestEngine_StatusRegeneratesMissingQuestion(t *testing.T) {
	ctx := context.Background()
	e, repo, qs := newTestEngine(abc, &scriptedWeights{})

	s := store.NewSession("legacy", abc)
	s.Round = 1
	s.AskedQuestions = []string{"old"}
	s.Answers = []string{"old answer"}
	require.NoError(t, repo.Create(ctx, s))

	st, err := e.Status(ctx, "legacy")
	require.NoError(t, err)
	assert.Equal(t, "question 2", st.Question)
	assert.Equal(t, 1, qs.calls)

	stored, _ := repo.Get(ctx, "legacy")
	assert.Equal(t, "question 2", stored.PendingQuestion)
}

func TestEngine_AnswerRegeneratesMissingQuestion(t *testing.T) {
	ctx := context.Background()
	weights := &scriptedWeights{}
	e, repo, _ := newTestEngine(abc, weights)

	require.NoError(t, repo.Create(ctx, store.NewSession("legacy", abc)))

	_, err := e.Answer(ctx, "legacy", "answer")
	require.NoError(t, err)

	require.Len(t, weights.calls, 1)
	assert.Equal(t, "question 1", weights.calls[0].question)
}

func TestEngine_StatusNarrowsFinishedSessionOnce(t *testing.T) {
	ctx := context.Background()
	e, repo, _ := newTestEngine(abc, &scriptedWeights{})

	var hooks int
	e.OnNarrowed(func(_ context.Context, s *store.Session) {
		hooks++
		assert.True(t, s.Narrowed)
	})

	s := store.NewSession("done", abc)
	s.Round = store.MaxRounds
	s.AskedQuestions = []string{"q1", "q2", "q3"}
	s.Answers = []string{"a1", "a2", "a3"}
	s.Weights["C"] = 2
	require.NoError(t, repo.Create(ctx, s))

	first, err := e.Status(ctx, "done")
	require.NoError(t, err)
	assert.Equal(t, store.StageEstimation, first.Stage)
	assert.Equal(t, "C", first.TopProblems[0].ProblemID)

	second, err := e.Status(ctx, "done")
	require.NoError(t, err)
	assert.Equal(t, first.TopProblems, second.TopProblems)
	assert.Equal(t, 1, hooks)
}

func TestEngine_WeightDomainClosedAndNonNegative(t *testing.T) {
	ctx := context.Background()
	weights := &scriptedWeights{rounds: []map[string]float64{
		{"A": -5, "GHOST": 1},
		{"A": -5, "B": -5},
		{"C": -5, "X": 0.3},
	}}
	e, repo, _ := newTestEngine(abc, weights)

	res, _ := e.Start(ctx, StartInput{Symptom: "noise"})
	for i := 0; i < 3; i++ {
		_, err := e.Answer(ctx, res.SessionID, "a")
		require.NoError(t, err)
	}

	s, _ := repo.Get(ctx, res.SessionID)
	assert.Len(t, s.Weights, 3)
	for id, w := range s.Weights {
		assert.Contains(t, []string{"A", "B", "C"}, id)
		assert.GreaterOrEqual(t, w, 0.0)
	}
}

func TestEngine_ConcurrentAnswersNeverExceedRounds(t *testing.T) {
	ctx := context.Background()
	e, repo, _ := newTestEngine(abc, &scriptedWeights{})

	res, _ := e.Start(ctx, StartInput{Symptom: "noise"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := e.Answer(ctx, res.SessionID, fmt.Sprintf("answer %d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	s, _ := repo.Get(ctx, res.SessionID)
	assert.Equal(t, store.MaxRounds, s.Round)
	assert.Len(t, s.Answers, store.MaxRounds)
	assert.Len(t, s.AskedQuestions, store.MaxRounds)
	assert.True(t, s.Narrowed)
}

func TestEngine_OracleOutageStillReachesEstimation(t *testing.T) {
	ctx := context.Background()
	down := llm.NewMockProvider() // every call fails
	repo := newMemRepo()
	e := NewEngine(
		fixedRetriever{candidates: abc},
		question.NewGenerator(down, logger.NewNopLogger()),
		weighting.NewAdjuster(down, logger.NewNopLogger()),
		repo,
		lock.NewLocalLocker(),
		logger.NewNopLogger(),
	)

	res, err := e.Start(ctx, StartInput{Symptom: "noise"})
	require.NoError(t, err)
	assert.Equal(t, question.Fallbacks[0], res.Question)

	res, err = e.Answer(ctx, res.SessionID, "a1")
	require.NoError(t, err)
	assert.Equal(t, question.Fallbacks[1], res.Question)

	res, err = e.Answer(ctx, res.SessionID, "a2")
	require.NoError(t, err)
	assert.Equal(t, question.Fallbacks[2], res.Question)

	res, err = e.Answer(ctx, res.SessionID, "a3")
	require.NoError(t, err)
	assert.Equal(t, store.StageEstimation, res.Stage)
	assert.Equal(t, []string{"A", "B", "C"}, problemIDs(res.TopProblems))

	s, _ := repo.Get(ctx, res.SessionID)
	assert.Equal(t, question.Fallbacks[:], s.AskedQuestions)
	assert.Equal(t, 0.9, s.Weights["A"])
}
