// Package engine drives a diagnosis session from the first symptom to a ranked shortlist.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vehicle-diagnosis-be/internal/pkg/logger"
	"vehicle-diagnosis-be/pkg/diagnosis/ranking"
	"vehicle-diagnosis-be/pkg/diagnosis/weighting"
	"vehicle-diagnosis-be/pkg/lock"
	"vehicle-diagnosis-be/pkg/store"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("diagnosis session not found")
	ErrIndexUnavailable = errors.New("similarity index unavailable")
)

const NoMatchMessage = "Could not identify any potential problems. Please provide more details."

// SessionRepository persists sessions. Get returns (nil, nil) when absent.
type SessionRepository interface {
	Create(ctx context.Context, s *store.Session) error
	Get(ctx context.Context, id string) (*store.Session, error)
	Update(ctx context.Context, s *store.Session) error
}

// Retriever finds the nearest catalog problems for a symptom
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]store.Candidate, error)
}

// QuestionSource produces the next clarification question and never fails
type QuestionSource interface {
	Next(ctx context.Context, candidates []store.Candidate, asked []string, number int) string
}

// WeightSource proposes weight deltas for one answered question
type WeightSource interface {
	Adjust(ctx context.Context, candidates []store.Candidate, question, answer string) weighting.Outcome
}

// NarrowedHook is notified once per session when the shortlist is first stored
type NarrowedHook func(ctx context.Context, s *store.Session)

type StartInput struct {
	CustomerID string
	VehicleID  string
	Symptom    string
}

// Result is the client-facing view of a session after one operation
type Result struct {
	SessionID      string
	Stage          store.Stage
	Question       string
	QuestionNumber int
	TotalQuestions int
	Candidates     []string
	TopProblems    []store.Candidate
	Message        string
}

type Engine struct {
	index     Retriever
	questions QuestionSource
	weights   WeightSource
	repo      SessionRepository
	locker    lock.Locker
	logger    logger.ILogger
	onNarrow  NarrowedHook
	now       func() time.Time
}

func NewEngine(
	index Retriever,
	questions QuestionSource,
	weights WeightSource,
	repo SessionRepository,
	locker lock.Locker,
	logger logger.ILogger,
) *Engine {
	return &Engine{
		index:     index,
		questions: questions,
		weights:   weights,
		repo:      repo,
		locker:    locker,
		logger:    logger,
		now:       time.Now,
	}
}

// OnNarrowed registers a hook fired after a session's shortlist is persisted
func (e *Engine) OnNarrowed(hook NarrowedHook) {
	e.onNarrow = hook
}

// Start retrieves candidates for a new symptom and asks the first question.
// No match yields the error stage and persists nothing.
func (e *Engine) Start(ctx context.Context, in StartInput) (*Result, error) {
	candidates, err := e.index.Retrieve(ctx, in.Symptom, store.TopK)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}

	id := uuid.NewString()
	if len(candidates) == 0 {
		e.logger.Info("DIAGNOSIS", "No candidate problems for symptom", map[string]interface{}{
			"session_id": id,
		})
		return &Result{SessionID: id, Stage: store.StageError, Message: NoMatchMessage}, nil
	}

	s := store.NewSession(id, candidates)
	s.CustomerID = in.CustomerID
	s.VehicleID = in.VehicleID
	s.Symptom = in.Symptom
	s.PendingQuestion = e.questions.Next(ctx, s.OracleContext(), s.AskedQuestions, s.NextQuestionNumber())

	if err := e.repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	e.logger.Info("DIAGNOSIS", "Session started", map[string]interface{}{
		"session_id": s.ID,
		"candidates": len(candidates),
	})

	res := clarification(s)
	res.Candidates = make([]string, len(candidates))
	for i, c := range candidates {
		res.Candidates[i] = c.ProblemName
	}
	return res, nil
}

// Answer records one answer, adjusts weights and either asks the next question
// or narrows to the shortlist. Terminal sessions are returned untouched.
func (e *Engine) Answer(ctx context.Context, id, answer string) (*Result, error) {
	release, err := e.locker.Lock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock session %s: %w", id, err)
	}
	defer release()

	s, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.IsTerminal() {
		return e.narrow(ctx, s)
	}

	question := s.PendingQuestion
	if question == "" {
		question = e.questions.Next(ctx, s.OracleContext(), s.AskedQuestions, s.NextQuestionNumber())
	}

	outcome := e.weights.Adjust(ctx, s.OracleContext(), question, answer)
	if outcome.OK {
		if ignored := weighting.Apply(s, outcome.Deltas); len(ignored) > 0 {
			e.logger.Warn("DIAGNOSIS", "Discarded deltas for unknown problems", map[string]interface{}{
				"session_id": s.ID,
				"ignored":    ignored,
			})
		}
	} else {
		e.logger.Warn("DIAGNOSIS", "Weights unchanged this round", map[string]interface{}{
			"session_id": s.ID,
			"reason":     outcome.Reason,
		})
	}

	s.AskedQuestions = append(s.AskedQuestions, question)
	s.Answers = append(s.Answers, answer)
	s.Round++
	s.PendingQuestion = ""

	if s.IsTerminal() {
		return e.narrow(ctx, s)
	}

	s.PendingQuestion = e.questions.Next(ctx, s.OracleContext(), s.AskedQuestions, s.NextQuestionNumber())
	s.UpdatedAt = e.now()
	if err := e.repo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return clarification(s), nil
}

// Status is the re-entry path: it returns the outstanding question or the shortlist,
// narrowing a finished session that has none stored yet
func (e *Engine) Status(ctx context.Context, id string) (*Result, error) {
	release, err := e.locker.Lock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock session %s: %w", id, err)
	}
	defer release()

	s, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.IsTerminal() {
		return e.narrow(ctx, s)
	}

	if s.PendingQuestion == "" {
		s.PendingQuestion = e.questions.Next(ctx, s.OracleContext(), s.AskedQuestions, s.NextQuestionNumber())
		s.UpdatedAt = e.now()
		if err := e.repo.Update(ctx, s); err != nil {
			return nil, fmt.Errorf("update session: %w", err)
		}
	}
	return clarification(s), nil
}

// Get returns a copy of the stored session
func (e *Engine) Get(ctx context.Context, id string) (*store.Session, error) {
	return e.load(ctx, id)
}

func (e *Engine) load(ctx context.Context, id string) (*store.Session, error) {
	s, err := e.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// narrow stores the shortlist the first time and replays it afterwards
func (e *Engine) narrow(ctx context.Context, s *store.Session) (*Result, error) {
	if s.Narrowed {
		return estimation(s), nil
	}

	s.Shortlist = ranking.Shortlist(s)
	s.Narrowed = true
	s.PendingQuestion = ""
	s.UpdatedAt = e.now()
	if err := e.repo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	e.logger.Info("DIAGNOSIS", "Session narrowed", map[string]interface{}{
		"session_id": s.ID,
		"shortlist":  problemIDs(s.Shortlist),
	})

	if e.onNarrow != nil {
		e.onNarrow(ctx, s.Clone())
	}
	return estimation(s), nil
}

func clarification(s *store.Session) *Result {
	return &Result{
		SessionID:      s.ID,
		Stage:          store.StageClarification,
		Question:       s.PendingQuestion,
		QuestionNumber: s.NextQuestionNumber(),
		TotalQuestions: store.MaxRounds,
	}
}

func estimation(s *store.Session) *Result {
	top := make([]store.Candidate, len(s.Shortlist))
	copy(top, s.Shortlist)
	return &Result{
		SessionID:      s.ID,
		Stage:          store.StageEstimation,
		TopProblems:    top,
		TotalQuestions: store.MaxRounds,
	}
}

func problemIDs(cs []store.Candidate) []string {
	ids := make([]string, len(cs))
	for i, c := range cs {
		ids[i] = c.ProblemID
	}
	return ids
}
