package mapper

import (
	"vehicle-diagnosis-be/internal/model"
	"vehicle-diagnosis-be/pkg/store"

	"gorm.io/datatypes"
)

// ConversationMapper converts diagnosis sessions to and from their table rows
type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToSession(c *model.Conversation) *store.Session {
	if c == nil {
		return nil
	}
	return &store.Session{
		ID:              c.Id,
		CustomerID:      c.CustomerId,
		VehicleID:       c.VehicleId,
		Symptom:         c.Symptom,
		Candidates:      []store.Candidate(c.Candidates),
		Weights:         c.Weights.Data(),
		AskedQuestions:  []string(c.AskedQuestions),
		Answers:         []string(c.Answers),
		PendingQuestion: c.PendingQuestion,
		Round:           c.Round,
		Shortlist:       []store.Candidate(c.Shortlist),
		Narrowed:        c.Narrowed,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (m *ConversationMapper) ToModel(s *store.Session) *model.Conversation {
	if s == nil {
		return nil
	}
	return &model.Conversation{
		Id:              s.ID,
		CustomerId:      s.CustomerID,
		VehicleId:       s.VehicleID,
		Symptom:         s.Symptom,
		Candidates:      s.Candidates,
		Weights:         datatypes.NewJSONType(s.Weights),
		AskedQuestions:  s.AskedQuestions,
		Answers:         s.Answers,
		PendingQuestion: s.PendingQuestion,
		Round:           s.Round,
		Shortlist:       s.Shortlist,
		Narrowed:        s.Narrowed,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
