package contract

import "vehicle-diagnosis-be/pkg/diagnosis/engine"

// ConversationRepository persists diagnosis sessions in Postgres
type ConversationRepository interface {
	engine.SessionRepository
}
