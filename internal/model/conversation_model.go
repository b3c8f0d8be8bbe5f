package model

import (
	"time"

	"vehicle-diagnosis-be/pkg/store"

	"gorm.io/datatypes"
)

// Conversation is the durable form of a diagnosis session
type Conversation struct {
	Id              string                                 `gorm:"type:varchar(64);primaryKey"`
	CustomerId      string                                 `gorm:"type:varchar(64);index"`
	VehicleId       string                                 `gorm:"type:varchar(64)"`
	Symptom         string                                 `gorm:"type:text"`
	Candidates      datatypes.JSONSlice[store.Candidate]   `gorm:"type:jsonb"`
	Weights         datatypes.JSONType[map[string]float64] `gorm:"type:jsonb"`
	AskedQuestions  datatypes.JSONSlice[string]            `gorm:"type:jsonb"`
	Answers         datatypes.JSONSlice[string]            `gorm:"type:jsonb"`
	PendingQuestion string                                 `gorm:"type:text"`
	Round           int                                    `gorm:"not null;default:0"`
	Shortlist       datatypes.JSONSlice[store.Candidate]   `gorm:"type:jsonb"`
	Narrowed        bool                                   `gorm:"not null;default:false"`
	CreatedAt       time.Time                              `gorm:"autoCreateTime"`
	UpdatedAt       time.Time                              `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}
