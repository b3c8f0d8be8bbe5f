package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Problem struct {
	Id                      string                      `gorm:"type:varchar(64);primaryKey"`
	Name                    string                      `gorm:"type:varchar(255);not null;index"`
	Descriptions            datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	LabourCategory          string                      `gorm:"type:varchar(100);not null;index"`
	EstimatedLabourHours    float64                     `gorm:"not null;default:0"`
	EstimatedServiceMinutes int                         `gorm:"not null;default:0"`
	PartsNeeded             datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt               time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt               time.Time                   `gorm:"autoUpdateTime"`
}

func (Problem) TableName() string {
	return "service_problems"
}

// ProblemEmbedding is one similarity index row; the table is rewritten on every rebuild
type ProblemEmbedding struct {
	ProblemId      string                      `gorm:"type:varchar(64);primaryKey"`
	Name           string                      `gorm:"type:varchar(255);not null"`
	Descriptions   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Position       int                         `gorm:"not null;index"` // catalog order, breaks distance ties
	EmbeddingValue pgvector.Vector             `gorm:"type:vector"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime"`
}

func (ProblemEmbedding) TableName() string {
	return "problem_embeddings"
}
