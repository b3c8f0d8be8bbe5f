package model

import (
	"time"

	"vehicle-diagnosis-be/internal/entity"

	"gorm.io/datatypes"
)

type ServiceRequest struct {
	Id               string                                      `gorm:"type:varchar(64);primaryKey"`
	CustomerId       string                                      `gorm:"type:varchar(64);not null;index"`
	VehicleId        string                                      `gorm:"type:varchar(64);not null"`
	DealershipId     string                                      `gorm:"type:varchar(64);not null;index"`
	SessionId        string                                      `gorm:"type:varchar(64);index"`
	Problems         datatypes.JSONSlice[entity.ServiceProblem]  `gorm:"type:jsonb"`
	SelectedProblem  *datatypes.JSONType[entity.SelectedProblem] `gorm:"type:jsonb"`
	AllocatedLabour  string                                      `gorm:"type:varchar(64)"`
	AllocatedParts   datatypes.JSONSlice[string]                 `gorm:"type:jsonb"`
	FinalCost        float64                                     `gorm:"not null;default:0"`
	FinalTimeMinutes int                                         `gorm:"not null;default:0"`
	Status           string                                      `gorm:"type:varchar(32);not null;index"`
	CreatedAt        time.Time                                   `gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time                                   `gorm:"autoUpdateTime"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}
