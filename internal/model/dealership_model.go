package model

import (
	"time"

	"vehicle-diagnosis-be/internal/entity"

	"gorm.io/datatypes"
)

type Dealership struct {
	Id        string                              `gorm:"type:varchar(64);primaryKey"`
	Name      string                              `gorm:"type:varchar(255);not null"`
	Location  datatypes.JSONType[entity.Location] `gorm:"type:jsonb"`
	Phone     string                              `gorm:"type:varchar(50)"`
	Email     string                              `gorm:"type:varchar(255)"`
	Rating    float64                             `gorm:"default:0"`
	CreatedAt time.Time                           `gorm:"autoCreateTime"`
	UpdatedAt time.Time                           `gorm:"autoUpdateTime"`
}

func (Dealership) TableName() string {
	return "dealerships"
}

type Labour struct {
	Id                    string  `gorm:"type:varchar(64);primaryKey"`
	DealershipId          string  `gorm:"type:varchar(64);not null;index:idx_labour_dealer_category"`
	Name                  string  `gorm:"type:varchar(255)"`
	Category              string  `gorm:"type:varchar(100);not null;index:idx_labour_dealer_category"`
	HourlyRate            float64 `gorm:"not null"`
	Available             bool    `gorm:"not null;default:true"`
	EtaIfUnavailableHours int     `gorm:"not null;default:0"`
}

func (Labour) TableName() string {
	return "labour"
}

type Bay struct {
	Id           string `gorm:"type:varchar(64);primaryKey"`
	DealershipId string `gorm:"type:varchar(64);not null;index"`
	Name         string `gorm:"type:varchar(255)"`
	Available    bool   `gorm:"not null;default:true"`
}

func (Bay) TableName() string {
	return "bays"
}

type Part struct {
	Id                    string  `gorm:"type:varchar(128);primaryKey"`
	PartId                string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_parts_dealer_part"`
	DealershipId          string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_parts_dealer_part"`
	Name                  string  `gorm:"type:varchar(255)"`
	Cost                  float64 `gorm:"not null"`
	InStock               bool    `gorm:"not null;default:true"`
	EtaIfNotAvailableDays int     `gorm:"not null;default:0"`
}

func (Part) TableName() string {
	return "parts"
}

type InsuranceRule struct {
	Id                  string  `gorm:"type:varchar(64);primaryKey"`
	PartId              string  `gorm:"type:varchar(64);not null;index"`
	MaxVehicleAgeMonths int     `gorm:"not null"`
	DiscountPercentage  float64 `gorm:"not null"`
}

func (InsuranceRule) TableName() string {
	return "insurance_rules"
}
