package dto

import "vehicle-diagnosis-be/internal/entity"

type ProblemResponse struct {
	ProblemId               string   `json:"problem_id"`
	ProblemName             string   `json:"problem_name"`
	Descriptions            []string `json:"detailed_description"`
	LabourCategory          string   `json:"labour_category"`
	EstimatedLabourHours    float64  `json:"estimated_labour_hours"`
	EstimatedServiceMinutes int      `json:"estimated_service_time_minutes"`
	PartsNeeded             []string `json:"parts_needed"`
}

type ProblemSearchQuery struct {
	Query string `query:"query" validate:"required"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

type DealershipResponse struct {
	DealershipId string          `json:"dealership_id"`
	Name         string          `json:"name"`
	Location     entity.Location `json:"location"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	Rating       float64         `json:"rating"`
}

type LabourResponse struct {
	LabourId              string  `json:"labour_id"`
	DealershipId          string  `json:"dealership_id"`
	Name                  string  `json:"name"`
	Category              string  `json:"category"`
	HourlyRate            float64 `json:"hourly_rate"`
	Available             bool    `json:"available"`
	EtaIfUnavailableHours int     `json:"eta_if_unavailable_hours"`
}

type PartResponse struct {
	PartId                string  `json:"part_id"`
	DealershipId          string  `json:"dealership_id"`
	Name                  string  `json:"name"`
	Cost                  float64 `json:"cost"`
	InStock               bool    `json:"in_stock"`
	EtaIfNotAvailableDays int     `json:"eta_if_not_available_days"`
}

type VehicleResponse struct {
	VehicleId          string `json:"vehicle_id"`
	CustomerId         string `json:"customer_id"`
	Model              string `json:"model"`
	RegistrationNumber string `json:"registration_number"`
	Year               int    `json:"year"`
	Color              string `json:"color"`
	AgeMonths          int    `json:"vehicle_age_months"`
}

type HealthResponse struct {
	Status           string `json:"status"`
	IndexInitialized bool   `json:"index_initialized"`
	IndexedProblems  int    `json:"indexed_problems"`
}

type ReindexResponse struct {
	Queued bool `json:"queued"`
}

// PublishReindexMessage is the payload of a catalog reindex job
type PublishReindexMessage struct {
	RequestedAt string `json:"requested_at"`
}
