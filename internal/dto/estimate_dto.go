package dto

import "vehicle-diagnosis-be/internal/entity"

type DealerQuote struct {
	DealershipId         string          `json:"dealership_id"`
	Name                 string          `json:"name"`
	Location             entity.Location `json:"location"`
	Rating               float64         `json:"rating"`
	EstimatedCost        float64         `json:"estimated_cost"`
	PartsCost            float64         `json:"parts_cost"`
	LabourCost           float64         `json:"labour_cost"`
	Discount             float64         `json:"discount"`
	FinalCost            float64         `json:"final_cost"`
	EstimatedTimeMinutes int             `json:"estimated_time_minutes"`
	PartsAvailable       bool            `json:"parts_available"`
}

type ProblemEstimate struct {
	ProblemId   string        `json:"problem_id"`
	ProblemName string        `json:"problem_name"`
	Description string        `json:"description"`
	Dealerships []DealerQuote `json:"dealerships"`
}

type EstimateResponse struct {
	SessionId string            `json:"session_id"`
	VehicleId string            `json:"vehicle_id"`
	Estimates []ProblemEstimate `json:"estimates"`
}
