package entity

import "time"

const (
	ServiceStatusRequested  = "Requested"
	ServiceStatusAccepted   = "Accepted"
	ServiceStatusInProgress = "In Progress"
	ServiceStatusCompleted  = "Completed"
	ServiceStatusCancelled  = "Cancelled"
)

var ServiceStatuses = []string{
	ServiceStatusRequested,
	ServiceStatusAccepted,
	ServiceStatusInProgress,
	ServiceStatusCompleted,
	ServiceStatusCancelled,
}

// ServiceProblem is a shortlisted problem priced at the booked dealership
type ServiceProblem struct {
	ProblemId            string  `json:"problem_id"`
	ProblemName          string  `json:"problem_name"`
	EstimatedCost        float64 `json:"estimated_cost"`
	EstimatedTimeMinutes int     `json:"estimated_time_minutes"`
	Discount             float64 `json:"discount"`
}

type SelectedProblem struct {
	ProblemId   string `json:"problem_id"`
	ProblemName string `json:"problem_name"`
	Description string `json:"description"`
}

type ServiceRequest struct {
	Id               string
	CustomerId       string
	VehicleId        string
	DealershipId     string
	SessionId        string
	Problems         []ServiceProblem
	SelectedProblem  *SelectedProblem
	AllocatedLabour  string
	AllocatedParts   []string
	FinalCost        float64
	FinalTimeMinutes int
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
