package dto

import (
	"time"

	"vehicle-diagnosis-be/internal/entity"
)

type BookingProblem struct {
	ProblemId   string `json:"problem_id" validate:"required"`
	ProblemName string `json:"problem_name"`
}

type CreateBookingRequest struct {
	CustomerId   string `json:"customer_id" validate:"required"`
	VehicleId    string `json:"vehicle_id" validate:"required"`
	DealershipId string `json:"dealership_id" validate:"required"`
	SessionId    string `json:"session_id" validate:"required"`
	// Empty means the session's shortlist
	Problems []BookingProblem `json:"top_problems" validate:"dive"`
}

type CreateBookingResponse struct {
	ServiceRequestId string  `json:"service_request_id"`
	FinalCost        float64 `json:"final_cost"`
	FinalTimeMinutes int     `json:"final_time_minutes"`
	Problems         int     `json:"problems"`
}

type UpdateServiceRequest struct {
	Status            *string  `json:"status" validate:"omitempty,oneof=Requested Accepted 'In Progress' Completed Cancelled"`
	SelectedProblemId *string  `json:"selected_problem_id"`
	AllocatedLabour   *string  `json:"allocated_labour"`
	AllocatedParts    []string `json:"allocated_parts"`
	FinalCost         *float64 `json:"final_cost" validate:"omitempty,gte=0"`
	FinalTimeMinutes  *int     `json:"final_time_minutes" validate:"omitempty,gte=0"`
}

type ServiceRequestResponse struct {
	ServiceRequestId string                  `json:"service_request_id"`
	CustomerId       string                  `json:"customer_id"`
	VehicleId        string                  `json:"vehicle_id"`
	DealershipId     string                  `json:"dealership_id"`
	SessionId        string                  `json:"session_id"`
	Problems         []entity.ServiceProblem `json:"top_problems"`
	SelectedProblem  *entity.SelectedProblem `json:"selected_problem"`
	AllocatedLabour  string                  `json:"allocated_labour"`
	AllocatedParts   []string                `json:"allocated_parts"`
	FinalCost        float64                 `json:"final_cost"`
	FinalTimeMinutes int                     `json:"final_time_minutes"`
	Status           string                  `json:"status"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`

	DealershipName      string           `json:"dealership_name,omitempty"`
	DealershipLocation  *entity.Location `json:"dealership_location,omitempty"`
	CustomerName        string           `json:"customer_name,omitempty"`
	CustomerPhone       string           `json:"customer_phone,omitempty"`
	CustomerEmail       string           `json:"customer_email,omitempty"`
	VehicleModel        string           `json:"vehicle_model,omitempty"`
	VehicleRegistration string           `json:"vehicle_registration,omitempty"`
	VehicleYear         int              `json:"vehicle_year,omitempty"`
	VehicleColor        string           `json:"vehicle_color,omitempty"`
}
