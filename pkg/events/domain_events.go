package events

import "time"

const (
	TypeDiagnosisNarrowed = "diagnosis.narrowed"
	TypeBookingCreated    = "booking.created"
	TypeServiceUpdated    = "service.updated"
)

// NarrowedProblem is the slice of a shortlist entry carried on the bus
type NarrowedProblem struct {
	ProblemID string  `json:"problem_id"`
	Weight    float64 `json:"weight"`
}

func DiagnosisNarrowed(sessionID, customerID, vehicleID string, shortlist []NarrowedProblem) Event {
	return BaseEvent{
		Type: TypeDiagnosisNarrowed,
		Data: map[string]interface{}{
			"session_id":  sessionID,
			"customer_id": customerID,
			"vehicle_id":  vehicleID,
			"shortlist":   shortlist,
		},
		OccurredAt: time.Now().UTC(),
	}
}

func BookingCreated(serviceRequestID, customerID, dealershipID string, finalCost float64) Event {
	return BaseEvent{
		Type: TypeBookingCreated,
		Data: map[string]interface{}{
			"service_request_id": serviceRequestID,
			"customer_id":        customerID,
			"dealership_id":      dealershipID,
			"final_cost":         finalCost,
		},
		OccurredAt: time.Now().UTC(),
	}
}

func ServiceUpdated(serviceRequestID, dealershipID, status string) Event {
	return BaseEvent{
		Type: TypeServiceUpdated,
		Data: map[string]interface{}{
			"service_request_id": serviceRequestID,
			"dealership_id":      dealershipID,
			"status":             status,
		},
		OccurredAt: time.Now().UTC(),
	}
}
