// Package estimate prices a catalog problem at one dealership.
package estimate

import "math"

const (
	ReasonNoLabour = "No labour available"
	ReasonNoBay    = "No bay available"
)

// Job is what a problem demands from a dealership
type Job struct {
	LabourCategory string
	LabourHours    float64
	ServiceMinutes int
	PartIDs        []string
}

type Labour struct {
	Category              string
	HourlyRate            float64
	Available             bool
	ETAIfUnavailableHours int
}

type Part struct {
	PartID  string
	Cost    float64
	InStock bool
	ETADays int
}

type Bay struct {
	Available bool
}

// Dealer is one dealership's capacity and stock
type Dealer struct {
	Labour []Labour
	Bays   []Bay
	Parts  map[string]Part
}

type Estimate struct {
	Serviceable          bool    `json:"serviceable"`
	Reason               string  `json:"reason,omitempty"`
	EstimatedCost        float64 `json:"estimated_cost"`
	PartsCost            float64 `json:"parts_cost"`
	LabourCost           float64 `json:"labour_cost"`
	EstimatedTimeMinutes int     `json:"estimated_time_minutes"`
	PartsAvailable       bool    `json:"parts_available"`
}

// Calculate prices a job. Parts the dealer does not list are skipped; the ETA grows by
// the labour delay when staff are busy and by the slowest missing part.
func Calculate(job Job, dealer Dealer) Estimate {
	labour, ok := findLabour(dealer.Labour, job.LabourCategory)
	if !ok {
		return Estimate{Reason: ReasonNoLabour}
	}
	if !hasFreeBay(dealer.Bays) {
		return Estimate{Reason: ReasonNoBay}
	}

	var partsCost float64
	partsAvailable := true
	maxPartDays := 0
	for _, id := range job.PartIDs {
		part, ok := dealer.Parts[id]
		if !ok {
			continue
		}
		partsCost += part.Cost
		if !part.InStock {
			partsAvailable = false
			if part.ETADays > maxPartDays {
				maxPartDays = part.ETADays
			}
		}
	}

	labourCost := job.LabourHours * labour.HourlyRate

	minutes := job.ServiceMinutes
	if !labour.Available {
		minutes += labour.ETAIfUnavailableHours * 60
	}
	if !partsAvailable {
		minutes += maxPartDays * 24 * 60
	}

	return Estimate{
		Serviceable:          true,
		EstimatedCost:        Round2(partsCost + labourCost),
		PartsCost:            Round2(partsCost),
		LabourCost:           Round2(labourCost),
		EstimatedTimeMinutes: minutes,
		PartsAvailable:       partsAvailable,
	}
}

func findLabour(labour []Labour, category string) (Labour, bool) {
	for _, l := range labour {
		if l.Category == category {
			return l, true
		}
	}
	return Labour{}, false
}

func hasFreeBay(bays []Bay) bool {
	for _, b := range bays {
		if b.Available {
			return true
		}
	}
	return false
}

// Round2 rounds half away from zero to two decimals
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
