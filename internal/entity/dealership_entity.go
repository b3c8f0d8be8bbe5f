package entity

type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type Dealership struct {
	Id       string
	Name     string
	Location Location
	Phone    string
	Email    string
	Rating   float64
}

type Labour struct {
	Id                    string
	DealershipId          string
	Name                  string
	Category              string
	HourlyRate            float64
	Available             bool
	EtaIfUnavailableHours int
}

type Bay struct {
	Id           string
	DealershipId string
	Name         string
	Available    bool
}

// Part is one dealership's stock line for a catalog part
type Part struct {
	Id                    string
	PartId                string
	DealershipId          string
	Name                  string
	Cost                  float64
	InStock               bool
	EtaIfNotAvailableDays int
}

type InsuranceRule struct {
	Id                  string
	PartId              string
	MaxVehicleAgeMonths int
	DiscountPercentage  float64
}
