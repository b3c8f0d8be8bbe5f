package service

import (
	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/pkg/store"
)

// newFixture seeds two dealerships with different capacity for three brake and electrical problems.
//
// DEALER_001 stocks every part but has the rotor on back order and its electrician is busy;
// DEALER_002 has no electrician and does not list rotors.
func newFixture() *fakeDB {
	return &fakeDB{
		problems: []*entity.Problem{
			{Id: "SP001", Name: "Worn brake pads", Descriptions: []string{"Squealing when braking", "Longer stopping distance"},
				LabourCategory: "Brakes", EstimatedLabourHours: 1.5, EstimatedServiceMinutes: 90, PartsNeeded: []string{"PAD"}},
			{Id: "SP002", Name: "Warped brake rotor", Descriptions: []string{"Pedal pulses under braking"},
				LabourCategory: "Brakes", EstimatedLabourHours: 2, EstimatedServiceMinutes: 120, PartsNeeded: []string{"ROTOR", "PAD"}},
			{Id: "SP003", Name: "Weak battery", Descriptions: []string{"Slow crank on cold mornings"},
				LabourCategory: "Electrical", EstimatedLabourHours: 0.5, EstimatedServiceMinutes: 30, PartsNeeded: []string{"BATT"}},
		},
		dealerships: []*entity.Dealership{
			{Id: "DEALER_001", Name: "AutoCare Mumbai Central", Location: entity.Location{Address: "Mumbai Central", Lat: 18.97, Lng: 72.82}, Rating: 4.5},
			{Id: "DEALER_002", Name: "Speedy Service Andheri", Location: entity.Location{Address: "Andheri East", Lat: 19.11, Lng: 72.87}, Rating: 4.1},
		},
		labour: []*entity.Labour{
			{Id: "L1", DealershipId: "DEALER_001", Category: "Brakes", HourlyRate: 40, Available: true},
			{Id: "L2", DealershipId: "DEALER_001", Category: "Electrical", HourlyRate: 30, Available: false, EtaIfUnavailableHours: 4},
			{Id: "L3", DealershipId: "DEALER_002", Category: "Brakes", HourlyRate: 50, Available: true},
		},
		bays: []*entity.Bay{
			{Id: "B1", DealershipId: "DEALER_001", Available: true},
			{Id: "B2", DealershipId: "DEALER_002", Available: false},
			{Id: "B3", DealershipId: "DEALER_002", Available: true},
		},
		parts: []*entity.Part{
			{Id: "DEALER_001:PAD", PartId: "PAD", DealershipId: "DEALER_001", Name: "Brake pad set", Cost: 45.25, InStock: true},
			{Id: "DEALER_001:ROTOR", PartId: "ROTOR", DealershipId: "DEALER_001", Name: "Rotor", Cost: 80, InStock: false, EtaIfNotAvailableDays: 2},
			{Id: "DEALER_001:BATT", PartId: "BATT", DealershipId: "DEALER_001", Name: "Battery", Cost: 100, InStock: true},
			{Id: "DEALER_002:PAD", PartId: "PAD", DealershipId: "DEALER_002", Name: "Brake pad set", Cost: 50, InStock: true},
		},
		rules: []*entity.InsuranceRule{
			{Id: "R1", PartId: "PAD", MaxVehicleAgeMonths: 24, DiscountPercentage: 20},
		},
		customers: []*entity.Customer{
			{Id: "CUST_001", Name: "Asha", Email: "asha@example.com", Phone: "+91-900000001"},
		},
		vehicles: []*entity.Vehicle{
			{Id: "VEH_001", CustomerId: "CUST_001", Model: "Swift", RegistrationNumber: "MH01AB1234", Year: 2024, Color: "Red", AgeMonths: 12},
		},
	}
}

func narrowedSession() *store.Session {
	s := store.NewSession("sess-1", []store.Candidate{
		{ProblemID: "SP001", ProblemName: "Worn brake pads", Score: 0.9},
		{ProblemID: "SP002", ProblemName: "Warped brake rotor", Score: 0.8},
		{ProblemID: "SP003", ProblemName: "Weak battery", Score: 0.4},
	})
	s.CustomerID = "CUST_001"
	s.VehicleID = "VEH_001"
	s.Round = store.MaxRounds
	s.Narrowed = true
	s.Shortlist = []store.Candidate{s.Candidates[1], s.Candidates[0], s.Candidates[2]}
	return s
}
