package service

import (
	"context"
	"fmt"

	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/repository/specification"
	"vehicle-diagnosis-be/internal/repository/unitofwork"
	"vehicle-diagnosis-be/pkg/estimate"
)

// quote is one problem priced at one dealership for one vehicle
type quote struct {
	Estimate estimate.Estimate
	Warranty estimate.Warranty
}

// pricer loads dealership capacity and warranty rules and prices problems against them
type pricer struct {
	uow unitofwork.UnitOfWork
}

func (p pricer) dealer(ctx context.Context, dealershipId string, partIDs []string) (estimate.Dealer, error) {
	labour, err := p.uow.LabourRepository().FindAll(ctx, specification.ByDealership{DealershipID: dealershipId})
	if err != nil {
		return estimate.Dealer{}, fmt.Errorf("load labour: %w", err)
	}
	bays, err := p.uow.BayRepository().FindAll(ctx, specification.ByDealership{DealershipID: dealershipId})
	if err != nil {
		return estimate.Dealer{}, fmt.Errorf("load bays: %w", err)
	}

	var parts []*entity.Part
	if len(partIDs) > 0 {
		parts, err = p.uow.PartRepository().FindAll(ctx,
			specification.ByDealership{DealershipID: dealershipId},
			specification.ByPartIDs{PartIDs: partIDs},
		)
		if err != nil {
			return estimate.Dealer{}, fmt.Errorf("load parts: %w", err)
		}
	}

	d := estimate.Dealer{Parts: make(map[string]estimate.Part, len(parts))}
	for _, l := range labour {
		d.Labour = append(d.Labour, estimate.Labour{
			Category:              l.Category,
			HourlyRate:            l.HourlyRate,
			Available:             l.Available,
			ETAIfUnavailableHours: l.EtaIfUnavailableHours,
		})
	}
	for _, b := range bays {
		d.Bays = append(d.Bays, estimate.Bay{Available: b.Available})
	}
	for _, part := range parts {
		d.Parts[part.PartId] = estimate.Part{
			PartID:  part.PartId,
			Cost:    part.Cost,
			InStock: part.InStock,
			ETADays: part.EtaIfNotAvailableDays,
		}
	}
	return d, nil
}

func (p pricer) rules(ctx context.Context, partIDs []string) ([]estimate.Rule, error) {
	if len(partIDs) == 0 {
		return nil, nil
	}
	rules, err := p.uow.InsuranceRuleRepository().FindAll(ctx, specification.ByPartIDs{PartIDs: partIDs})
	if err != nil {
		return nil, fmt.Errorf("load insurance rules: %w", err)
	}
	out := make([]estimate.Rule, len(rules))
	for i, r := range rules {
		out[i] = estimate.Rule{
			PartID:              r.PartId,
			MaxVehicleAgeMonths: r.MaxVehicleAgeMonths,
			DiscountPercentage:  r.DiscountPercentage,
		}
	}
	return out, nil
}

// Quote prices a problem at a dealership; the warranty is only computed for serviceable jobs
func (p pricer) Quote(ctx context.Context, problem *entity.Problem, dealershipId string, vehicleAgeMonths int) (quote, error) {
	dealer, err := p.dealer(ctx, dealershipId, problem.PartsNeeded)
	if err != nil {
		return quote{}, err
	}

	est := estimate.Calculate(estimate.Job{
		LabourCategory: problem.LabourCategory,
		LabourHours:    problem.EstimatedLabourHours,
		ServiceMinutes: problem.EstimatedServiceMinutes,
		PartIDs:        problem.PartsNeeded,
	}, dealer)
	if !est.Serviceable {
		return quote{Estimate: est}, nil
	}

	rules, err := p.rules(ctx, problem.PartsNeeded)
	if err != nil {
		return quote{}, err
	}
	w := estimate.ApplyWarranty(vehicleAgeMonths, problem.PartsNeeded, dealer.Parts, rules, est.EstimatedCost)
	return quote{Estimate: est, Warranty: w}, nil
}
