package service

import (
	"context"
	"fmt"
	"os"

	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/repository/unitofwork"

	"gopkg.in/yaml.v3"
)

// CatalogSeed is the on-disk layout of the seed file
type CatalogSeed struct {
	Problems []struct {
		Id                      string   `yaml:"problem_id"`
		Name                    string   `yaml:"problem_name"`
		Descriptions            []string `yaml:"detailed_description"`
		LabourCategory          string   `yaml:"labour_category"`
		EstimatedLabourHours    float64  `yaml:"estimated_labour_hours"`
		EstimatedServiceMinutes int      `yaml:"estimated_service_time_minutes"`
		PartsNeeded             []string `yaml:"parts_needed"`
	} `yaml:"problems"`
	Dealerships []struct {
		Id       string          `yaml:"dealership_id"`
		Name     string          `yaml:"name"`
		Location entity.Location `yaml:"location"`
		Phone    string          `yaml:"phone"`
		Email    string          `yaml:"email"`
		Rating   float64         `yaml:"rating"`
		Labour   []struct {
			Id                    string  `yaml:"labour_id"`
			Name                  string  `yaml:"name"`
			Category              string  `yaml:"category"`
			HourlyRate            float64 `yaml:"hourly_rate"`
			Available             bool    `yaml:"available"`
			EtaIfUnavailableHours int     `yaml:"eta_if_unavailable_hours"`
		} `yaml:"labour"`
		Bays []struct {
			Id        string `yaml:"bay_id"`
			Name      string `yaml:"name"`
			Available bool   `yaml:"available"`
		} `yaml:"bays"`
		Parts []struct {
			PartId                string  `yaml:"part_id"`
			Name                  string  `yaml:"name"`
			Cost                  float64 `yaml:"cost"`
			InStock               bool    `yaml:"in_stock"`
			EtaIfNotAvailableDays int     `yaml:"eta_if_not_available_days"`
		} `yaml:"parts"`
	} `yaml:"dealerships"`
	InsuranceRules []struct {
		Id                  string  `yaml:"rule_id"`
		PartId              string  `yaml:"part_id"`
		MaxVehicleAgeMonths int     `yaml:"max_vehicle_age_months"`
		DiscountPercentage  float64 `yaml:"discount_percentage"`
	} `yaml:"insurance_rules"`
	Customers []struct {
		Id       string `yaml:"customer_id"`
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Phone    string `yaml:"phone"`
		Vehicles []struct {
			Id                 string `yaml:"vehicle_id"`
			Model              string `yaml:"model"`
			RegistrationNumber string `yaml:"registration_number"`
			Year               int    `yaml:"year"`
			Color              string `yaml:"color"`
			AgeMonths          int    `yaml:"vehicle_age_months"`
		} `yaml:"vehicles"`
	} `yaml:"customers"`
}

// SeedCounts reports how many rows of each kind were inserted
type SeedCounts struct {
	Problems       int
	Dealerships    int
	Labour         int
	Bays           int
	Parts          int
	InsuranceRules int
	Customers      int
	Vehicles       int
}

func LoadCatalogSeed(path string) (*CatalogSeed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed CatalogSeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &seed, nil
}

type ISeedService interface {
	Seed(ctx context.Context, seed *CatalogSeed) (*SeedCounts, error)
}

type seedService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSeedService(uowFactory unitofwork.RepositoryFactory) ISeedService {
	return &seedService{uowFactory: uowFactory}
}

// Seed inserts the whole file in one transaction; any failure leaves the database untouched
func (ss *seedService) Seed(ctx context.Context, seed *CatalogSeed) (*SeedCounts, error) {
	uow := ss.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	counts, err := ss.insert(ctx, uow, seed)
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (ss *seedService) insert(ctx context.Context, uow unitofwork.UnitOfWork, seed *CatalogSeed) (*SeedCounts, error) {
	counts := &SeedCounts{}

	for _, p := range seed.Problems {
		err := uow.ProblemRepository().Create(ctx, &entity.Problem{
			Id:                      p.Id,
			Name:                    p.Name,
			Descriptions:            p.Descriptions,
			LabourCategory:          p.LabourCategory,
			EstimatedLabourHours:    p.EstimatedLabourHours,
			EstimatedServiceMinutes: p.EstimatedServiceMinutes,
			PartsNeeded:             p.PartsNeeded,
		})
		if err != nil {
			return nil, fmt.Errorf("problem %s: %w", p.Id, err)
		}
		counts.Problems++
	}

	for _, d := range seed.Dealerships {
		err := uow.DealershipRepository().Create(ctx, &entity.Dealership{
			Id:       d.Id,
			Name:     d.Name,
			Location: d.Location,
			Phone:    d.Phone,
			Email:    d.Email,
			Rating:   d.Rating,
		})
		if err != nil {
			return nil, fmt.Errorf("dealership %s: %w", d.Id, err)
		}
		counts.Dealerships++

		for _, l := range d.Labour {
			err := uow.LabourRepository().Create(ctx, &entity.Labour{
				Id:                    l.Id,
				DealershipId:          d.Id,
				Name:                  l.Name,
				Category:              l.Category,
				HourlyRate:            l.HourlyRate,
				Available:             l.Available,
				EtaIfUnavailableHours: l.EtaIfUnavailableHours,
			})
			if err != nil {
				return nil, fmt.Errorf("labour %s: %w", l.Id, err)
			}
			counts.Labour++
		}
		for _, b := range d.Bays {
			err := uow.BayRepository().Create(ctx, &entity.Bay{
				Id:           b.Id,
				DealershipId: d.Id,
				Name:         b.Name,
				Available:    b.Available,
			})
			if err != nil {
				return nil, fmt.Errorf("bay %s: %w", b.Id, err)
			}
			counts.Bays++
		}
		for _, p := range d.Parts {
			err := uow.PartRepository().Create(ctx, &entity.Part{
				PartId:                p.PartId,
				DealershipId:          d.Id,
				Name:                  p.Name,
				Cost:                  p.Cost,
				InStock:               p.InStock,
				EtaIfNotAvailableDays: p.EtaIfNotAvailableDays,
			})
			if err != nil {
				return nil, fmt.Errorf("part %s at %s: %w", p.PartId, d.Id, err)
			}
			counts.Parts++
		}
	}

	for _, r := range seed.InsuranceRules {
		err := uow.InsuranceRuleRepository().Create(ctx, &entity.InsuranceRule{
			Id:                  r.Id,
			PartId:              r.PartId,
			MaxVehicleAgeMonths: r.MaxVehicleAgeMonths,
			DiscountPercentage:  r.DiscountPercentage,
		})
		if err != nil {
			return nil, fmt.Errorf("insurance rule %s: %w", r.Id, err)
		}
		counts.InsuranceRules++
	}

	for _, c := range seed.Customers {
		err := uow.CustomerRepository().Create(ctx, &entity.Customer{
			Id:    c.Id,
			Name:  c.Name,
			Email: c.Email,
			Phone: c.Phone,
		})
		if err != nil {
			return nil, fmt.Errorf("customer %s: %w", c.Id, err)
		}
		counts.Customers++

		for _, v := range c.Vehicles {
			err := uow.VehicleRepository().Create(ctx, &entity.Vehicle{
				Id:                 v.Id,
				CustomerId:         c.Id,
				Model:              v.Model,
				RegistrationNumber: v.RegistrationNumber,
				Year:               v.Year,
				Color:              v.Color,
				AgeMonths:          v.AgeMonths,
			})
			if err != nil {
				return nil, fmt.Errorf("vehicle %s: %w", v.Id, err)
			}
			counts.Vehicles++
		}
	}

	return counts, nil
}
