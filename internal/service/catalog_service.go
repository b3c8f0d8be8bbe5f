package service

import (
	"context"

	"vehicle-diagnosis-be/internal/dto"
	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/repository/specification"
	"vehicle-diagnosis-be/internal/repository/unitofwork"
	"vehicle-diagnosis-be/pkg/diagnosis/retrieval"
)

const (
	defaultSearchLimit = 20
	unfilteredPartsCap = 50
)

type ICatalogService interface {
	Dealerships(ctx context.Context) ([]*dto.DealershipResponse, error)
	SearchProblems(ctx context.Context, query string, limit int) ([]*dto.ProblemResponse, error)
	DealerLabour(ctx context.Context, dealershipId string) ([]*dto.LabourResponse, error)
	DealerParts(ctx context.Context, dealershipId, problemId string) ([]*dto.PartResponse, error)
	CustomerVehicles(ctx context.Context, customerId string) ([]*dto.VehicleResponse, error)
	Health(ctx context.Context) *dto.HealthResponse
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	index      retrieval.Index
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, index retrieval.Index) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		index:      index,
	}
}

func (cs *catalogService) Dealerships(ctx context.Context) ([]*dto.DealershipResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	dealerships, err := uow.DealershipRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DealershipResponse, len(dealerships))
	for i, d := range dealerships {
		result[i] = &dto.DealershipResponse{
			DealershipId: d.Id,
			Name:         d.Name,
			Location:     d.Location,
			Phone:        d.Phone,
			Email:        d.Email,
			Rating:       d.Rating,
		}
	}
	return result, nil
}

func (cs *catalogService) SearchProblems(ctx context.Context, query string, limit int) ([]*dto.ProblemResponse, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	problems, err := uow.ProblemRepository().FindAll(ctx,
		specification.ProblemSearchQuery{Query: query},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProblemResponse, len(problems))
	for i, p := range problems {
		result[i] = toProblemResponse(p)
	}
	return result, nil
}

func (cs *catalogService) DealerLabour(ctx context.Context, dealershipId string) ([]*dto.LabourResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	labour, err := uow.LabourRepository().FindAll(ctx,
		specification.ByDealership{DealershipID: dealershipId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LabourResponse, len(labour))
	for i, l := range labour {
		result[i] = &dto.LabourResponse{
			LabourId:              l.Id,
			DealershipId:          l.DealershipId,
			Name:                  l.Name,
			Category:              l.Category,
			HourlyRate:            l.HourlyRate,
			Available:             l.Available,
			EtaIfUnavailableHours: l.EtaIfUnavailableHours,
		}
	}
	return result, nil
}

// DealerParts lists the parts a problem needs when problemId names a known problem,
// otherwise the first page of the dealership's stock
func (cs *catalogService) DealerParts(ctx context.Context, dealershipId, problemId string) ([]*dto.PartResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByDealership{DealershipID: dealershipId},
		specification.OrderBy{Field: "part_id"},
	}
	filtered := false
	if problemId != "" {
		problem, err := uow.ProblemRepository().FindOne(ctx, specification.ByID{ID: problemId})
		if err != nil {
			return nil, err
		}
		if problem != nil {
			if len(problem.PartsNeeded) == 0 {
				return []*dto.PartResponse{}, nil
			}
			specs = append(specs, specification.ByPartIDs{PartIDs: problem.PartsNeeded})
			filtered = true
		}
	}
	if !filtered {
		specs = append(specs, specification.Pagination{Limit: unfilteredPartsCap})
	}

	parts, err := uow.PartRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PartResponse, len(parts))
	for i, p := range parts {
		result[i] = &dto.PartResponse{
			PartId:                p.PartId,
			DealershipId:          p.DealershipId,
			Name:                  p.Name,
			Cost:                  p.Cost,
			InStock:               p.InStock,
			EtaIfNotAvailableDays: p.EtaIfNotAvailableDays,
		}
	}
	return result, nil
}

func (cs *catalogService) CustomerVehicles(ctx context.Context, customerId string) ([]*dto.VehicleResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	vehicles, err := uow.VehicleRepository().FindAll(ctx,
		specification.ByCustomer{CustomerID: customerId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		result[i] = &dto.VehicleResponse{
			VehicleId:          v.Id,
			CustomerId:         v.CustomerId,
			Model:              v.Model,
			RegistrationNumber: v.RegistrationNumber,
			Year:               v.Year,
			Color:              v.Color,
			AgeMonths:          v.AgeMonths,
		}
	}
	return result, nil
}

// Health reports the index state; a store error counts as uninitialized
func (cs *catalogService) Health(ctx context.Context) *dto.HealthResponse {
	size, err := cs.index.Size(ctx)
	if err != nil {
		size = 0
	}
	return &dto.HealthResponse{
		Status:           "healthy",
		IndexInitialized: size > 0,
		IndexedProblems:  size,
	}
}

func toProblemResponse(p *entity.Problem) *dto.ProblemResponse {
	return &dto.ProblemResponse{
		ProblemId:               p.Id,
		ProblemName:             p.Name,
		Descriptions:            p.Descriptions,
		LabourCategory:          p.LabourCategory,
		EstimatedLabourHours:    p.EstimatedLabourHours,
		EstimatedServiceMinutes: p.EstimatedServiceMinutes,
		PartsNeeded:             p.PartsNeeded,
	}
}
