package service

import (
	"context"
	"fmt"

	"vehicle-diagnosis-be/internal/dto"
	"vehicle-diagnosis-be/internal/pkg/apperror"
	"vehicle-diagnosis-be/internal/repository/specification"
	"vehicle-diagnosis-be/internal/repository/unitofwork"
	"vehicle-diagnosis-be/pkg/store"
)

type IEstimateService interface {
	GetEstimates(ctx context.Context, sessionId string) (*dto.EstimateResponse, error)
}

type estimateService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   SessionReader
}

func NewEstimateService(uowFactory unitofwork.RepositoryFactory, sessions SessionReader) IEstimateService {
	return &estimateService{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// problemsToPrice is the shortlist once narrowed, otherwise the leading candidates
func problemsToPrice(s *store.Session) []store.Candidate {
	if s.Narrowed && len(s.Shortlist) > 0 {
		return s.Shortlist
	}
	if len(s.Candidates) > store.ShortlistSize {
		return s.Candidates[:store.ShortlistSize]
	}
	return s.Candidates
}

// GetEstimates quotes every shortlisted problem at every dealership able to take it
func (es *estimateService) GetEstimates(ctx context.Context, sessionId string) (*dto.EstimateResponse, error) {
	session, err := es.sessions.Get(ctx, sessionId)
	if err != nil {
		return nil, mapEngineError(err)
	}

	uow := es.uowFactory.NewUnitOfWork(ctx)

	vehicle, err := uow.VehicleRepository().FindOne(ctx, specification.ByID{ID: session.VehicleID})
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %s", apperror.ErrNotFound, session.VehicleID)
	}

	candidates := problemsToPrice(session)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no problems identified", apperror.ErrNotFound)
	}

	dealerships, err := uow.DealershipRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	p := pricer{uow: uow}
	res := &dto.EstimateResponse{
		SessionId: session.ID,
		VehicleId: vehicle.Id,
		Estimates: make([]dto.ProblemEstimate, 0, len(candidates)),
	}
	for _, c := range candidates {
		problem, err := uow.ProblemRepository().FindOne(ctx, specification.ByID{ID: c.ProblemID})
		if err != nil {
			return nil, err
		}
		if problem == nil {
			continue
		}

		pe := dto.ProblemEstimate{
			ProblemId:   problem.Id,
			ProblemName: problem.Name,
			Description: problem.Excerpt(),
			Dealerships: make([]dto.DealerQuote, 0, len(dealerships)),
		}
		for _, d := range dealerships {
			q, err := p.Quote(ctx, problem, d.Id, vehicle.AgeMonths)
			if err != nil {
				return nil, err
			}
			if !q.Estimate.Serviceable {
				continue
			}
			pe.Dealerships = append(pe.Dealerships, dto.DealerQuote{
				DealershipId:         d.Id,
				Name:                 d.Name,
				Location:             d.Location,
				Rating:               d.Rating,
				EstimatedCost:        q.Estimate.EstimatedCost,
				PartsCost:            q.Estimate.PartsCost,
				LabourCost:           q.Estimate.LabourCost,
				Discount:             q.Warranty.Discount,
				FinalCost:            q.Warranty.FinalCost,
				EstimatedTimeMinutes: q.Estimate.EstimatedTimeMinutes,
				PartsAvailable:       q.Estimate.PartsAvailable,
			})
		}
		res.Estimates = append(res.Estimates, pe)
	}

	return res, nil
}
