package service

import (
	"context"
	"fmt"
	"time"

	"vehicle-diagnosis-be/internal/dto"
	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/pkg/apperror"
	"vehicle-diagnosis-be/internal/pkg/logger"
	"vehicle-diagnosis-be/internal/repository/specification"
	"vehicle-diagnosis-be/internal/repository/unitofwork"
	"vehicle-diagnosis-be/pkg/estimate"
	"vehicle-diagnosis-be/pkg/events"

	"github.com/google/uuid"
)

type IBookingService interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error)
	CustomerServices(ctx context.Context, customerId string) ([]*dto.ServiceRequestResponse, error)
	DealerServices(ctx context.Context, dealershipId string) ([]*dto.ServiceRequestResponse, error)
	Show(ctx context.Context, id string) (*dto.ServiceRequestResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateServiceRequest) (*dto.ServiceRequestResponse, error)
}

type bookingService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   SessionReader
	events     events.Publisher
	logger     logger.ILogger
}

func NewBookingService(
	uowFactory unitofwork.RepositoryFactory,
	sessions SessionReader,
	publisher events.Publisher,
	logger logger.ILogger,
) IBookingService {
	return &bookingService{
		uowFactory: uowFactory,
		sessions:   sessions,
		events:     publisher,
		logger:     logger,
	}
}

// Create books the problems at one dealership. Problems the dealership cannot
// service are left out; the total is the sum of discounted costs and the time is the longest job.
func (bs *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	session, err := bs.sessions.Get(ctx, req.SessionId)
	if err != nil {
		return nil, mapEngineError(err)
	}

	problems := req.Problems
	if len(problems) == 0 {
		if !session.Narrowed {
			return nil, fmt.Errorf("%w: diagnosis %s is not finished", apperror.ErrBadRequest, session.ID)
		}
		for _, c := range session.Shortlist {
			problems = append(problems, dto.BookingProblem{ProblemId: c.ProblemID, ProblemName: c.ProblemName})
		}
	}

	uow := bs.uowFactory.NewUnitOfWork(ctx)

	vehicle, err := uow.VehicleRepository().FindOne(ctx, specification.ByID{ID: req.VehicleId})
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %s", apperror.ErrNotFound, req.VehicleId)
	}
	dealership, err := uow.DealershipRepository().FindOne(ctx, specification.ByID{ID: req.DealershipId})
	if err != nil {
		return nil, err
	}
	if dealership == nil {
		return nil, fmt.Errorf("%w: dealership %s", apperror.ErrNotFound, req.DealershipId)
	}

	p := pricer{uow: uow}
	request := &entity.ServiceRequest{
		Id:             uuid.NewString(),
		CustomerId:     req.CustomerId,
		VehicleId:      vehicle.Id,
		DealershipId:   dealership.Id,
		SessionId:      session.ID,
		Problems:       []entity.ServiceProblem{},
		AllocatedParts: []string{},
		Status:         entity.ServiceStatusRequested,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	var total float64
	for _, bp := range problems {
		problem, err := uow.ProblemRepository().FindOne(ctx, specification.ByID{ID: bp.ProblemId})
		if err != nil {
			return nil, err
		}
		if problem == nil {
			continue
		}
		q, err := p.Quote(ctx, problem, dealership.Id, vehicle.AgeMonths)
		if err != nil {
			return nil, err
		}
		if !q.Estimate.Serviceable {
			continue
		}

		request.Problems = append(request.Problems, entity.ServiceProblem{
			ProblemId:            problem.Id,
			ProblemName:          problem.Name,
			EstimatedCost:        q.Warranty.FinalCost,
			EstimatedTimeMinutes: q.Estimate.EstimatedTimeMinutes,
			Discount:             q.Warranty.Discount,
		})
		total += q.Warranty.FinalCost
		if q.Estimate.EstimatedTimeMinutes > request.FinalTimeMinutes {
			request.FinalTimeMinutes = q.Estimate.EstimatedTimeMinutes
		}
	}
	request.FinalCost = estimate.Round2(total)

	if err := uow.ServiceRequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	bs.publish(ctx, events.BookingCreated(request.Id, request.CustomerId, request.DealershipId, request.FinalCost))

	return &dto.CreateBookingResponse{
		ServiceRequestId: request.Id,
		FinalCost:        request.FinalCost,
		FinalTimeMinutes: request.FinalTimeMinutes,
		Problems:         len(request.Problems),
	}, nil
}

func (bs *bookingService) CustomerServices(ctx context.Context, customerId string) ([]*dto.ServiceRequestResponse, error) {
	uow := bs.uowFactory.NewUnitOfWork(ctx)
	requests, err := uow.ServiceRequestRepository().FindAll(ctx,
		specification.ByCustomer{CustomerID: customerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	e := newEnricher(uow)
	result := make([]*dto.ServiceRequestResponse, 0, len(requests))
	for _, sr := range requests {
		res := toServiceRequestResponse(sr)
		if err := e.dealer(ctx, res); err != nil {
			return nil, err
		}
		if err := e.vehicle(ctx, res); err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

func (bs *bookingService) DealerServices(ctx context.Context, dealershipId string) ([]*dto.ServiceRequestResponse, error) {
	uow := bs.uowFactory.NewUnitOfWork(ctx)
	requests, err := uow.ServiceRequestRepository().FindAll(ctx,
		specification.ByDealership{DealershipID: dealershipId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	e := newEnricher(uow)
	result := make([]*dto.ServiceRequestResponse, 0, len(requests))
	for _, sr := range requests {
		res := toServiceRequestResponse(sr)
		if err := e.customer(ctx, res); err != nil {
			return nil, err
		}
		if err := e.vehicle(ctx, res); err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

func (bs *bookingService) Show(ctx context.Context, id string) (*dto.ServiceRequestResponse, error) {
	uow := bs.uowFactory.NewUnitOfWork(ctx)
	sr, err := uow.ServiceRequestRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sr == nil {
		return nil, fmt.Errorf("%w: service request %s", apperror.ErrNotFound, id)
	}

	res := toServiceRequestResponse(sr)
	e := newEnricher(uow)
	if err := e.customer(ctx, res); err != nil {
		return nil, err
	}
	if err := e.vehicle(ctx, res); err != nil {
		return nil, err
	}
	if err := e.dealer(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Update applies a dealer's changes. Selecting a problem fills in the final cost
// and time from a fresh quote unless the dealer supplies them.
func (bs *bookingService) Update(ctx context.Context, id string, req *dto.UpdateServiceRequest) (*dto.ServiceRequestResponse, error) {
	uow := bs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			uow.Rollback()
			panic(r)
		}
	}()

	sr, err := bs.applyUpdate(ctx, uow, id, req)
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	bs.publish(ctx, events.ServiceUpdated(sr.Id, sr.DealershipId, sr.Status))
	return toServiceRequestResponse(sr), nil
}

func (bs *bookingService) applyUpdate(ctx context.Context, uow unitofwork.UnitOfWork, id string, req *dto.UpdateServiceRequest) (*entity.ServiceRequest, error) {
	sr, err := uow.ServiceRequestRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sr == nil {
		return nil, fmt.Errorf("%w: service request %s", apperror.ErrNotFound, id)
	}

	if req.Status != nil {
		sr.Status = *req.Status
	}

	if req.SelectedProblemId != nil && *req.SelectedProblemId != "" {
		problem, err := uow.ProblemRepository().FindOne(ctx, specification.ByID{ID: *req.SelectedProblemId})
		if err != nil {
			return nil, err
		}
		if problem == nil {
			return nil, fmt.Errorf("%w: unknown problem %s", apperror.ErrBadRequest, *req.SelectedProblemId)
		}
		sr.SelectedProblem = &entity.SelectedProblem{
			ProblemId:   problem.Id,
			ProblemName: problem.Name,
			Description: problem.Excerpt(),
		}

		if req.FinalCost == nil || req.FinalTimeMinutes == nil {
			if err := bs.autoPrice(ctx, uow, sr, problem, req); err != nil {
				return nil, err
			}
		}
	}

	if req.AllocatedLabour != nil && *req.AllocatedLabour != "" {
		sr.AllocatedLabour = *req.AllocatedLabour
	}
	if len(req.AllocatedParts) > 0 {
		sr.AllocatedParts = req.AllocatedParts
	}
	if req.FinalCost != nil {
		sr.FinalCost = *req.FinalCost
	}
	if req.FinalTimeMinutes != nil {
		sr.FinalTimeMinutes = *req.FinalTimeMinutes
	}
	sr.UpdatedAt = time.Now()

	if err := uow.ServiceRequestRepository().Update(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

func (bs *bookingService) autoPrice(ctx context.Context, uow unitofwork.UnitOfWork, sr *entity.ServiceRequest, problem *entity.Problem, req *dto.UpdateServiceRequest) error {
	vehicle, err := uow.VehicleRepository().FindOne(ctx, specification.ByID{ID: sr.VehicleId})
	if err != nil {
		return err
	}
	if vehicle == nil {
		return nil
	}

	q, err := pricer{uow: uow}.Quote(ctx, problem, sr.DealershipId, vehicle.AgeMonths)
	if err != nil {
		return err
	}
	if !q.Estimate.Serviceable {
		bs.logger.Warn("BOOKING", "Selected problem is not serviceable at dealership", map[string]interface{}{
			"service_request_id": sr.Id,
			"problem_id":         problem.Id,
			"reason":             q.Estimate.Reason,
		})
		return nil
	}

	if req.FinalCost == nil {
		sr.FinalCost = q.Warranty.FinalCost
	}
	if req.FinalTimeMinutes == nil {
		sr.FinalTimeMinutes = q.Estimate.EstimatedTimeMinutes
	}
	return nil
}

func (bs *bookingService) publish(ctx context.Context, event events.Event) {
	if err := bs.events.Publish(ctx, event); err != nil {
		bs.logger.Warn("BOOKING", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

func toServiceRequestResponse(sr *entity.ServiceRequest) *dto.ServiceRequestResponse {
	problems := sr.Problems
	if problems == nil {
		problems = []entity.ServiceProblem{}
	}
	parts := sr.AllocatedParts
	if parts == nil {
		parts = []string{}
	}
	return &dto.ServiceRequestResponse{
		ServiceRequestId: sr.Id,
		CustomerId:       sr.CustomerId,
		VehicleId:        sr.VehicleId,
		DealershipId:     sr.DealershipId,
		SessionId:        sr.SessionId,
		Problems:         problems,
		SelectedProblem:  sr.SelectedProblem,
		AllocatedLabour:  sr.AllocatedLabour,
		AllocatedParts:   parts,
		FinalCost:        sr.FinalCost,
		FinalTimeMinutes: sr.FinalTimeMinutes,
		Status:           sr.Status,
		CreatedAt:        sr.CreatedAt,
		UpdatedAt:        sr.UpdatedAt,
	}
}

// enricher attaches customer, vehicle and dealership details, looking each id up once
type enricher struct {
	uow         unitofwork.UnitOfWork
	customers   map[string]*entity.Customer
	vehicles    map[string]*entity.Vehicle
	dealerships map[string]*entity.Dealership
}

func newEnricher(uow unitofwork.UnitOfWork) *enricher {
	return &enricher{
		uow:         uow,
		customers:   map[string]*entity.Customer{},
		vehicles:    map[string]*entity.Vehicle{},
		dealerships: map[string]*entity.Dealership{},
	}
}

func (e *enricher) customer(ctx context.Context, res *dto.ServiceRequestResponse) error {
	c, ok := e.customers[res.CustomerId]
	if !ok {
		var err error
		c, err = e.uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: res.CustomerId})
		if err != nil {
			return err
		}
		e.customers[res.CustomerId] = c
	}
	if c != nil {
		res.CustomerName = c.Name
		res.CustomerPhone = c.Phone
		res.CustomerEmail = c.Email
	}
	return nil
}

func (e *enricher) vehicle(ctx context.Context, res *dto.ServiceRequestResponse) error {
	v, ok := e.vehicles[res.VehicleId]
	if !ok {
		var err error
		v, err = e.uow.VehicleRepository().FindOne(ctx, specification.ByID{ID: res.VehicleId})
		if err != nil {
			return err
		}
		e.vehicles[res.VehicleId] = v
	}
	if v != nil {
		res.VehicleModel = v.Model
		res.VehicleRegistration = v.RegistrationNumber
		res.VehicleYear = v.Year
		res.VehicleColor = v.Color
	}
	return nil
}

func (e *enricher) dealer(ctx context.Context, res *dto.ServiceRequestResponse) error {
	d, ok := e.dealerships[res.DealershipId]
	if !ok {
		var err error
		d, err = e.uow.DealershipRepository().FindOne(ctx, specification.ByID{ID: res.DealershipId})
		if err != nil {
			return err
		}
		e.dealerships[res.DealershipId] = d
	}
	if d != nil {
		loc := d.Location
		res.DealershipName = d.Name
		res.DealershipLocation = &loc
	}
	return nil
}
