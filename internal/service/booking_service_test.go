package service

import (
	"context"
	"testing"
	"time"

	"vehicle-diagnosis-be/internal/dto"
	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/pkg/apperror"
	"vehicle-diagnosis-be/internal/pkg/logger"
	"vehicle-diagnosis-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService(db *fakeDB, pub *recordingPublisher) IBookingService {
	s := narrowedSession()
	return NewBookingService(fakeFactory{db}, sessionMap{s.ID: s}, pub, logger.NewNopLogger())
}

func bookingRequest(dealer string) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		CustomerId:   "CUST_001",
		VehicleId:    "VEH_001",
		DealershipId: dealer,
		SessionId:    "sess-1",
	}
}

func TestBookingService_CreateFromShortlist(t *testing.T) {
	db := newFixture()
	pub := &recordingPublisher{}
	svc := newBookingService(db, pub)

	res, err := svc.Create(context.Background(), bookingRequest("DEALER_002"))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Problems, "battery is not serviceable at DEALER_002")
	assert.InDelta(t, 255.0, res.FinalCost, 1e-9)
	assert.Equal(t, 120, res.FinalTimeMinutes)

	require.Len(t, db.requests, 1)
	sr := db.requests[0]
	assert.Equal(t, entity.ServiceStatusRequested, sr.Status)
	assert.Equal(t, "sess-1", sr.SessionId)
	assert.Equal(t, "SP002", sr.Problems[0].ProblemId)
	assert.InDelta(t, 10.0, sr.Problems[0].Discount, 1e-9)
	assert.Equal(t, []string{events.TypeBookingCreated}, pub.types())
}

func TestBookingService_CreateWithExplicitProblems(t *testing.T) {
	db := newFixture()
	svc := newBookingService(db, &recordingPublisher{})

	req := bookingRequest("DEALER_001")
	req.Problems = []dto.BookingProblem{{ProblemId: "SP003"}, {ProblemId: "SP999"}}
	res, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Problems)
	assert.InDelta(t, 115.0, res.FinalCost, 1e-9)
	assert.Equal(t, 270, res.FinalTimeMinutes)
}

func TestBookingService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	db := newFixture()
	svc := newBookingService(db, &recordingPublisher{})

	req := bookingRequest("DEALER_404")
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	req = bookingRequest("DEALER_001")
	req.SessionId = "nope"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	unfinished := narrowedSession()
	unfinished.Narrowed = false
	unfinished.Shortlist = nil
	svc = NewBookingService(fakeFactory{db}, sessionMap{unfinished.ID: unfinished}, &recordingPublisher{}, logger.NewNopLogger())
	_, err = svc.Create(ctx, bookingRequest("DEALER_001"))
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Empty(t, db.requests)
}

func TestBookingService_ListsNewestFirstWithDetails(t *testing.T) {
	db := newFixture()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	db.requests = []*entity.ServiceRequest{
		{Id: "SR_OLD", CustomerId: "CUST_001", VehicleId: "VEH_001", DealershipId: "DEALER_001", Status: "Completed", CreatedAt: base},
		{Id: "SR_NEW", CustomerId: "CUST_001", VehicleId: "VEH_001", DealershipId: "DEALER_002", Status: "Requested", CreatedAt: base.Add(time.Hour)},
		{Id: "SR_OTHER", CustomerId: "CUST_002", VehicleId: "VEH_009", DealershipId: "DEALER_001", Status: "Requested", CreatedAt: base.Add(2 * time.Hour)},
	}
	svc := newBookingService(db, &recordingPublisher{})
	ctx := context.Background()

	mine, err := svc.CustomerServices(ctx, "CUST_001")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "SR_NEW", mine[0].ServiceRequestId)
	assert.Equal(t, "Speedy Service Andheri", mine[0].DealershipName)
	assert.Equal(t, "Swift", mine[0].VehicleModel)
	assert.Empty(t, mine[0].CustomerName)

	dealer, err := svc.DealerServices(ctx, "DEALER_001")
	require.NoError(t, err)
	require.Len(t, dealer, 2)
	assert.Equal(t, "SR_OTHER", dealer[0].ServiceRequestId)
	assert.Empty(t, dealer[0].CustomerName, "unknown customer stays blank")
	assert.Equal(t, "Asha", dealer[1].CustomerName)
	assert.Equal(t, "MH01AB1234", dealer[1].VehicleRegistration)

	detail, err := svc.Show(ctx, "SR_OLD")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", detail.CustomerEmail)
	assert.Equal(t, 2024, detail.VehicleYear)
	require.NotNil(t, detail.DealershipLocation)
	assert.Equal(t, "Mumbai Central", detail.DealershipLocation.Address)

	_, err = svc.Show(ctx, "SR_404")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestBookingService_UpdateAutoPricesSelectedProblem(t *testing.T) {
	db := newFixture()
	pub := &recordingPublisher{}
	svc := newBookingService(db, pub)
	ctx := context.Background()

	created, err := svc.Create(ctx, bookingRequest("DEALER_002"))
	require.NoError(t, err)

	status := entity.ServiceStatusAccepted
	selected := "SP001"
	labour := "L3"
	res, err := svc.Update(ctx, created.ServiceRequestId, &dto.UpdateServiceRequest{
		Status:            &status,
		SelectedProblemId: &selected,
		AllocatedLabour:   &labour,
		AllocatedParts:    []string{"PAD"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceStatusAccepted, res.Status)
	require.NotNil(t, res.SelectedProblem)
	assert.Equal(t, "Squealing when braking", res.SelectedProblem.Description)
	assert.InDelta(t, 115.0, res.FinalCost, 1e-9)
	assert.Equal(t, 90, res.FinalTimeMinutes)
	assert.Equal(t, "L3", res.AllocatedLabour)
	assert.Equal(t, []string{"PAD"}, res.AllocatedParts)
	assert.Equal(t, 1, db.committed)

	cost := 99.5
	res, err = svc.Update(ctx, created.ServiceRequestId, &dto.UpdateServiceRequest{
		SelectedProblemId: &selected,
		FinalCost:         &cost,
	})
	require.NoError(t, err)
	assert.InDelta(t, 99.5, res.FinalCost, 1e-9, "supplied cost wins")
	assert.Equal(t, 90, res.FinalTimeMinutes)

	assert.Equal(t, []string{events.TypeBookingCreated, events.TypeServiceUpdated, events.TypeServiceUpdated}, pub.types())
}

func TestBookingService_UpdateErrorsRollBack(t *testing.T) {
	db := newFixture()
	svc := newBookingService(db, &recordingPublisher{})
	ctx := context.Background()

	_, err := svc.Update(ctx, "SR_404", &dto.UpdateServiceRequest{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	created, err := svc.Create(ctx, bookingRequest("DEALER_001"))
	require.NoError(t, err)
	unknown := "SP999"
	_, err = svc.Update(ctx, created.ServiceRequestId, &dto.UpdateServiceRequest{SelectedProblemId: &unknown})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Equal(t, 2, db.rolledBack)
	assert.Equal(t, 0, db.committed)
}

func TestBookingService_PublishFailureDoesNotFailRequest(t *testing.T) {
	db := newFixture()
	pub := &recordingPublisher{err: assert.AnError}
	svc := newBookingService(db, pub)

	_, err := svc.Create(context.Background(), bookingRequest("DEALER_002"))
	require.NoError(t, err)
	assert.Len(t, db.requests, 1)
}
