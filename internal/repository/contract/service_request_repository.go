package contract

import (
	"context"

	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/repository/specification"
)

type ServiceRequestRepository interface {
	Create(ctx context.Context, request *entity.ServiceRequest) error
	Update(ctx context.Context, request *entity.ServiceRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRequest, error)
}
