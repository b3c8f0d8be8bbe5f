package contract

import (
	"context"

	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/repository/specification"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vehicle, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vehicle, error)
}
