package contract

import (
	"context"

	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/repository/specification"
)

type DealershipRepository interface {
	Create(ctx context.Context, dealership *entity.Dealership) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Dealership, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Dealership, error)
}

type LabourRepository interface {
	Create(ctx context.Context, labour *entity.Labour) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Labour, error)
}

type BayRepository interface {
	Create(ctx context.Context, bay *entity.Bay) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bay, error)
}

type PartRepository interface {
	Create(ctx context.Context, part *entity.Part) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Part, error)
}

type InsuranceRuleRepository interface {
	Create(ctx context.Context, rule *entity.InsuranceRule) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InsuranceRule, error)
}
