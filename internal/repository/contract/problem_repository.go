package contract

import (
	"context"

	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/repository/specification"
)

type ProblemRepository interface {
	Create(ctx context.Context, problem *entity.Problem) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Problem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Problem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
