package implementation

import (
	"context"
	"errors"

	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/mapper"
	"vehicle-diagnosis-be/internal/model"
	"vehicle-diagnosis-be/internal/repository/contract"
	"vehicle-diagnosis-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ServiceRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ServiceRequestMapper
}

func NewServiceRequestRepository(db *gorm.DB) contract.ServiceRequestRepository {
	return &ServiceRequestRepositoryImpl{db: db, mapper: mapper.NewServiceRequestMapper()}
}

func (r *ServiceRequestRepositoryImpl) Create(ctx context.Context, request *entity.ServiceRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceRequestRepositoryImpl) Update(ctx context.Context, request *entity.ServiceRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error) {
	var m model.ServiceRequest
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ServiceRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRequest, error) {
	var models []*model.ServiceRequest
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
