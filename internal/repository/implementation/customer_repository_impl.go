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

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) contract.CustomerRepository {
	return &CustomerRepositoryImpl{db: db, mapper: mapper.NewCustomerMapper()}
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(r.mapper.ToModel(customer)).Error
}

func (r *CustomerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error) {
	var m model.Customer
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

type VehicleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CustomerMapper
}

func NewVehicleRepository(db *gorm.DB) contract.VehicleRepository {
	return &VehicleRepositoryImpl{db: db, mapper: mapper.NewCustomerMapper()}
}

func (r *VehicleRepositoryImpl) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return r.db.WithContext(ctx).Create(r.mapper.VehicleToModel(vehicle)).Error
}

func (r *VehicleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vehicle, error) {
	var m model.Vehicle
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.VehicleToEntity(&m), nil
}

func (r *VehicleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vehicle, error) {
	var models []*model.Vehicle
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Vehicle, len(models))
	for i, m := range models {
		entities[i] = r.mapper.VehicleToEntity(m)
	}
	return entities, nil
}
