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

type DealershipRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DealershipMapper
}

func NewDealershipRepository(db *gorm.DB) contract.DealershipRepository {
	return &DealershipRepositoryImpl{
		db:     db,
		mapper: mapper.NewDealershipMapper(),
	}
}

func (r *DealershipRepositoryImpl) Create(ctx context.Context, dealership *entity.Dealership) error {
	m := r.mapper.ToModel(dealership)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *DealershipRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Dealership, error) {
	var m model.Dealership
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DealershipRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Dealership, error) {
	var models []*model.Dealership
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type LabourRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DealershipMapper
}

func NewLabourRepository(db *gorm.DB) contract.LabourRepository {
	return &LabourRepositoryImpl{db: db, mapper: mapper.NewDealershipMapper()}
}

func (r *LabourRepositoryImpl) Create(ctx context.Context, labour *entity.Labour) error {
	return r.db.WithContext(ctx).Create(r.mapper.LabourToModel(labour)).Error
}

func (r *LabourRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Labour, error) {
	var models []*model.Labour
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Labour, len(models))
	for i, m := range models {
		entities[i] = r.mapper.LabourToEntity(m)
	}
	return entities, nil
}

type BayRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DealershipMapper
}

func NewBayRepository(db *gorm.DB) contract.BayRepository {
	return &BayRepositoryImpl{db: db, mapper: mapper.NewDealershipMapper()}
}

func (r *BayRepositoryImpl) Create(ctx context.Context, bay *entity.Bay) error {
	return r.db.WithContext(ctx).Create(r.mapper.BayToModel(bay)).Error
}

func (r *BayRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bay, error) {
	var models []*model.Bay
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Bay, len(models))
	for i, m := range models {
		entities[i] = r.mapper.BayToEntity(m)
	}
	return entities, nil
}

type PartRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DealershipMapper
}

func NewPartRepository(db *gorm.DB) contract.PartRepository {
	return &PartRepositoryImpl{db: db, mapper: mapper.NewDealershipMapper()}
}

func (r *PartRepositoryImpl) Create(ctx context.Context, part *entity.Part) error {
	m := r.mapper.PartToModel(part)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	part.Id = m.Id
	return nil
}

func (r *PartRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Part, error) {
	var models []*model.Part
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Part, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PartToEntity(m)
	}
	return entities, nil
}

type InsuranceRuleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DealershipMapper
}

func NewInsuranceRuleRepository(db *gorm.DB) contract.InsuranceRuleRepository {
	return &InsuranceRuleRepositoryImpl{db: db, mapper: mapper.NewDealershipMapper()}
}

func (r *InsuranceRuleRepositoryImpl) Create(ctx context.Context, rule *entity.InsuranceRule) error {
	return r.db.WithContext(ctx).Create(r.mapper.RuleToModel(rule)).Error
}

func (r *InsuranceRuleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InsuranceRule, error) {
	var models []*model.InsuranceRule
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.InsuranceRule, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RuleToEntity(m)
	}
	return entities, nil
}
