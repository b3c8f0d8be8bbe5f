package mapper

import (
	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/model"

	"gorm.io/datatypes"
)

type DealershipMapper struct{}

func NewDealershipMapper() *DealershipMapper {
	return &DealershipMapper{}
}

func (m *DealershipMapper) ToEntity(d *model.Dealership) *entity.Dealership {
	if d == nil {
		return nil
	}
	return &entity.Dealership{
		Id:       d.Id,
		Name:     d.Name,
		Location: d.Location.Data(),
		Phone:    d.Phone,
		Email:    d.Email,
		Rating:   d.Rating,
	}
}

func (m *DealershipMapper) ToModel(d *entity.Dealership) *model.Dealership {
	if d == nil {
		return nil
	}
	return &model.Dealership{
		Id:       d.Id,
		Name:     d.Name,
		Location: datatypes.NewJSONType(d.Location),
		Phone:    d.Phone,
		Email:    d.Email,
		Rating:   d.Rating,
	}
}

func (m *DealershipMapper) ToEntities(models []*model.Dealership) []*entity.Dealership {
	entities := make([]*entity.Dealership, len(models))
	for i, d := range models {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

func (m *DealershipMapper) LabourToEntity(l *model.Labour) *entity.Labour {
	if l == nil {
		return nil
	}
	return &entity.Labour{
		Id:                    l.Id,
		DealershipId:          l.DealershipId,
		Name:                  l.Name,
		Category:              l.Category,
		HourlyRate:            l.HourlyRate,
		Available:             l.Available,
		EtaIfUnavailableHours: l.EtaIfUnavailableHours,
	}
}

func (m *DealershipMapper) LabourToModel(l *entity.Labour) *model.Labour {
	if l == nil {
		return nil
	}
	return &model.Labour{
		Id:                    l.Id,
		DealershipId:          l.DealershipId,
		Name:                  l.Name,
		Category:              l.Category,
		HourlyRate:            l.HourlyRate,
		Available:             l.Available,
		EtaIfUnavailableHours: l.EtaIfUnavailableHours,
	}
}

func (m *DealershipMapper) BayToEntity(b *model.Bay) *entity.Bay {
	if b == nil {
		return nil
	}
	return &entity.Bay{
		Id:           b.Id,
		DealershipId: b.DealershipId,
		Name:         b.Name,
		Available:    b.Available,
	}
}

func (m *DealershipMapper) BayToModel(b *entity.Bay) *model.Bay {
	if b == nil {
		return nil
	}
	return &model.Bay{
		Id:           b.Id,
		DealershipId: b.DealershipId,
		Name:         b.Name,
		Available:    b.Available,
	}
}

func (m *DealershipMapper) PartToEntity(p *model.Part) *entity.Part {
	if p == nil {
		return nil
	}
	return &entity.Part{
		Id:                    p.Id,
		PartId:                p.PartId,
		DealershipId:          p.DealershipId,
		Name:                  p.Name,
		Cost:                  p.Cost,
		InStock:               p.InStock,
		EtaIfNotAvailableDays: p.EtaIfNotAvailableDays,
	}
}

func (m *DealershipMapper) PartToModel(p *entity.Part) *model.Part {
	if p == nil {
		return nil
	}
	id := p.Id
	if id == "" {
		id = p.DealershipId + ":" + p.PartId
	}
	return &model.Part{
		Id:                    id,
		PartId:                p.PartId,
		DealershipId:          p.DealershipId,
		Name:                  p.Name,
		Cost:                  p.Cost,
		InStock:               p.InStock,
		EtaIfNotAvailableDays: p.EtaIfNotAvailableDays,
	}
}

func (m *DealershipMapper) RuleToEntity(r *model.InsuranceRule) *entity.InsuranceRule {
	if r == nil {
		return nil
	}
	return &entity.InsuranceRule{
		Id:                  r.Id,
		PartId:              r.PartId,
		MaxVehicleAgeMonths: r.MaxVehicleAgeMonths,
		DiscountPercentage:  r.DiscountPercentage,
	}
}

func (m *DealershipMapper) RuleToModel(r *entity.InsuranceRule) *model.InsuranceRule {
	if r == nil {
		return nil
	}
	return &model.InsuranceRule{
		Id:                  r.Id,
		PartId:              r.PartId,
		MaxVehicleAgeMonths: r.MaxVehicleAgeMonths,
		DiscountPercentage:  r.DiscountPercentage,
	}
}
