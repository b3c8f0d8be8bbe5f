package mapper

import (
	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/model"

	"gorm.io/datatypes"
)

type ServiceRequestMapper struct{}

func NewServiceRequestMapper() *ServiceRequestMapper {
	return &ServiceRequestMapper{}
}

func (m *ServiceRequestMapper) ToEntity(s *model.ServiceRequest) *entity.ServiceRequest {
	if s == nil {
		return nil
	}
	e := &entity.ServiceRequest{
		Id:               s.Id,
		CustomerId:       s.CustomerId,
		VehicleId:        s.VehicleId,
		DealershipId:     s.DealershipId,
		SessionId:        s.SessionId,
		Problems:         []entity.ServiceProblem(s.Problems),
		AllocatedLabour:  s.AllocatedLabour,
		AllocatedParts:   []string(s.AllocatedParts),
		FinalCost:        s.FinalCost,
		FinalTimeMinutes: s.FinalTimeMinutes,
		Status:           s.Status,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	if s.SelectedProblem != nil {
		selected := s.SelectedProblem.Data()
		e.SelectedProblem = &selected
	}
	return e
}

func (m *ServiceRequestMapper) ToModel(s *entity.ServiceRequest) *model.ServiceRequest {
	if s == nil {
		return nil
	}
	out := &model.ServiceRequest{
		Id:               s.Id,
		CustomerId:       s.CustomerId,
		VehicleId:        s.VehicleId,
		DealershipId:     s.DealershipId,
		SessionId:        s.SessionId,
		Problems:         s.Problems,
		AllocatedLabour:  s.AllocatedLabour,
		AllocatedParts:   s.AllocatedParts,
		FinalCost:        s.FinalCost,
		FinalTimeMinutes: s.FinalTimeMinutes,
		Status:           s.Status,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	if s.SelectedProblem != nil {
		selected := datatypes.NewJSONType(*s.SelectedProblem)
		out.SelectedProblem = &selected
	}
	return out
}

func (m *ServiceRequestMapper) ToEntities(models []*model.ServiceRequest) []*entity.ServiceRequest {
	entities := make([]*entity.ServiceRequest, len(models))
	for i, s := range models {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
