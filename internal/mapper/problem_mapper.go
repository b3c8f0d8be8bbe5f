package mapper

import (
	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/model"
)

type ProblemMapper struct{}

func NewProblemMapper() *ProblemMapper {
	return &ProblemMapper{}
}

func (m *ProblemMapper) ToEntity(p *model.Problem) *entity.Problem {
	if p == nil {
		return nil
	}
	return &entity.Problem{
		Id:                      p.Id,
		Name:                    p.Name,
		Descriptions:            []string(p.Descriptions),
		LabourCategory:          p.LabourCategory,
		EstimatedLabourHours:    p.EstimatedLabourHours,
		EstimatedServiceMinutes: p.EstimatedServiceMinutes,
		PartsNeeded:             []string(p.PartsNeeded),
	}
}

func (m *ProblemMapper) ToModel(p *entity.Problem) *model.Problem {
	if p == nil {
		return nil
	}
	return &model.Problem{
		Id:                      p.Id,
		Name:                    p.Name,
		Descriptions:            p.Descriptions,
		LabourCategory:          p.LabourCategory,
		EstimatedLabourHours:    p.EstimatedLabourHours,
		EstimatedServiceMinutes: p.EstimatedServiceMinutes,
		PartsNeeded:             p.PartsNeeded,
	}
}

func (m *ProblemMapper) ToEntities(models []*model.Problem) []*entity.Problem {
	entities := make([]*entity.Problem, len(models))
	for i, p := range models {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
