package mapper

import (
	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/model"
)

type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToEntity(c *model.Customer) *entity.Customer {
	if c == nil {
		return nil
	}
	return &entity.Customer{
		Id:    c.Id,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

func (m *CustomerMapper) ToModel(c *entity.Customer) *model.Customer {
	if c == nil {
		return nil
	}
	return &model.Customer{
		Id:    c.Id,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

func (m *CustomerMapper) VehicleToEntity(v *model.Vehicle) *entity.Vehicle {
	if v == nil {
		return nil
	}
	return &entity.Vehicle{
		Id:                 v.Id,
		CustomerId:         v.CustomerId,
		Model:              v.Model,
		RegistrationNumber: v.RegistrationNumber,
		Year:               v.Year,
		Color:              v.Color,
		AgeMonths:          v.AgeMonths,
	}
}

func (m *CustomerMapper) VehicleToModel(v *entity.Vehicle) *model.Vehicle {
	if v == nil {
		return nil
	}
	return &model.Vehicle{
		Id:                 v.Id,
		CustomerId:         v.CustomerId,
		Model:              v.Model,
		RegistrationNumber: v.RegistrationNumber,
		Year:               v.Year,
		Color:              v.Color,
		AgeMonths:          v.AgeMonths,
	}
}
