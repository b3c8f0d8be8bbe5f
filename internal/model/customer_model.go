package model

import "time"

type Customer struct {
	Id        string    `gorm:"type:varchar(64);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex"`
	Phone     string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Customer) TableName() string {
	return "customers"
}

type Vehicle struct {
	Id                 string    `gorm:"type:varchar(64);primaryKey"`
	CustomerId         string    `gorm:"type:varchar(64);not null;index"`
	Model              string    `gorm:"type:varchar(255)"`
	RegistrationNumber string    `gorm:"type:varchar(50)"`
	Year               int       `gorm:"default:0"`
	Color              string    `gorm:"type:varchar(50)"`
	AgeMonths          int       `gorm:"not null;default:0"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
