package models

import (
	"github.com/acme/dashboard/internal/domain/partner"
)

// CustomerModel is the persistence model for partner.Customer.
type CustomerModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null;index"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone    string `gorm:"type:varchar(32);not null"`
	Address  string `gorm:"type:varchar(500);not null"`
	ImageURL string `gorm:"type:varchar(500);not null"`
}

func (CustomerModel) TableName() string { return "customers" }

func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity: m.ToBaseEntity(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
		ImageURL:   m.ImageURL,
	}
}

func CustomerFromDomain(c *partner.Customer) *CustomerModel {
	return &CustomerModel{
		BaseModel: FromBaseEntity(c.BaseEntity),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		ImageURL:  c.ImageURL,
	}
}
