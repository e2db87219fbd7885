package models

import (
	"github.com/acme/dashboard/internal/domain/identity"
)

// UserModel is the persistence model for identity.User.
type UserModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.ToBaseEntity(),
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
	}
}

func UserFromDomain(u *identity.User) *UserModel {
	return &UserModel{
		BaseModel:    FromBaseEntity(u.BaseEntity),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}
