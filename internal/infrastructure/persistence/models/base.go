package models

import (
	"time"

	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel is embedded by every persistence model.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToBaseEntity maps the shared columns back into the domain base entity.
func (m BaseModel) ToBaseEntity() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromBaseEntity fills the shared columns from the domain base entity.
func FromBaseEntity(e shared.BaseEntity) BaseModel {
	return BaseModel{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
