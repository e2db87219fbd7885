package models

import (
	"time"

	"github.com/acme/dashboard/internal/domain/billing"
	"github.com/google/uuid"
)

// InvoiceModel is the persistence model for billing.Invoice.
type InvoiceModel struct {
	BaseModel
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	AmountCents int64     `gorm:"not null"`
	Status      string    `gorm:"type:varchar(16);not null"`
	Date        time.Time `gorm:"type:date;not null;index"`
	Note        string    `gorm:"type:varchar(500);not null"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID"`
}

func (InvoiceModel) TableName() string { return "invoices" }

func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		BaseEntity:  m.ToBaseEntity(),
		CustomerID:  m.CustomerID,
		AmountCents: m.AmountCents,
		Status:      billing.InvoiceStatus(m.Status),
		Date:        m.Date,
		Note:        m.Note,
	}
}

func InvoiceFromDomain(inv *billing.Invoice) *InvoiceModel {
	return &InvoiceModel{
		BaseModel:   FromBaseEntity(inv.BaseEntity),
		CustomerID:  inv.CustomerID,
		AmountCents: inv.AmountCents,
		Status:      string(inv.Status),
		Date:        inv.Date,
		Note:        inv.Note,
	}
}
