package billing

import (
	"time"

	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// NoteMaxLength is the maximum length of an invoice note
const NoteMaxLength = 500

// InvoicesPath is the listing path invalidated and redirected to after a
// successful invoice mutation. Fixed, not configurable per call.
const InvoicesPath = "/dashboard/invoices"

// Invoice represents an invoice in the billing context.
// It is the aggregate root for invoice-related operations.
type Invoice struct {
	shared.BaseEntity
	CustomerID  uuid.UUID // references a customer; enforced by the store
	AmountCents int64     // positive count of currency subunits
	Status      InvoiceStatus
	Date        time.Time // creation date, immutable after creation
	Note        string
}

// NewInvoice creates a new invoice with the creation date set to today
func NewInvoice(customerID uuid.UUID, amountCents int64, status InvoiceStatus, note string) (*Invoice, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Invoice must reference a customer")
	}
	if err := validateAmountCents(amountCents); err != nil {
		return nil, err
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}
	if err := validateNote(note); err != nil {
		return nil, err
	}

	return &Invoice{
		BaseEntity:  shared.NewBaseEntity(),
		CustomerID:  customerID,
		AmountCents: amountCents,
		Status:      status,
		Date:        today(),
		Note:        note,
	}, nil
}

// Update replaces the mutable fields. Date is never touched.
func (i *Invoice) Update(customerID uuid.UUID, amountCents int64, status InvoiceStatus, note string) error {
	if customerID == uuid.Nil {
		return shared.NewDomainError("INVALID_CUSTOMER", "Invoice must reference a customer")
	}
	if err := validateAmountCents(amountCents); err != nil {
		return err
	}
	if err := validateStatus(status); err != nil {
		return err
	}
	if err := validateNote(note); err != nil {
		return err
	}

	i.CustomerID = customerID
	i.AmountCents = amountCents
	i.Status = status
	i.Note = note
	i.Touch()

	return nil
}

// IsPaid returns true if the invoice has been paid
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// IsPending returns true if the invoice is awaiting payment
func (i *Invoice) IsPending() bool {
	return i.Status == InvoiceStatusPending
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validateAmountCents(amountCents int64) error {
	if amountCents <= 0 {
		return shared.NewDomainError("INVALID_AMOUNT", "Invoice amount must be positive")
	}
	return nil
}

func validateStatus(status InvoiceStatus) error {
	switch status {
	case InvoiceStatusPending, InvoiceStatusPaid:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invoice status must be 'pending' or 'paid'")
	}
}

func validateNote(note string) error {
	if len(note) > NoteMaxLength {
		return shared.NewDomainError("INVALID_NOTE", "Invoice note cannot exceed 500 characters")
	}
	return nil
}
