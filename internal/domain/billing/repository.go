package billing

import (
	"context"
	"time"

	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRow is the read model for the invoices listing: one invoice joined
// with the customer it references, resolved by the store at query time.
type InvoiceRow struct {
	ID            uuid.UUID     `json:"id"`
	CustomerID    uuid.UUID     `json:"customer_id"`
	CustomerName  string        `json:"name"`
	CustomerEmail string        `json:"email"`
	ImageURL      string        `json:"image_url"`
	AmountCents   int64         `json:"amount_cents"`
	Status        InvoiceStatus `json:"status"`
	Date          time.Time     `json:"date"`
	Note          string        `json:"note"`
}

// InvoiceUpdate carries the mutable invoice fields for a scoped update.
// Date is deliberately absent.
type InvoiceUpdate struct {
	CustomerID  uuid.UUID
	AmountCents int64
	Status      InvoiceStatus
	Note        string
}

// InvoiceRepository defines the persistence contract for invoices
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	Save(ctx context.Context, invoice *Invoice) error
	// Update rewrites only the mutable fields of the invoice with the given
	// id. Updating a missing invoice is not an error.
	Update(ctx context.Context, id uuid.UUID, upd InvoiceUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindFiltered returns the page of listing rows whose customer name,
	// customer email, or status contains the search term, case-insensitively.
	FindFiltered(ctx context.Context, filter shared.Filter) ([]InvoiceRow, error)
	CountFiltered(ctx context.Context, search string) (int64, error)
}
