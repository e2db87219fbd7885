package partner

import (
	"context"

	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the persistence contract for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	Save(ctx context.Context, customer *Customer) error
	// FindFiltered returns the page of customers whose name or email contains
	// the search term, case-insensitively, ordered by name.
	FindFiltered(ctx context.Context, filter shared.Filter) ([]Customer, error)
	CountFiltered(ctx context.Context, search string) (int64, error)
}
