package partner

import (
	"context"

	"github.com/acme/dashboard/internal/domain/partner"
	"github.com/acme/dashboard/internal/domain/shared"
	"go.uber.org/zap"
)

const (
	msgCreateMissingFields = "Missing Fields. Failed to Create Customer."
	msgCreateDBError       = "Database Error: Failed to Create Customer."
)

// CustomerService handles customer creation and the filtered customer
// listing reads.
type CustomerService struct {
	customers   partner.CustomerRepository
	invalidator shared.ListingInvalidator
	logger      *zap.Logger
	pageSize    int
	avatarURL   string
}

// NewCustomerService creates a new CustomerService. avatarURL is the
// placeholder portrait every new customer is stored with.
func NewCustomerService(customers partner.CustomerRepository, invalidator shared.ListingInvalidator, pageSize int, avatarURL string, logger *zap.Logger) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{
		customers:   customers,
		invalidator: invalidator,
		logger:      logger,
		pageSize:    pageSize,
		avatarURL:   avatarURL,
	}
}

// CreateCustomer validates the submitted form and inserts a new customer
// with the placeholder portrait. Nothing is persisted on invalid input,
// and the listing cache is invalidated only after a successful insert.
func (s *CustomerService) CreateCustomer(ctx context.Context, in partner.CustomerFormInput) shared.ActionState {
	form, errs := partner.ParseCustomerForm(in)
	if errs.HasErrors() {
		return shared.Invalid(errs, msgCreateMissingFields)
	}

	customer, err := partner.NewCustomer(form.Name, form.Email, form.Phone, form.Address, s.avatarURL)
	if err != nil {
		s.logger.Error("Failed to create customer", zap.Error(err))
		return shared.Failed(msgCreateDBError)
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		s.logger.Error("Failed to create customer",
			zap.String("email", form.Email),
			zap.Error(err))
		return shared.Failed(msgCreateDBError)
	}

	s.invalidator.Invalidate(ctx, partner.CustomersPath)
	return shared.Redirect(partner.CustomersPath)
}

// FetchFilteredCustomers returns one page of customers whose name or email
// matches the search term, ordered by name and wrapped in the pagination
// envelope.
func (s *CustomerService) FetchFilteredCustomers(ctx context.Context, query string, page int) (shared.Paginated[partner.Customer], error) {
	if page < 1 {
		page = 1
	}
	filter := shared.Filter{
		Page:     page,
		PageSize: s.pageSize,
		Search:   query,
		OrderBy:  "name",
		OrderDir: "asc",
	}
	customers, err := s.customers.FindFiltered(ctx, filter)
	if err != nil {
		return shared.Paginated[partner.Customer]{}, err
	}
	total, err := s.customers.CountFiltered(ctx, query)
	if err != nil {
		return shared.Paginated[partner.Customer]{}, err
	}
	return shared.NewPaginated(customers, total, page, s.pageSize), nil
}

// FetchFilteredCustomersPages returns the total number of listing pages for
// the search term.
func (s *CustomerService) FetchFilteredCustomersPages(ctx context.Context, query string) (int, error) {
	total, err := s.customers.CountFiltered(ctx, query)
	if err != nil {
		return 0, err
	}
	return shared.TotalPages(total, s.pageSize), nil
}
