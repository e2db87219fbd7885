package partner

import (
	"regexp"
	"unicode/utf8"

	"github.com/acme/dashboard/internal/domain/shared"
)

// Field length rules for the customer form. Lengths are counted in
// characters, not bytes.
const (
	NameMinLength  = 6
	PhoneMinLength = 10
)

// CustomersPath is the listing path invalidated and redirected to after a
// successful customer mutation. Fixed, not configurable per call.
const CustomersPath = "/dashboard/customers"

// Customer represents a customer in the partner context.
// It is the aggregate root for customer-related operations.
type Customer struct {
	shared.BaseEntity
	Name     string
	Email    string
	Phone    string
	Address  string
	ImageURL string // avatar reference, defaulted at creation, never user-supplied
}

// NewCustomer creates a new customer. The avatar reference comes from
// configuration, not from the form.
func NewCustomer(name, email, phone, address, imageURL string) (*Customer, error) {
	if utf8.RuneCountInString(name) < NameMinLength {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name must be at least 6 characters")
	}
	if !emailRegex.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	if utf8.RuneCountInString(phone) < PhoneMinLength {
		return nil, shared.NewDomainError("INVALID_PHONE", "Customer phone must be at least 10 characters")
	}
	if address == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Customer address cannot be empty")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Address:    address,
		ImageURL:   imageURL,
	}, nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
