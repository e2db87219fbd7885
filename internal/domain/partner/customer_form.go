package partner

import (
	"strings"
	"unicode/utf8"

	"github.com/acme/dashboard/internal/domain/shared"
)

// User-facing validation messages for the customer form
const (
	MsgNameTooShort  = "Name must be at least 6 characters long."
	MsgEmailInvalid  = "Please enter a valid email address."
	MsgPhoneTooShort = "Phone number must be at least 10 characters long."
	MsgAddressEmpty  = "Please enter an address."
)

// CustomerFormInput carries the raw string fields submitted by the customer
// form. Missing fields arrive as empty strings.
type CustomerFormInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CustomerForm is the typed result of a successfully validated customer form
type CustomerForm struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// ParseCustomerForm validates raw customer form input against the customer
// rules, returning either the typed form or a non-empty field-error map.
// It performs no I/O; malformed input always surfaces as field errors.
func ParseCustomerForm(in CustomerFormInput) (*CustomerForm, shared.FieldErrors) {
	errs := make(shared.FieldErrors)

	if utf8.RuneCountInString(in.Name) < NameMinLength {
		errs.Add("name", MsgNameTooShort)
	}
	if !emailRegex.MatchString(strings.TrimSpace(in.Email)) {
		errs.Add("email", MsgEmailInvalid)
	}
	if utf8.RuneCountInString(in.Phone) < PhoneMinLength {
		errs.Add("phone", MsgPhoneTooShort)
	}
	if strings.TrimSpace(in.Address) == "" {
		errs.Add("address", MsgAddressEmpty)
	}

	if errs.HasErrors() {
		return nil, errs
	}

	return &CustomerForm{
		Name:    in.Name,
		Email:   strings.TrimSpace(in.Email),
		Phone:   in.Phone,
		Address: in.Address,
	}, nil
}
