package dto

import (
	"time"

	"github.com/acme/dashboard/internal/domain/billing"
	"github.com/acme/dashboard/internal/domain/partner"
	"github.com/acme/dashboard/internal/domain/shared"
)

// InvoiceFormRequest is the invoice create/update form payload. Every field
// arrives as a string; coercion and validation happen in the domain parser.
type InvoiceFormRequest struct {
	CustomerID string `json:"customerId" form:"customerId"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
	Note       string `json:"note" form:"note"`
}

// ToInput maps the request onto the domain form input
func (r InvoiceFormRequest) ToInput() billing.InvoiceFormInput {
	return billing.InvoiceFormInput{
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Status:     r.Status,
		Note:       r.Note,
	}
}

// CustomerFormRequest is the customer create form payload
type CustomerFormRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
}

// ToInput maps the request onto the domain form input
func (r CustomerFormRequest) ToInput() partner.CustomerFormInput {
	return partner.CustomerFormInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// ListingRequest carries the search term and page for a filtered listing
type ListingRequest struct {
	Query string `form:"query"`
	Page  int    `form:"page,default=1"`
}

// LoginRequest is the sign-in form payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ActionStateResponse is the JSON shape of a failed mutation outcome
type ActionStateResponse struct {
	Errors  shared.FieldErrors `json:"errors,omitempty"`
	Message string             `json:"message,omitempty"`
}

// NewActionStateResponse maps a failed action state
func NewActionStateResponse(state shared.ActionState) ActionStateResponse {
	return ActionStateResponse{
		Errors:  state.Errors,
		Message: state.Message,
	}
}

// InvoiceResponse is a single invoice as returned to the edit form
type InvoiceResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Note        string `json:"note"`
}

// NewInvoiceResponse maps a domain invoice
func NewInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID.String(),
		CustomerID:  inv.CustomerID.String(),
		AmountCents: inv.AmountCents,
		Status:      string(inv.Status),
		Date:        inv.Date.Format("2006-01-02"),
		Note:        inv.Note,
	}
}

// InvoiceRowResponse is one row of the invoices listing
type InvoiceRowResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"name"`
	CustomerEmail string `json:"email"`
	ImageURL      string `json:"image_url"`
	AmountCents   int64  `json:"amount_cents"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	Note          string `json:"note"`
}

// NewInvoiceRowResponse maps a listing row
func NewInvoiceRowResponse(row billing.InvoiceRow) InvoiceRowResponse {
	return InvoiceRowResponse{
		ID:            row.ID.String(),
		CustomerID:    row.CustomerID.String(),
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		ImageURL:      row.ImageURL,
		AmountCents:   row.AmountCents,
		Status:        string(row.Status),
		Date:          row.Date.Format("2006-01-02"),
		Note:          row.Note,
	}
}

// NewInvoiceRowResponses maps a page of listing rows
func NewInvoiceRowResponses(rows []billing.InvoiceRow) []InvoiceRowResponse {
	out := make([]InvoiceRowResponse, len(rows))
	for i, row := range rows {
		out[i] = NewInvoiceRowResponse(row)
	}
	return out
}

// CustomerResponse is one row of the customers listing
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomerResponse maps a domain customer
func NewCustomerResponse(c partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		ImageURL:  c.ImageURL,
		CreatedAt: c.CreatedAt,
	}
}

// NewCustomerResponses maps a page of customers
func NewCustomerResponses(customers []partner.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = NewCustomerResponse(c)
	}
	return out
}
