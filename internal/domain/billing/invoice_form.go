package billing

import (
	"strings"

	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// User-facing validation messages for the invoice form
const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountTooSmall = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
	MsgNoteTooLong    = "Note must be less than 500 characters long."
)

// InvoiceFormInput carries the raw string fields submitted by the invoice
// form. Missing fields arrive as empty strings; unknown fields are dropped at
// the binding layer.
type InvoiceFormInput struct {
	CustomerID string
	Amount     string
	Status     string
	Note       string
}

// InvoiceForm is the typed result of a successfully validated invoice form.
// The amount has already been converted to cents. CustomerID stays opaque:
// whether it references an existing customer is enforced by the store.
type InvoiceForm struct {
	CustomerID  string
	AmountCents int64
	Status      InvoiceStatus
	Note        string
}

// ParseInvoiceForm validates raw invoice form input against the invoice
// rules. It returns either the typed form or a non-empty field-error map,
// never both. It performs no I/O and never fails for malformed input; all
// malformedness is reported as field errors.
//
// A non-numeric amount is deliberately indistinguishable from a non-positive
// one: coercion happens before the bound check and both surface the same
// message.
func ParseInvoiceForm(in InvoiceFormInput) (*InvoiceForm, shared.FieldErrors) {
	errs := make(shared.FieldErrors)

	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		errs.Add("customerId", MsgSelectCustomer)
	}

	var amountCents int64
	amount, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	if err != nil || !amount.IsPositive() {
		errs.Add("amount", MsgAmountTooSmall)
	} else {
		amountCents = amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}

	status := InvoiceStatus(in.Status)
	if status != InvoiceStatusPending && status != InvoiceStatusPaid {
		errs.Add("status", MsgSelectStatus)
	}

	if in.Note == "" || len(in.Note) > NoteMaxLength {
		errs.Add("note", MsgNoteTooLong)
	}

	if errs.HasErrors() {
		return nil, errs
	}

	return &InvoiceForm{
		CustomerID:  customerID,
		AmountCents: amountCents,
		Status:      status,
		Note:        in.Note,
	}, nil
}
