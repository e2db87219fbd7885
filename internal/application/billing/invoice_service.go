package billing

import (
	"context"

	"github.com/acme/dashboard/internal/domain/billing"
	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Summary messages returned to the form on a failed invoice mutation
const (
	msgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	msgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	msgCreateDBError       = "Database Error: Failed to Create Invoice."
	msgUpdateDBError       = "Database Error: Failed to Update Invoice."
)

// InvoiceService orchestrates the invoice mutations (validate, persist,
// invalidate, redirect) and the filtered invoice listing reads.
type InvoiceService struct {
	invoices    billing.InvoiceRepository
	invalidator shared.ListingInvalidator
	logger      *zap.Logger
	pageSize    int
}

// NewInvoiceService creates a new InvoiceService. pageSize governs the
// listing reads only.
func NewInvoiceService(invoices billing.InvoiceRepository, invalidator shared.ListingInvalidator, pageSize int, logger *zap.Logger) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		invoices:    invoices,
		invalidator: invalidator,
		logger:      logger,
		pageSize:    pageSize,
	}
}

// CreateInvoice validates the submitted form and inserts a new invoice.
// Side effects are strictly ordered: nothing is persisted on invalid input,
// the listing cache is invalidated only after a successful insert, and the
// redirect is issued last. Persistence failures are logged in full and
// surfaced only as a generic message.
func (s *InvoiceService) CreateInvoice(ctx context.Context, in billing.InvoiceFormInput) shared.ActionState {
	form, errs := billing.ParseInvoiceForm(in)
	if errs.HasErrors() {
		return shared.Invalid(errs, msgCreateMissingFields)
	}

	customerID, err := uuid.Parse(form.CustomerID)
	if err != nil {
		// A malformed reference is the store's concern, not the form's: the
		// customer picker only ever posts real ids.
		s.logger.Error("Failed to create invoice", zap.String("customer_id", form.CustomerID), zap.Error(err))
		return shared.Failed(msgCreateDBError)
	}

	invoice, err := billing.NewInvoice(customerID, form.AmountCents, form.Status, form.Note)
	if err != nil {
		s.logger.Error("Failed to create invoice", zap.Error(err))
		return shared.Failed(msgCreateDBError)
	}

	if err := s.invoices.Save(ctx, invoice); err != nil {
		s.logger.Error("Failed to create invoice",
			zap.String("customer_id", customerID.String()),
			zap.Error(err))
		return shared.Failed(msgCreateDBError)
	}

	s.invalidator.Invalidate(ctx, billing.InvoicesPath)
	return shared.Redirect(billing.InvoicesPath)
}

// UpdateInvoice validates the submitted form and rewrites the mutable fields
// of the invoice with the given id. The creation date is never touched.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, in billing.InvoiceFormInput) shared.ActionState {
	form, errs := billing.ParseInvoiceForm(in)
	if errs.HasErrors() {
		return shared.Invalid(errs, msgUpdateMissingFields)
	}

	customerID, err := uuid.Parse(form.CustomerID)
	if err != nil {
		s.logger.Error("Failed to update invoice",
			zap.String("invoice_id", id.String()),
			zap.String("customer_id", form.CustomerID),
			zap.Error(err))
		return shared.Failed(msgUpdateDBError)
	}

	upd := billing.InvoiceUpdate{
		CustomerID:  customerID,
		AmountCents: form.AmountCents,
		Status:      form.Status,
		Note:        form.Note,
	}
	if err := s.invoices.Update(ctx, id, upd); err != nil {
		s.logger.Error("Failed to update invoice",
			zap.String("invoice_id", id.String()),
			zap.Error(err))
		return shared.Failed(msgUpdateDBError)
	}

	s.invalidator.Invalidate(ctx, billing.InvoicesPath)
	return shared.Redirect(billing.InvoicesPath)
}

// DeleteInvoice removes an invoice best-effort. A failed delete is logged and
// swallowed, and the listing cache is invalidated unconditionally afterwards:
// callers cannot distinguish success from failure and must not rely on one.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) {
	if err := s.invoices.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete invoice",
			zap.String("invoice_id", id.String()),
			zap.Error(err))
	}
	s.invalidator.Invalidate(ctx, billing.InvoicesPath)
}

// FetchFilteredInvoices returns one page of invoice listing rows matching the
// search term, wrapped in the pagination envelope. A page beyond the last
// yields an empty page, never an error.
func (s *InvoiceService) FetchFilteredInvoices(ctx context.Context, query string, page int) (shared.Paginated[billing.InvoiceRow], error) {
	if page < 1 {
		page = 1
	}
	filter := shared.Filter{
		Page:     page,
		PageSize: s.pageSize,
		Search:   query,
		OrderBy:  "date",
		OrderDir: "desc",
	}
	rows, err := s.invoices.FindFiltered(ctx, filter)
	if err != nil {
		return shared.Paginated[billing.InvoiceRow]{}, err
	}
	total, err := s.invoices.CountFiltered(ctx, query)
	if err != nil {
		return shared.Paginated[billing.InvoiceRow]{}, err
	}
	return shared.NewPaginated(rows, total, page, s.pageSize), nil
}

// FetchFilteredInvoicesPages returns the total number of listing pages for
// the search term.
func (s *InvoiceService) FetchFilteredInvoicesPages(ctx context.Context, query string) (int, error) {
	total, err := s.invoices.CountFiltered(ctx, query)
	if err != nil {
		return 0, err
	}
	return shared.TotalPages(total, s.pageSize), nil
}

// GetInvoice fetches a single invoice for edit-form prefill
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	return s.invoices.FindByID(ctx, id)
}
