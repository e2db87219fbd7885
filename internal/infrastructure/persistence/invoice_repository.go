package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/acme/dashboard/internal/domain/billing"
	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/acme/dashboard/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements billing.InvoiceRepository on GORM.
type GormInvoiceRepository struct {
	db *gorm.DB
}

func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("find invoice: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	// The aggregate assigns its id up front, so this must be an upsert: a
	// plain Save would turn a fresh insert into a zero-row update.
	model := models.InvoiceFromDomain(invoice)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
		return fmt.Errorf("save invoice: %w", err)
	}
	return nil
}

func (r *GormInvoiceRepository) Update(ctx context.Context, id uuid.UUID, upd billing.InvoiceUpdate) error {
	// A scoped column update so the date and created_at never change.
	// Zero matched rows is fine.
	err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id":  upd.CustomerID,
			"amount_cents": upd.AmountCents,
			"status":       string(upd.Status),
			"note":         upd.Note,
		}).Error
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.InvoiceModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// listingQuery builds the invoice/customer join shared by the listing read
// and its count. LOWER(...) LIKE keeps the match case-insensitive on every
// backend, not just PostgreSQL.
func (r *GormInvoiceRepository) listingQuery(ctx context.Context, search string) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Joins("JOIN customers ON customers.id = invoices.customer_id")
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where(
			"LOWER(customers.name) LIKE LOWER(?) OR LOWER(customers.email) LIKE LOWER(?) OR LOWER(invoices.status) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	return q
}

func (r *GormInvoiceRepository) FindFiltered(ctx context.Context, filter shared.Filter) ([]billing.InvoiceRow, error) {
	orderBy := "invoices.date"
	if filter.OrderBy == "amount" {
		orderBy = "invoices.amount_cents"
	}
	dir := "DESC"
	if filter.OrderDir == "asc" {
		dir = "ASC"
	}

	var rows []billing.InvoiceRow
	err := r.listingQuery(ctx, filter.Search).
		Select(
			"invoices.id, invoices.customer_id, customers.name AS customer_name, " +
				"customers.email AS customer_email, customers.image_url AS image_url, " +
				"invoices.amount_cents, invoices.status, invoices.date, invoices.note",
		).
		Order(fmt.Sprintf("%s %s, invoices.id", orderBy, dir)).
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return rows, nil
}

func (r *GormInvoiceRepository) CountFiltered(ctx context.Context, search string) (int64, error) {
	var count int64
	if err := r.listingQuery(ctx, search).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}
