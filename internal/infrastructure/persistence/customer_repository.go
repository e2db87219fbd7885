package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/acme/dashboard/internal/domain/partner"
	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/acme/dashboard/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements partner.CustomerRepository on GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	// Upsert keyed on the pre-assigned aggregate id.
	model := models.CustomerFromDomain(customer)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
		return fmt.Errorf("save customer: %w", err)
	}
	return nil
}

func (r *GormCustomerRepository) searchScope(ctx context.Context, search string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.CustomerModel{})
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", pattern, pattern)
	}
	return q
}

func (r *GormCustomerRepository) FindFiltered(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	var rows []models.CustomerModel
	err := r.searchScope(ctx, filter.Search).
		Order("name ASC").
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	customers := make([]partner.Customer, len(rows))
	for i := range rows {
		customers[i] = *rows[i].ToDomain()
	}
	return customers, nil
}

func (r *GormCustomerRepository) CountFiltered(ctx context.Context, search string) (int64, error) {
	var count int64
	if err := r.searchScope(ctx, search).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}
