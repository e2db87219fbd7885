package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/acme/dashboard/internal/domain/billing"
	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/acme/dashboard/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if inv := args.Get(0); inv != nil {
		return inv.(*billing.Invoice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInvoiceRepo) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *mockInvoiceRepo) Update(ctx context.Context, id uuid.UUID, upd billing.InvoiceUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *mockInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockInvoiceRepo) FindFiltered(ctx context.Context, filter shared.Filter) ([]billing.InvoiceRow, error) {
	args := m.Called(ctx, filter)
	if rows := args.Get(0); rows != nil {
		return rows.([]billing.InvoiceRow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInvoiceRepo) CountFiltered(ctx context.Context, search string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}

func newInvoiceFixture() (*mockInvoiceRepo, *cache.RecordingInvalidator, *InvoiceService) {
	repo := new(mockInvoiceRepo)
	invalidator := cache.NewRecordingInvalidator()
	service := NewInvoiceService(repo, invalidator, 6, nil)
	return repo, invalidator, service
}

func validInput() billing.InvoiceFormInput {
	return billing.InvoiceFormInput{
		CustomerID: uuid.NewString(),
		Amount:     "32.50",
		Status:     "paid",
		Note:       "Quarterly fees",
	}
}

func TestCreateInvoice_Success(t *testing.T) {
	repo, invalidator, service := newInvoiceFixture()
	in := validInput()

	repo.On("Save", mock.Anything, mock.MatchedBy(func(inv *billing.Invoice) bool {
		return inv.AmountCents == 3250 && inv.Status == billing.InvoiceStatusPaid &&
			inv.CustomerID.String() == in.CustomerID
	})).Return(nil)

	state := service.CreateInvoice(context.Background(), in)

	require.True(t, state.Succeeded())
	assert.Equal(t, billing.InvoicesPath, state.RedirectTo)
	assert.Equal(t, []string{billing.InvoicesPath}, invalidator.Paths())
	repo.AssertExpectations(t)
}

func TestCreateInvoice_InvalidInputPersistsNothing(t *testing.T) {
	repo, invalidator, service := newInvoiceFixture()

	state := service.CreateInvoice(context.Background(), billing.InvoiceFormInput{})

	assert.False(t, state.Succeeded())
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", state.Message)
	assert.True(t, state.Errors.HasErrors())
	assert.Empty(t, invalidator.Paths())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateInvoice_SaveFailure(t *testing.T) {
	repo, invalidator, service := newInvoiceFixture()
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	state := service.CreateInvoice(context.Background(), validInput())

	assert.False(t, state.Succeeded())
	assert.Equal(t, "Database Error: Failed to Create Invoice.", state.Message)
	assert.Empty(t, state.Errors)
	// no invalidation without a successful write
	assert.Empty(t, invalidator.Paths())
}

func TestCreateInvoice_MalformedCustomerID(t *testing.T) {
	repo, _, service := newInvoiceFixture()
	in := validInput()
	in.CustomerID = "not-a-uuid"

	state := service.CreateInvoice(context.Background(), in)

	assert.Equal(t, "Database Error: Failed to Create Invoice.", state.Message)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateInvoice_Success(t *testing.T) {
	repo, invalidator, service := newInvoiceFixture()
	id := uuid.New()
	in := validInput()
	customerID := uuid.MustParse(in.CustomerID)

	repo.On("Update", mock.Anything, id, billing.InvoiceUpdate{
		CustomerID:  customerID,
		AmountCents: 3250,
		Status:      billing.InvoiceStatusPaid,
		Note:        "Quarterly fees",
	}).Return(nil)

	state := service.UpdateInvoice(context.Background(), id, in)

	require.True(t, state.Succeeded())
	assert.Equal(t, billing.InvoicesPath, state.RedirectTo)
	assert.Equal(t, []string{billing.InvoicesPath}, invalidator.Paths())
	repo.AssertExpectations(t)
}

func TestUpdateInvoice_Invalid(t *testing.T) {
	repo, _, service := newInvoiceFixture()

	state := service.UpdateInvoice(context.Background(), uuid.New(), billing.InvoiceFormInput{})

	assert.Equal(t, "Missing Fields. Failed to Update Invoice.", state.Message)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateInvoice_RepoFailure(t *testing.T) {
	repo, invalidator, service := newInvoiceFixture()
	repo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("deadlock"))

	state := service.UpdateInvoice(context.Background(), uuid.New(), validInput())

	assert.Equal(t, "Database Error: Failed to Update Invoice.", state.Message)
	assert.Empty(t, invalidator.Paths())
}

func TestDeleteInvoice_SwallowsFailure(t *testing.T) {
	repo, invalidator, service := newInvoiceFixture()
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(errors.New("connection reset"))

	service.DeleteInvoice(context.Background(), id)

	// invalidation happens whether or not the delete went through
	assert.Equal(t, []string{billing.InvoicesPath}, invalidator.Paths())
	repo.AssertExpectations(t)
}

func TestDeleteInvoice_Success(t *testing.T) {
	repo, invalidator, service := newInvoiceFixture()
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)

	service.DeleteInvoice(context.Background(), id)

	assert.Equal(t, []string{billing.InvoicesPath}, invalidator.Paths())
}

func TestFetchFilteredInvoices(t *testing.T) {
	repo, _, service := newInvoiceFixture()
	rows := []billing.InvoiceRow{{ID: uuid.New(), CustomerName: "Amy Burns"}}

	repo.On("FindFiltered", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 3 && f.PageSize == 6 && f.Search == "amy"
	})).Return(rows, nil)
	repo.On("CountFiltered", mock.Anything, "amy").Return(int64(13), nil)

	got, err := service.FetchFilteredInvoices(context.Background(), "amy", 3)

	require.NoError(t, err)
	assert.Equal(t, rows, got.Items)
	assert.Equal(t, int64(13), got.Total)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 6, got.PageSize)
	assert.Equal(t, 3, got.TotalPages)
}

func TestFetchFilteredInvoices_ClampsPage(t *testing.T) {
	repo, _, service := newInvoiceFixture()
	repo.On("FindFiltered", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 1
	})).Return([]billing.InvoiceRow{}, nil)
	repo.On("CountFiltered", mock.Anything, "").Return(int64(0), nil)

	_, err := service.FetchFilteredInvoices(context.Background(), "", 0)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestFetchFilteredInvoicesPages(t *testing.T) {
	repo, _, service := newInvoiceFixture()
	repo.On("CountFiltered", mock.Anything, "pending").Return(int64(13), nil)

	pages, err := service.FetchFilteredInvoicesPages(context.Background(), "pending")

	require.NoError(t, err)
	assert.Equal(t, 3, pages)
}
