package mocks

import (
	"context"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/store"
	"github.com/shopspring/decimal"
)

// MockInvoiceStore implements store.InvoiceStore for testing
type MockInvoiceStore struct {
	ListFn   func(ctx context.Context) ([]domain.Invoice, error)
	GetFn    func(ctx context.Context, id int64) (*domain.InvoiceDetail, error)
	CreateFn func(ctx context.Context, compCode string, amt decimal.Decimal) (*domain.Invoice, error)
	UpdateFn func(ctx context.Context, id int64, amt decimal.Decimal, paid *bool) (*domain.Invoice, error)
	DeleteFn func(ctx context.Context, id int64) error
}

var _ store.InvoiceStore = (*MockInvoiceStore)(nil)

// List implements store.InvoiceStore
func (m *MockInvoiceStore) List(ctx context.Context) ([]domain.Invoice, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Invoice{}, nil
}

// Get implements store.InvoiceStore
func (m *MockInvoiceStore) Get(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// Create implements store.InvoiceStore
func (m *MockInvoiceStore) Create(
	ctx context.Context,
	compCode string,
	amt decimal.Decimal,
) (*domain.Invoice, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, compCode, amt)
	}
	return &domain.Invoice{CompCode: compCode, Amount: amt}, nil
}

// Update implements store.InvoiceStore
func (m *MockInvoiceStore) Update(
	ctx context.Context,
	id int64,
	amt decimal.Decimal,
	paid *bool,
) (*domain.Invoice, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, amt, paid)
	}
	invoice := &domain.Invoice{ID: id, Amount: amt}
	if paid != nil {
		invoice.Paid = *paid
	}
	return invoice, nil
}

// Delete implements store.InvoiceStore
func (m *MockInvoiceStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
