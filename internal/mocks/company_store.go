package mocks

import (
	"context"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/store"
)

// MockCompanyStore implements store.CompanyStore for testing
type MockCompanyStore struct {
	ListFn   func(ctx context.Context) ([]domain.Company, error)
	GetFn    func(ctx context.Context, code string) (*domain.Company, error)
	CreateFn func(ctx context.Context, company *domain.Company) (*domain.Company, error)
	UpdateFn func(ctx context.Context, code, name, description string) (*domain.Company, error)
	DeleteFn func(ctx context.Context, code string) error
}

var _ store.CompanyStore = (*MockCompanyStore)(nil)

// List implements store.CompanyStore
func (m *MockCompanyStore) List(ctx context.Context) ([]domain.Company, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Company{}, nil
}

// Get implements store.CompanyStore
func (m *MockCompanyStore) Get(ctx context.Context, code string) (*domain.Company, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, code)
	}
	return nil, nil
}

// Create implements store.CompanyStore
func (m *MockCompanyStore) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, company)
	}
	return company, nil
}

// Update implements store.CompanyStore
func (m *MockCompanyStore) Update(
	ctx context.Context,
	code, name, description string,
) (*domain.Company, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, code, name, description)
	}
	return &domain.Company{Code: code, Name: name, Description: description}, nil
}

// Delete implements store.CompanyStore
func (m *MockCompanyStore) Delete(ctx context.Context, code string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, code)
	}
	return nil
}
