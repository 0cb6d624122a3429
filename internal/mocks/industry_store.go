package mocks

import (
	"context"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/store"
)

// MockIndustryStore implements store.IndustryStore for testing
type MockIndustryStore struct {
	ListFn            func(ctx context.Context) ([]domain.Industry, error)
	CreateFn          func(ctx context.Context, industry *domain.Industry) (*domain.Industry, error)
	AssignToCompanyFn func(ctx context.Context, companyCode, industryCode string) (*domain.Company, error)
}

var _ store.IndustryStore = (*MockIndustryStore)(nil)

// List implements store.IndustryStore
func (m *MockIndustryStore) List(ctx context.Context) ([]domain.Industry, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Industry{}, nil
}

// Create implements store.IndustryStore
func (m *MockIndustryStore) Create(ctx context.Context, industry *domain.Industry) (*domain.Industry, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, industry)
	}
	return industry, nil
}

// AssignToCompany implements store.IndustryStore
func (m *MockIndustryStore) AssignToCompany(
	ctx context.Context,
	companyCode, industryCode string,
) (*domain.Company, error) {
	if m.AssignToCompanyFn != nil {
		return m.AssignToCompanyFn(ctx, companyCode, industryCode)
	}
	return &domain.Company{Code: companyCode, Industry: &industryCode}, nil
}
