package store

import (
	"context"

	"github.com/phrazzld/biztime-api/internal/domain"
)

// IndustryStore defines the interface for industry persistence.
type IndustryStore interface {
	// List returns every industry ordered by code.
	List(ctx context.Context) ([]domain.Industry, error)

	// Create inserts a new industry and returns the stored row.
	// Returns ErrIndustryExists if the code or label is already taken.
	Create(ctx context.Context, industry *domain.Industry) (*domain.Industry, error)

	// AssignToCompany sets the industry of the company identified by
	// companyCode and returns the updated company.
	// Returns ErrCompanyNotFound if the company does not exist and
	// ErrInvalidEntity if the industry does not exist.
	AssignToCompany(ctx context.Context, companyCode, industryCode string) (*domain.Company, error)
}
