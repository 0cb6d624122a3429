package store

import (
	"context"

	"github.com/phrazzld/biztime-api/internal/domain"
)

// CompanyStore defines the interface for company persistence.
type CompanyStore interface {
	// List returns every company ordered by code.
	// Returns an empty slice when there are none.
	List(ctx context.Context) ([]domain.Company, error)

	// Get retrieves a company by code.
	// Returns ErrCompanyNotFound if the company does not exist.
	Get(ctx context.Context, code string) (*domain.Company, error)

	// Create inserts a new company and returns the stored row.
	// Returns ErrCompanyExists if the code or name is already taken.
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)

	// Update replaces the name and description of an existing company.
	// Returns ErrCompanyNotFound if the company does not exist.
	Update(ctx context.Context, code, name, description string) (*domain.Company, error)

	// Delete removes a company.
	// Returns ErrCompanyNotFound if the company does not exist.
	Delete(ctx context.Context, code string) error
}
