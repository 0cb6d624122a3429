package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
	"github.com/phrazzld/biztime-api/internal/redact"
	"github.com/phrazzld/biztime-api/internal/store"
)

// PostgresCompanyStore implements the store.CompanyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCompanyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCompanyStore creates a new PostgreSQL implementation of the CompanyStore interface.
// It accepts a database connection or transaction that is managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCompanyStore(db store.DBTX, logger *slog.Logger) *PostgresCompanyStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCompanyStore{
		db:     db,
		logger: logger.With(slog.String("component", "company_store")),
	}
}

// Ensure PostgresCompanyStore implements store.CompanyStore interface
var _ store.CompanyStore = (*PostgresCompanyStore)(nil)

// List implements store.CompanyStore.List
func (s *PostgresCompanyStore) List(ctx context.Context) ([]domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY code`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query companies", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("company", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	companies := []domain.Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			log.Error("failed to scan company row", slog.String("error", redact.Error(err)))
			return nil, store.NewStoreError("company", "list", "scan failed", err)
		}
		companies = append(companies, *company)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating company rows", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("company", "list", "row iteration failed", err)
	}

	log.Debug("listed companies", slog.Int("count", len(companies)))
	return companies, nil
}

// Get implements store.CompanyStore.Get
// Returns store.ErrCompanyNotFound if the company does not exist.
func (s *PostgresCompanyStore) Get(ctx context.Context, code string) (*domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving company by code", slog.String("company_code", code))

	query := `SELECT ` + companyColumns + ` FROM companies WHERE code = $1`

	company, err := scanCompany(s.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("company not found", slog.String("company_code", code))
			return nil, fmt.Errorf("%w: code %s", store.ErrCompanyNotFound, code)
		}
		log.Error("failed to get company",
			slog.String("error", redact.Error(err)),
			slog.String("company_code", code))
		return nil, store.NewStoreError("company", "get", "query failed", MapError(err))
	}

	return company, nil
}

// Create implements store.CompanyStore.Create
// It validates the company, inserts it and returns the stored row.
// Returns store.ErrCompanyExists if the code or name is already taken.
func (s *PostgresCompanyStore) Create(
	ctx context.Context,
	company *domain.Company,
) (*domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := company.Validate(); err != nil {
		log.Warn("company validation failed during create",
			slog.String("error", err.Error()),
			slog.String("company_name", company.Name))
		return nil, err
	}

	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING ` + companyColumns

	created, err := scanCompany(
		s.db.QueryRowContext(ctx, query, company.Code, company.Name, company.Description),
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("company already exists", slog.String("company_code", company.Code))
			return nil, MapUniqueViolation(err, store.ErrCompanyExists)
		}
		log.Error("failed to create company",
			slog.String("error", redact.Error(err)),
			slog.String("company_code", company.Code))
		return nil, store.NewStoreError("company", "create", "insert failed", MapError(err))
	}

	log.Info("company created successfully", slog.String("company_code", created.Code))
	return created, nil
}

// Update implements store.CompanyStore.Update
// Returns store.ErrCompanyNotFound if the company does not exist.
func (s *PostgresCompanyStore) Update(
	ctx context.Context,
	code, name, description string,
) (*domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3
		RETURNING ` + companyColumns

	updated, err := scanCompany(s.db.QueryRowContext(ctx, query, name, description, code))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			log.Debug("company not found for update", slog.String("company_code", code))
			return nil, fmt.Errorf("%w: code %s", store.ErrCompanyNotFound, code)
		case IsUniqueViolation(err):
			log.Debug("company name already taken", slog.String("company_code", code))
			return nil, MapUniqueViolation(err, store.ErrCompanyExists)
		}
		log.Error("failed to update company",
			slog.String("error", redact.Error(err)),
			slog.String("company_code", code))
		return nil, store.NewStoreError("company", "update", "update failed", MapError(err))
	}

	log.Info("company updated successfully", slog.String("company_code", code))
	return updated, nil
}

// Delete implements store.CompanyStore.Delete
// Invoices owned by the company are removed by the schema's cascade.
// Returns store.ErrCompanyNotFound if the company does not exist.
func (s *PostgresCompanyStore) Delete(ctx context.Context, code string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM companies WHERE code = $1 RETURNING code`

	var deleted string
	if err := s.db.QueryRowContext(ctx, query, code).Scan(&deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("company not found for deletion", slog.String("company_code", code))
			return fmt.Errorf("%w: code %s", store.ErrCompanyNotFound, code)
		}
		log.Error("failed to delete company",
			slog.String("error", redact.Error(err)),
			slog.String("company_code", code))
		return store.NewStoreError("company", "delete", "delete failed", MapError(err))
	}

	log.Info("company deleted successfully", slog.String("company_code", deleted))
	return nil
}
