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

// PostgresIndustryStore implements the store.IndustryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresIndustryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresIndustryStore creates a new PostgreSQL implementation of the IndustryStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresIndustryStore(db store.DBTX, logger *slog.Logger) *PostgresIndustryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresIndustryStore{
		db:     db,
		logger: logger.With(slog.String("component", "industry_store")),
	}
}

// Ensure PostgresIndustryStore implements store.IndustryStore interface
var _ store.IndustryStore = (*PostgresIndustryStore)(nil)

// List implements store.IndustryStore.List
func (s *PostgresIndustryStore) List(ctx context.Context) ([]domain.Industry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT code, industry FROM industries ORDER BY code`)
	if err != nil {
		log.Error("failed to query industries", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("industry", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	industries := []domain.Industry{}
	for rows.Next() {
		var industry domain.Industry
		if err := rows.Scan(&industry.Code, &industry.Industry); err != nil {
			log.Error("failed to scan industry row", slog.String("error", redact.Error(err)))
			return nil, store.NewStoreError("industry", "list", "scan failed", err)
		}
		industries = append(industries, industry)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating industry rows", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("industry", "list", "row iteration failed", err)
	}

	log.Debug("listed industries", slog.Int("count", len(industries)))
	return industries, nil
}

// Create implements store.IndustryStore.Create
// Returns store.ErrIndustryExists if the code or label is already taken.
func (s *PostgresIndustryStore) Create(
	ctx context.Context,
	industry *domain.Industry,
) (*domain.Industry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := industry.Validate(); err != nil {
		log.Warn("industry validation failed during create",
			slog.String("error", err.Error()),
			slog.String("industry_code", industry.Code))
		return nil, err
	}

	query := `
		INSERT INTO industries (code, industry)
		VALUES ($1, $2)
		RETURNING code, industry
	`

	var created domain.Industry
	err := s.db.QueryRowContext(ctx, query, industry.Code, industry.Industry).
		Scan(&created.Code, &created.Industry)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("industry already exists", slog.String("industry_code", industry.Code))
			return nil, MapUniqueViolation(err, store.ErrIndustryExists)
		}
		log.Error("failed to create industry",
			slog.String("error", redact.Error(err)),
			slog.String("industry_code", industry.Code))
		return nil, store.NewStoreError("industry", "create", "insert failed", MapError(err))
	}

	log.Info("industry created successfully", slog.String("industry_code", created.Code))
	return &created, nil
}

// AssignToCompany implements store.IndustryStore.AssignToCompany
// Returns store.ErrCompanyNotFound if the company does not exist and
// store.ErrInvalidEntity if the industry does not exist.
func (s *PostgresIndustryStore) AssignToCompany(
	ctx context.Context,
	companyCode, industryCode string,
) (*domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE companies
		SET industry = $1
		WHERE code = $2
		RETURNING ` + companyColumns

	company, err := scanCompany(s.db.QueryRowContext(ctx, query, industryCode, companyCode))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			log.Debug("company not found for industry assignment",
				slog.String("company_code", companyCode))
			return nil, fmt.Errorf("%w: code %s", store.ErrCompanyNotFound, companyCode)
		case IsForeignKeyViolation(err):
			log.Debug("industry not found for assignment",
				slog.String("industry_code", industryCode))
			return nil, fmt.Errorf("%w: industry with code %s not found",
				store.ErrInvalidEntity, industryCode)
		}
		log.Error("failed to assign industry",
			slog.String("error", redact.Error(err)),
			slog.String("company_code", companyCode),
			slog.String("industry_code", industryCode))
		return nil, store.NewStoreError("industry", "assign", "update failed", MapError(err))
	}

	log.Info("industry assigned to company",
		slog.String("company_code", companyCode),
		slog.String("industry_code", industryCode))
	return company, nil
}
