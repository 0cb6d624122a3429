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
	"github.com/shopspring/decimal"
)

// PostgresInvoiceStore implements the store.InvoiceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresInvoiceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresInvoiceStore creates a new PostgreSQL implementation of the InvoiceStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresInvoiceStore(db store.DBTX, logger *slog.Logger) *PostgresInvoiceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresInvoiceStore{
		db:     db,
		logger: logger.With(slog.String("component", "invoice_store")),
	}
}

// Ensure PostgresInvoiceStore implements store.InvoiceStore interface
var _ store.InvoiceStore = (*PostgresInvoiceStore)(nil)

// List implements store.InvoiceStore.List
func (s *PostgresInvoiceStore) List(ctx context.Context) ([]domain.Invoice, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query invoices", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("invoice", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	invoices := []domain.Invoice{}
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			log.Error("failed to scan invoice row", slog.String("error", redact.Error(err)))
			return nil, store.NewStoreError("invoice", "list", "scan failed", err)
		}
		invoices = append(invoices, *invoice)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating invoice rows", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("invoice", "list", "row iteration failed", err)
	}

	log.Debug("listed invoices", slog.Int("count", len(invoices)))
	return invoices, nil
}

// Get implements store.InvoiceStore.Get
// The owning company's name and description are joined into the result.
// Returns store.ErrInvoiceNotFound if the invoice does not exist.
func (s *PostgresInvoiceStore) Get(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving invoice by ID", slog.Int64("invoice_id", id))

	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		       c.name, c.description
		FROM invoices AS i
		JOIN companies AS c ON c.code = i.comp_code
		WHERE i.id = $1
	`

	var detail domain.InvoiceDetail
	invoice, err := scanInvoice(
		s.db.QueryRowContext(ctx, query, id),
		&detail.CompanyName,
		&detail.CompanyDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("invoice not found", slog.Int64("invoice_id", id))
			return nil, fmt.Errorf("%w: id %d", store.ErrInvoiceNotFound, id)
		}
		log.Error("failed to get invoice",
			slog.String("error", redact.Error(err)),
			slog.Int64("invoice_id", id))
		return nil, store.NewStoreError("invoice", "get", "query failed", MapError(err))
	}

	detail.Invoice = *invoice
	return &detail, nil
}

// Create implements store.InvoiceStore.Create
// Returns store.ErrInvalidEntity if the company does not exist.
func (s *PostgresInvoiceStore) Create(
	ctx context.Context,
	compCode string,
	amt decimal.Decimal,
) (*domain.Invoice, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	candidate := domain.Invoice{CompCode: compCode, Amount: amt}
	if err := candidate.Validate(); err != nil {
		log.Warn("invoice validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + invoiceColumns

	invoice, err := scanInvoice(s.db.QueryRowContext(ctx, query, compCode, amt))
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("company not found for invoice creation",
				slog.String("company_code", compCode))
			return nil, fmt.Errorf("%w: company with code %s not found",
				store.ErrInvalidEntity, compCode)
		}
		log.Error("failed to create invoice",
			slog.String("error", redact.Error(err)),
			slog.String("company_code", compCode))
		return nil, store.NewStoreError("invoice", "create", "insert failed", MapError(err))
	}

	log.Info("invoice created successfully",
		slog.Int64("invoice_id", invoice.ID),
		slog.String("company_code", compCode))
	return invoice, nil
}

// updateInvoiceQuery sets the amount and, when $2 is non-null, the paid flag.
// Paying an unpaid invoice stamps paid_date; un-paying clears it.
// Column references on the right-hand side see the pre-update row.
const updateInvoiceQuery = `
	UPDATE invoices
	SET amt = $1,
	    paid = COALESCE($2::boolean, paid),
	    paid_date = CASE
	        WHEN $2::boolean IS NULL THEN paid_date
	        WHEN $2::boolean AND NOT paid THEN CURRENT_DATE
	        WHEN NOT $2::boolean THEN NULL
	        ELSE paid_date
	    END
	WHERE id = $3
	RETURNING ` + invoiceColumns

// Update implements store.InvoiceStore.Update
// Returns store.ErrInvoiceNotFound if the invoice does not exist.
func (s *PostgresInvoiceStore) Update(
	ctx context.Context,
	id int64,
	amt decimal.Decimal,
	paid *bool,
) (*domain.Invoice, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	invoice, err := scanInvoice(s.db.QueryRowContext(ctx, updateInvoiceQuery, amt, paid, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("invoice not found for update", slog.Int64("invoice_id", id))
			return nil, fmt.Errorf("%w: id %d", store.ErrInvoiceNotFound, id)
		}
		log.Error("failed to update invoice",
			slog.String("error", redact.Error(err)),
			slog.Int64("invoice_id", id))
		return nil, store.NewStoreError("invoice", "update", "update failed", MapError(err))
	}

	log.Info("invoice updated successfully",
		slog.Int64("invoice_id", id),
		slog.Bool("paid", invoice.Paid))
	return invoice, nil
}

// Delete implements store.InvoiceStore.Delete
// Returns store.ErrInvoiceNotFound if the invoice does not exist.
func (s *PostgresInvoiceStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deleted int64
	err := s.db.QueryRowContext(ctx, `DELETE FROM invoices WHERE id = $1 RETURNING id`, id).
		Scan(&deleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("invoice not found for deletion", slog.Int64("invoice_id", id))
			return fmt.Errorf("%w: id %d", store.ErrInvoiceNotFound, id)
		}
		log.Error("failed to delete invoice",
			slog.String("error", redact.Error(err)),
			slog.Int64("invoice_id", id))
		return store.NewStoreError("invoice", "delete", "delete failed", MapError(err))
	}

	log.Info("invoice deleted successfully", slog.Int64("invoice_id", deleted))
	return nil
}
