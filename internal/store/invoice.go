package store

import (
	"context"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/shopspring/decimal"
)

// InvoiceStore defines the interface for invoice persistence.
type InvoiceStore interface {
	// List returns every invoice ordered by ID.
	List(ctx context.Context) ([]domain.Invoice, error)

	// Get retrieves an invoice with its company's name and description.
	// Returns ErrInvoiceNotFound if the invoice does not exist.
	Get(ctx context.Context, id int64) (*domain.InvoiceDetail, error)

	// Create inserts a new unpaid invoice and returns the stored row.
	// Returns ErrInvalidEntity if the company does not exist.
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (*domain.Invoice, error)

	// Update sets the amount of an invoice and, when paid is non-nil, its
	// paid state. Paying an unpaid invoice stamps today's date as the paid
	// date; un-paying clears it.
	// Returns ErrInvoiceNotFound if the invoice does not exist.
	Update(ctx context.Context, id int64, amt decimal.Decimal, paid *bool) (*domain.Invoice, error)

	// Delete removes an invoice.
	// Returns ErrInvoiceNotFound if the invoice does not exist.
	Delete(ctx context.Context, id int64) error
}
