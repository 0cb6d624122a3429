package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors for Invoice
var (
	ErrEmptyInvoiceCompany = errors.New("invoice company code cannot be empty")
)

// Invoice is an amount billed to a company.
type Invoice struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amount   decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceDetail is an invoice together with the name and description of
// the company it is billed to.
type InvoiceDetail struct {
	Invoice
	CompanyName        string `json:"name"`
	CompanyDescription string `json:"description"`
}

// invoiceJSON is the wire form of Invoice. Amounts are written as JSON
// numbers, e.g. {"amt": 500}.
type invoiceJSON struct {
	ID       int64       `json:"id"`
	CompCode string      `json:"comp_code"`
	Amount   json.Number `json:"amt"`
	Paid     bool        `json:"paid"`
	AddDate  time.Time   `json:"add_date"`
	PaidDate *time.Time  `json:"paid_date"`
}

func (i Invoice) wire() invoiceJSON {
	return invoiceJSON{
		ID:       i.ID,
		CompCode: i.CompCode,
		Amount:   json.Number(i.Amount.String()),
		Paid:     i.Paid,
		AddDate:  i.AddDate,
		PaidDate: i.PaidDate,
	}
}

// MarshalJSON implements json.Marshaler.
func (i Invoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.wire())
}

// MarshalJSON implements json.Marshaler, flattening the company fields next
// to the invoice fields.
func (d InvoiceDetail) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		invoiceJSON
		CompanyName        string `json:"name"`
		CompanyDescription string `json:"description"`
	}{
		invoiceJSON:        d.Invoice.wire(),
		CompanyName:        d.CompanyName,
		CompanyDescription: d.CompanyDescription,
	})
}

// Validate checks if the Invoice has valid data. Amount rules are left to
// the schema.
func (i *Invoice) Validate() error {
	if i.CompCode == "" {
		return NewValidationError("comp_code", "is required", ErrEmptyInvoiceCompany)
	}
	return nil
}
