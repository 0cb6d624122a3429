package postgres

import (
	"database/sql"
	"time"

	"github.com/phrazzld/biztime-api/internal/domain"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// Column lists shared by the statements that return full rows.
const (
	companyColumns = "code, name, description, industry"
	invoiceColumns = "id, comp_code, amt, paid, add_date, paid_date"
)

func scanCompany(row rowScanner) (*domain.Company, error) {
	var company domain.Company
	var industry sql.NullString

	if err := row.Scan(&company.Code, &company.Name, &company.Description, &industry); err != nil {
		return nil, err
	}
	if industry.Valid {
		company.Industry = &industry.String
	}
	return &company, nil
}

func scanInvoice(row rowScanner, extra ...any) (*domain.Invoice, error) {
	var invoice domain.Invoice
	var paidDate sql.NullTime

	dest := []any{
		&invoice.ID,
		&invoice.CompCode,
		&invoice.Amount,
		&invoice.Paid,
		&invoice.AddDate,
		&paidDate,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	invoice.PaidDate = nullTimePtr(paidDate)
	return &invoice, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
