package testdb

import (
	"context"
	"testing"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// InsertIndustry inserts an industry row directly.
func InsertIndustry(t *testing.T, db store.DBTX, code, label string) domain.Industry {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO industries (code, industry) VALUES ($1, $2)`, code, label)
	require.NoError(t, err, "Failed to insert industry %s", code)

	return domain.Industry{Code: code, Industry: label}
}

// InsertCompany inserts a company row directly, bypassing slug generation.
func InsertCompany(t *testing.T, db store.DBTX, code, name, description string) domain.Company {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO companies (code, name, description) VALUES ($1, $2, $3)`,
		code, name, description)
	require.NoError(t, err, "Failed to insert company %s", code)

	return domain.Company{Code: code, Name: name, Description: description}
}

// InsertInvoice inserts an invoice with an explicit ID and returns that ID.
func InsertInvoice(t *testing.T, db store.DBTX, id int64, compCode string, amt int64) int64 {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO invoices (id, comp_code, amt) VALUES ($1, $2, $3)`,
		id, compCode, decimal.NewFromInt(amt))
	require.NoError(t, err, "Failed to insert invoice %d", id)

	return id
}

// CountRows returns the number of rows in table. table must be a trusted identifier.
func CountRows(t *testing.T, db store.DBTX, table string) int {
	t.Helper()

	var n int
	err := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n)
	require.NoError(t, err, "Failed to count rows in %s", table)

	return n
}
