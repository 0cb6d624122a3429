package postgres

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// newMockDB returns a sqlmock-backed *sql.DB whose expectations are checked
// when the test finishes.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return db, mock
}

var (
	companyRowColumns = []string{"code", "name", "description", "industry"}
	invoiceRowColumns = []string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}
)
