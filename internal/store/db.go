package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the query methods shared by *sql.DB and *sql.Tx, so stores
// can run against the connection pool in production and inside a
// rolled-back transaction in integration tests.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
