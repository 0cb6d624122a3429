package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/biztime-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// migrateOnce guards schema setup so it runs once per test binary.
var (
	migrateOnce sync.Once
	migrateErr  error
)

// GetTestDatabaseURL returns the database URL for tests.
// It checks DATABASE_URL and BIZTIME_TEST_DB_URL in that order.
func GetTestDatabaseURL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("BIZTIME_TEST_DB_URL")
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDBWithT returns a migrated database connection for testing.
// It skips the test if no database URL is configured and closes the
// connection when the test finishes.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL or BIZTIME_TEST_DB_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Database ping failed")

	t.Cleanup(func() {
		CleanupDB(t, db)
	})

	SetupTestDatabaseSchema(t, db)

	return db
}

// SetupTestDatabaseSchema applies the embedded migrations once per process.
func SetupTestDatabaseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	migrateOnce.Do(func() {
		goose.SetLogger(&testGooseLogger{t: t})
		goose.SetBaseFS(postgres.Migrations)
		defer goose.SetBaseFS(nil)

		if err := goose.SetDialect("postgres"); err != nil {
			migrateErr = fmt.Errorf("failed to set goose dialect: %w", err)
			return
		}
		if err := goose.Up(db, postgres.MigrationsDir); err != nil {
			migrateErr = fmt.Errorf("failed to run migrations: %w", err)
		}
	})

	require.NoError(t, migrateErr, "Failed to set up test database schema")
}

// WithTx runs fn inside a transaction that is always rolled back, so each
// test sees a clean database regardless of what it writes.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		// sql.ErrTxDone is expected if tx is already committed or rolled back
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// CleanupDB closes a database connection, logging any error.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}

	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}

// testGooseLogger routes goose output to the test log.
type testGooseLogger struct {
	t *testing.T
}

// Printf implements goose.Logger.
func (l *testGooseLogger) Printf(format string, v ...interface{}) {
	l.t.Log("Goose: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf implements goose.Logger.
func (l *testGooseLogger) Fatalf(format string, v ...interface{}) {
	l.t.Fatal("Goose fatal error: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}
