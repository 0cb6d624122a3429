// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database: connection setup from DATABASE_URL, schema migration
// from the embedded goose files, per-test transactions that are always
// rolled back, and fixture inserts for companies, industries and invoices.
//
// Tests using this package should carry the integration build tag and call
// GetTestDBWithT, which skips the test when no database is configured.
package testdb
