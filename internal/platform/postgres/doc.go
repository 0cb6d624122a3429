// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store, together with the embedded goose
// migrations that create the companies, industries and invoices tables.
// Every store method issues a single parameterized statement through a
// store.DBTX and translates driver errors into store sentinels.
package postgres
