// Package store defines the persistence interfaces for companies, industries
// and invoices, together with the sentinel errors every implementation
// returns. Each store method corresponds to exactly one SQL statement; there
// is no unit-of-work or transaction abstraction.
package store
