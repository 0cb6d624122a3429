package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a keyed lookup or mutation matches no row.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an insert collides with an existing key.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when the database rejects a row because of
	// a constraint, e.g. an invoice for a company that does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrCompanyNotFound indicates that no company has the requested code.
	ErrCompanyNotFound = fmt.Errorf("%w: company", ErrNotFound)

	// ErrInvoiceNotFound indicates that no invoice has the requested ID.
	ErrInvoiceNotFound = fmt.Errorf("%w: invoice", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrCompanyExists indicates that a company with the same code or name exists.
	ErrCompanyExists = fmt.Errorf("%w: company", ErrDuplicate)

	// ErrIndustryExists indicates that an industry with the same code or label exists.
	ErrIndustryExists = fmt.Errorf("%w: industry", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError adds the entity and operation to an underlying store error.
type StoreError struct {
	Entity    string // The entity type (e.g., "company", "invoice")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
