package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/biztime-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	genericErr := errors.New("connection reset by peer")

	tests := []struct {
		name          string
		err           error
		expectedError error
		expectedMsg   string
	}{
		{
			name:          "nil_error",
			err:           nil,
			expectedError: nil,
		},
		{
			name:          "sql_no_rows",
			err:           sql.ErrNoRows,
			expectedError: store.ErrNotFound,
		},
		{
			name: "unique_violation",
			err: &pgconn.PgError{
				Code:           uniqueViolationCode,
				ConstraintName: "companies_pkey",
			},
			expectedError: store.ErrDuplicate,
		},
		{
			name: "foreign_key_violation",
			err: &pgconn.PgError{
				Code:           foreignKeyViolationCode,
				ConstraintName: "invoices_comp_code_fkey",
			},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "foreign key violation (invoices_comp_code_fkey)",
		},
		{
			name: "check_constraint_violation",
			err: &pgconn.PgError{
				Code:           checkViolationCode,
				ConstraintName: "some_check",
			},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "check constraint violation",
		},
		{
			name: "not_null_violation",
			err: &pgconn.PgError{
				Code:       notNullViolationCode,
				ColumnName: "amt",
			},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "not null violation (amt)",
		},
		{
			name:          "generic_error",
			err:           genericErr,
			expectedError: genericErr,
		},
		{
			name:          "wrapped_no_rows",
			err:           fmt.Errorf("scan: %w", sql.ErrNoRows),
			expectedError: store.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapError(tt.err)

			if tt.expectedError == nil {
				assert.NoError(t, result)
				return
			}

			require.Error(t, result)
			assert.ErrorIs(t, result, tt.expectedError)
			if tt.expectedMsg != "" {
				assert.Contains(t, result.Error(), tt.expectedMsg)
			}
		})
	}
}

func TestViolationPredicates(t *testing.T) {
	unique := &pgconn.PgError{Code: uniqueViolationCode}
	fk := &pgconn.PgError{Code: foreignKeyViolationCode}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, IsUniqueViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("plain")))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestMapUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: uniqueViolationCode}

	t.Run("specific error used for unique violations", func(t *testing.T) {
		err := MapUniqueViolation(unique, store.ErrCompanyExists)
		assert.ErrorIs(t, err, store.ErrCompanyExists)
		assert.True(t, store.IsDuplicateError(err))
	})

	t.Run("generic duplicate when no specific error", func(t *testing.T) {
		err := MapUniqueViolation(unique, nil)
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("other errors fall through to MapError", func(t *testing.T) {
		err := MapUniqueViolation(&pgconn.PgError{Code: foreignKeyViolationCode}, store.ErrCompanyExists)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.False(t, store.IsDuplicateError(err))
	})
}
