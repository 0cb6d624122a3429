package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrCompanyNotFound",
			err:      ErrCompanyNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrInvoiceNotFound",
			err:      fmt.Errorf("failed to get invoice: %w", ErrInvoiceNotFound),
			expected: true,
		},
		{
			name:     "ErrCompanyExists",
			err:      ErrCompanyExists,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "ErrDuplicate",
			err:      ErrDuplicate,
			expected: true,
		},
		{
			name:     "wrapped ErrIndustryExists",
			err:      fmt.Errorf("failed to create industry: %w", ErrIndustryExists),
			expected: true,
		},
		{
			name:     "ErrCompanyNotFound",
			err:      ErrCompanyNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDuplicateError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("invoice", "update", "query failed", cause)

	assert.Equal(t, "update operation on invoice failed: query failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	noCause := NewStoreError("company", "delete", "nothing to do", nil)
	assert.Equal(t, "delete operation on company failed: nothing to do", noCause.Error())
	assert.Nil(t, noCause.Unwrap())
}

func TestEntityErrorMessages(t *testing.T) {
	assert.Equal(t, "entity not found: company", ErrCompanyNotFound.Error())
	assert.Equal(t, "entity already exists: industry", ErrIndustryExists.Error())
}
