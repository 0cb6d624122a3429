package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/biztime-api/internal/api/shared"
	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"company not found", store.ErrCompanyNotFound, http.StatusNotFound},
		{"wrapped invoice not found", fmt.Errorf("get: %w", store.ErrInvoiceNotFound), http.StatusNotFound},
		{"company exists", store.ErrCompanyExists, http.StatusConflict},
		{"generic duplicate", store.ErrDuplicate, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"domain validation", domain.NewValidationError("name", "is required", domain.ErrEmptyCompanyName), http.StatusBadRequest},
		{"invalid id", domain.NewValidationError("id", "must be an integer", domain.ErrInvalidID), http.StatusBadRequest},
		{"store error wrapping driver failure", store.NewStoreError("company", "list", "query failed", errors.New("eof")), http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"company not found", store.ErrCompanyNotFound, "Company not found"},
		{"invoice not found", store.ErrInvoiceNotFound, "Invoice not found"},
		{"company exists", fmt.Errorf("%w: duplicate key value", store.ErrCompanyExists), "Company already exists"},
		{"industry exists", store.ErrIndustryExists, "Industry already exists"},
		{"domain validation", domain.NewValidationError("name", "is required", nil), "Invalid name: is required"},
		{"invalid entity", fmt.Errorf("%w: foreign key violation (x)", store.ErrInvalidEntity), "Invalid entity data"},
		{"driver error text never leaks", errors.New("pq: password authentication failed for user \"biztime\""), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	err := shared.ValidateRequest(&CreateInvoiceRequest{CompCode: "apple"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	assert.Equal(t, "Invalid amt: required field", SanitizeValidationError(err))
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "api error keeps status and message",
			err:            NotFound("Can't find company with code apple", store.ErrCompanyNotFound),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Can't find company with code apple",
		},
		{
			name:           "wrapped api error",
			err:            fmt.Errorf("outer: %w", BadRequest("Invalid request format", nil)),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request format",
		},
		{
			name:           "store error mapped",
			err:            store.ErrIndustryExists,
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Industry already exists",
		},
		{
			name:           "unknown error is 500",
			err:            errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(t, http.MethodGet, "/", nil, nil)
			req = req.WithContext(shared.WithTraceID(req.Context(), "trace-1"))

			w := serve(func(http.ResponseWriter, *http.Request) error { return tt.err }, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tt.expectedMsg, body["error"])
			assert.Equal(t, "trace-1", body["trace_id"])
		})
	}
}

func TestAPIError(t *testing.T) {
	cause := errors.New("cause")
	err := NotFound("missing", cause)

	assert.Equal(t, "missing: cause", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "bare", BadRequest("bare", nil).Error())
}
