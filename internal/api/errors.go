package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/biztime-api/internal/api/shared"
	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/store"
)

// APIError is an error that already knows its HTTP status and the message
// safe to show the client. Err, when set, is only logged.
type APIError struct {
	Status  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates an APIError with the given status.
func NewAPIError(status int, message string, err error) *APIError {
	return &APIError{Status: status, Message: message, Err: err}
}

// NotFound creates a 404 APIError.
func NotFound(message string, err error) *APIError {
	return NewAPIError(http.StatusNotFound, message, err)
}

// BadRequest creates a 400 APIError.
func BadRequest(message string, err error) *APIError {
	return NewAPIError(http.StatusBadRequest, message, err)
}

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts a HandlerFunc to http.HandlerFunc, sending any returned
// error through HandleAPIError.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			HandleAPIError(w, r, err)
		}
	}
}

// HandleAPIError writes the JSON error response for err. An *APIError
// anywhere in the chain supplies status and message; anything else is
// classified by MapErrorToStatusCode and GetSafeErrorMessage.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		shared.RespondWithErrorAndLog(w, r, apiErr.Status, apiErr.Message, err)
		return
	}

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var domainErr *domain.ValidationError
	var validationErrs validator.ValidationErrors

	switch {
	// Not found errors
	case errors.Is(err, store.ErrCompanyNotFound):
		return "Company not found"
	case errors.Is(err, store.ErrInvoiceNotFound):
		return "Invoice not found"
	case store.IsNotFoundError(err):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrCompanyExists):
		return "Company already exists"
	case errors.Is(err, store.ErrIndustryExists):
		return "Industry already exists"
	case store.IsDuplicateError(err):
		return "Resource already exists"

	// Bad request errors
	case errors.As(err, &domainErr):
		return fmt.Sprintf("Invalid %s: %s", domainErr.Field, domainErr.Message)
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns the first failed field of a validator error
// into a user-friendly message such as "Invalid name: required field".
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
