package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/biztime-api/internal/api/shared"
	"github.com/phrazzld/biztime-api/internal/domain"
)

// getPathCode extracts a non-empty string parameter from the URL path.
func getPathCode(r *http.Request, paramName string) (string, error) {
	code := strings.TrimSpace(chi.URLParam(r, paramName))
	if code == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}
	return code, nil
}

// getPathID extracts an integer ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "must be an integer", domain.ErrInvalidID)
	}

	return id, nil
}

// decodeAndValidate reads the JSON body into v and runs the presence checks
// declared by its validate tags.
func decodeAndValidate(r *http.Request, v interface{}) error {
	if err := shared.DecodeJSON(r, v); err != nil {
		if errors.Is(err, io.EOF) {
			return BadRequest("Request body is required", err)
		}
		return BadRequest("Invalid request format", err)
	}

	if err := shared.ValidateRequest(v); err != nil {
		return BadRequest(SanitizeValidationError(err), err)
	}

	return nil
}
