package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/biztime-api/internal/api/shared"
	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
	"github.com/phrazzld/biztime-api/internal/store"
)

// CompanyHandler handles /companies requests
type CompanyHandler struct {
	companies store.CompanyStore
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companies store.CompanyStore) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// ListCompanies handles GET /companies requests
func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) error {
	companies, err := h.companies.List(r.Context())
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompaniesResponse{Companies: companies})
	return nil
}

// GetCompany handles GET /companies/{code} requests
func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) error {
	code, err := getPathCode(r, "code")
	if err != nil {
		return err
	}

	company, err := h.companies.Get(r.Context(), code)
	if err != nil {
		if store.IsNotFoundError(err) {
			return NotFound(fmt.Sprintf("Can't find company with code %s", code), err)
		}
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompanyResponse{Company: company})
	return nil
}

// CreateCompany handles POST /companies requests.
// The company code is the slug of the submitted name.
func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromContext(r.Context())

	var req CompanyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		return err
	}

	company, err := domain.NewCompany(req.Name, req.Description)
	if err != nil {
		return err
	}

	created, err := h.companies.Create(r.Context(), company)
	if err != nil {
		return err
	}

	log.Debug("company created via API", slog.String("company_code", created.Code))
	shared.RespondWithJSON(w, r, http.StatusCreated, CompanyResponse{Company: created})
	return nil
}

// UpdateCompany handles PUT /companies/{code} requests.
// The code itself never changes, even if the name does.
func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) error {
	code, err := getPathCode(r, "code")
	if err != nil {
		return err
	}

	var req CompanyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		return err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.NewValidationError("name", "is required", domain.ErrEmptyCompanyName)
	}

	updated, err := h.companies.Update(r.Context(), code, name, req.Description)
	if err != nil {
		if store.IsNotFoundError(err) {
			return NotFound(fmt.Sprintf("Can't update company with code %s", code), err)
		}
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompanyResponse{Company: updated})
	return nil
}

// DeleteCompany handles DELETE /companies/{code} requests
func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) error {
	code, err := getPathCode(r, "code")
	if err != nil {
		return err
	}

	if err := h.companies.Delete(r.Context(), code); err != nil {
		if store.IsNotFoundError(err) {
			return NotFound(fmt.Sprintf("Can't delete company with code %s", code), err)
		}
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deletedResponse)
	return nil
}
