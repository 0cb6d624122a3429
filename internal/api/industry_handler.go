package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/biztime-api/internal/api/shared"
	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/store"
)

// IndustryHandler handles /industries requests
type IndustryHandler struct {
	industries store.IndustryStore
}

// NewIndustryHandler creates a new IndustryHandler
func NewIndustryHandler(industries store.IndustryStore) *IndustryHandler {
	return &IndustryHandler{industries: industries}
}

// ListIndustries handles GET /industries requests
func (h *IndustryHandler) ListIndustries(w http.ResponseWriter, r *http.Request) error {
	industries, err := h.industries.List(r.Context())
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, IndustriesResponse{Industries: industries})
	return nil
}

// CreateIndustry handles POST /industries requests
func (h *IndustryHandler) CreateIndustry(w http.ResponseWriter, r *http.Request) error {
	var req CreateIndustryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		return err
	}

	created, err := h.industries.Create(r.Context(), &domain.Industry{
		Code:     strings.TrimSpace(req.Code),
		Industry: strings.TrimSpace(req.Industry),
	})
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, IndustryResponse{Industry: created})
	return nil
}

// AssignIndustry handles PUT /industries/{code} requests. The path code
// identifies a company; the body names the industry to file it under.
func (h *IndustryHandler) AssignIndustry(w http.ResponseWriter, r *http.Request) error {
	code, err := getPathCode(r, "code")
	if err != nil {
		return err
	}

	var req AssignIndustryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		return err
	}

	company, err := h.industries.AssignToCompany(r.Context(), code, req.Industry)
	if err != nil {
		switch {
		case store.IsNotFoundError(err):
			return NotFound(fmt.Sprintf("Can't update company with code %s", code), err)
		case errors.Is(err, store.ErrInvalidEntity):
			return BadRequest(fmt.Sprintf("Can't find industry with code %s", req.Industry), err)
		}
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CompanyResponse{Company: company})
	return nil
}
