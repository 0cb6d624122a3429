package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/biztime-api/internal/api/shared"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
	"github.com/phrazzld/biztime-api/internal/store"
)

// InvoiceHandler handles /invoices requests
type InvoiceHandler struct {
	invoices store.InvoiceStore
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoices store.InvoiceStore) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// ListInvoices handles GET /invoices requests
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) error {
	invoices, err := h.invoices.List(r.Context())
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InvoicesResponse{Invoices: invoices})
	return nil
}

// GetInvoice handles GET /invoices/{id} requests.
// The response includes the billed company's name and description.
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) error {
	id, err := getPathID(r, "id")
	if err != nil {
		return err
	}

	invoice, err := h.invoices.Get(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return NotFound(fmt.Sprintf("Can't find invoice with id %d", id), err)
		}
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InvoiceDetailResponse{Invoice: invoice})
	return nil
}

// CreateInvoice handles POST /invoices requests
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromContext(r.Context())

	var req CreateInvoiceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		return err
	}

	compCode := strings.TrimSpace(req.CompCode)
	invoice, err := h.invoices.Create(r.Context(), compCode, *req.Amount)
	if err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return BadRequest(fmt.Sprintf("Can't find company with code %s", compCode), err)
		}
		return err
	}

	log.Debug("invoice created via API",
		slog.Int64("invoice_id", invoice.ID),
		slog.String("company_code", compCode))
	shared.RespondWithJSON(w, r, http.StatusCreated, InvoiceResponse{Invoice: invoice})
	return nil
}

// UpdateInvoice handles PUT /invoices/{id} requests
func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) error {
	id, err := getPathID(r, "id")
	if err != nil {
		return err
	}

	var req UpdateInvoiceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		return err
	}

	invoice, err := h.invoices.Update(r.Context(), id, *req.Amount, req.Paid)
	if err != nil {
		if store.IsNotFoundError(err) {
			return NotFound(fmt.Sprintf("Can't update invoice with id %d", id), err)
		}
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InvoiceResponse{Invoice: invoice})
	return nil
}

// DeleteInvoice handles DELETE /invoices/{id} requests
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) error {
	id, err := getPathID(r, "id")
	if err != nil {
		return err
	}

	if err := h.invoices.Delete(r.Context(), id); err != nil {
		if store.IsNotFoundError(err) {
			return NotFound(fmt.Sprintf("Can't delete invoice with id %d", id), err)
		}
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deletedResponse)
	return nil
}
