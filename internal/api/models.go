package api

import (
	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Request payloads. Only presence is checked; everything else is left to
// the database.

// CompanyRequest is the body of POST /companies and PUT /companies/{code}.
type CompanyRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}

// CreateIndustryRequest is the body of POST /industries.
type CreateIndustryRequest struct {
	Code     string `json:"code"     validate:"required"`
	Industry string `json:"industry" validate:"required"`
}

// AssignIndustryRequest is the body of PUT /industries/{code}.
type AssignIndustryRequest struct {
	Industry string `json:"industry" validate:"required"`
}

// CreateInvoiceRequest is the body of POST /invoices.
// amt accepts a JSON number or a numeric string.
type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code" validate:"required"`
	Amount   *decimal.Decimal `json:"amt"       validate:"required"`
}

// UpdateInvoiceRequest is the body of PUT /invoices/{id}.
// A missing paid leaves the invoice's paid state unchanged.
type UpdateInvoiceRequest struct {
	Amount *decimal.Decimal `json:"amt"  validate:"required"`
	Paid   *bool            `json:"paid"`
}

// Response envelopes.

// CompaniesResponse wraps a company list.
type CompaniesResponse struct {
	Companies []domain.Company `json:"companies"`
}

// CompanyResponse wraps a single company.
type CompanyResponse struct {
	Company *domain.Company `json:"company"`
}

// IndustriesResponse wraps an industry list.
type IndustriesResponse struct {
	Industries []domain.Industry `json:"industries"`
}

// IndustryResponse wraps a single industry.
type IndustryResponse struct {
	Industry *domain.Industry `json:"industry"`
}

// InvoicesResponse wraps an invoice list.
type InvoicesResponse struct {
	Invoices []domain.Invoice `json:"invoices"`
}

// InvoiceResponse wraps a single invoice.
type InvoiceResponse struct {
	Invoice *domain.Invoice `json:"invoice"`
}

// InvoiceDetailResponse wraps an invoice with its company's details.
type InvoiceDetailResponse struct {
	Invoice *domain.InvoiceDetail `json:"invoice"`
}

// StatusResponse is returned by delete endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// deletedResponse is the body for a successful delete.
var deletedResponse = StatusResponse{Status: "deleted"}
