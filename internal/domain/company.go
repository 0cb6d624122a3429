package domain

import (
	"errors"
	"strings"

	"github.com/gosimple/slug"
)

// Validation errors for Company
var (
	ErrEmptyCompanyCode = errors.New("company code cannot be empty")
	ErrEmptyCompanyName = errors.New("company name cannot be empty")
)

// Company is a business that invoices are billed to. Its code is derived
// from the name and used as the primary key.
type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Industry    *string `json:"industry"`
}

// NewCompany creates a Company whose code is the slug of name.
// Returns an error if the name is blank or produces an empty slug.
func NewCompany(name, description string) (*Company, error) {
	c := &Company{
		Code:        CompanyCode(name),
		Name:        strings.TrimSpace(name),
		Description: description,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// CompanyCode derives the company code for a display name:
// lowercased, transliterated and hyphen-separated.
func CompanyCode(name string) string {
	return slug.Make(name)
}

// Validate checks if the Company has valid data.
func (c *Company) Validate() error {
	if c.Name == "" {
		return NewValidationError("name", "is required", ErrEmptyCompanyName)
	}

	if c.Code == "" {
		return NewValidationError("name", "must contain at least one letter or digit", ErrEmptyCompanyCode)
	}

	return nil
}
