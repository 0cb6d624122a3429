package domain

import "errors"

// Validation errors for Industry
var (
	ErrEmptyIndustryCode  = errors.New("industry code cannot be empty")
	ErrEmptyIndustryLabel = errors.New("industry label cannot be empty")
)

// Industry is a sector label companies can be filed under.
type Industry struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// Validate checks if the Industry has valid data.
func (i *Industry) Validate() error {
	if i.Code == "" {
		return NewValidationError("code", "is required", ErrEmptyIndustryCode)
	}
	if i.Industry == "" {
		return NewValidationError("industry", "is required", ErrEmptyIndustryLabel)
	}
	return nil
}
