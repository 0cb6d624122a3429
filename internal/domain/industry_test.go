package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndustryValidate(t *testing.T) {
	t.Parallel()

	valid := Industry{Code: "tech", Industry: "Technology"}
	assert.NoError(t, valid.Validate())

	missingCode := valid
	missingCode.Code = ""
	assert.ErrorIs(t, missingCode.Validate(), ErrEmptyIndustryCode)

	missingLabel := valid
	missingLabel.Industry = ""
	err := missingLabel.Validate()
	assert.ErrorIs(t, err, ErrEmptyIndustryLabel)
	assert.ErrorIs(t, err, ErrValidation)
}
