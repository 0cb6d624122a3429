package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceValidate(t *testing.T) {
	t.Parallel()

	inv := Invoice{CompCode: "testco", Amount: decimal.NewFromInt(500)}
	assert.NoError(t, inv.Validate())

	inv.CompCode = ""
	err := inv.Validate()
	assert.ErrorIs(t, err, ErrEmptyInvoiceCompany)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInvoiceJSON(t *testing.T) {
	t.Parallel()

	addDate := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	detail := InvoiceDetail{
		Invoice: Invoice{
			ID:       12345,
			CompCode: "testco",
			Amount:   decimal.RequireFromString("500.50"),
			AddDate:  addDate,
		},
		CompanyName:        "TestCo",
		CompanyDescription: "test company",
	}

	b, err := json.Marshal(detail)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &body))

	// Embedded invoice fields are flattened next to the company fields
	assert.Equal(t, float64(12345), body["id"])
	assert.Equal(t, "testco", body["comp_code"])
	assert.Equal(t, 500.5, body["amt"])
	assert.Equal(t, false, body["paid"])
	assert.Nil(t, body["paid_date"])
	assert.Equal(t, "TestCo", body["name"])
	assert.Equal(t, "test company", body["description"])
}

func TestInvoiceJSON_AmountIsNumber(t *testing.T) {
	t.Parallel()

	require.False(t, decimal.MarshalJSONWithoutQuotes, "amount encoding must not depend on package globals")

	b, err := json.Marshal(Invoice{ID: 1, CompCode: "testco", Amount: decimal.RequireFromString("123.45")})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"amt":123.45`)

	b, err = json.Marshal(&InvoiceDetail{Invoice: Invoice{Amount: decimal.NewFromInt(500)}, CompanyName: "TestCo"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"amt":500`)
	assert.Contains(t, string(b), `"name":"TestCo"`)
}

func TestInvoiceAmountAcceptsNumbersAndStrings(t *testing.T) {
	t.Parallel()

	var fromNumber, fromString Invoice
	require.NoError(t, json.Unmarshal([]byte(`{"amt": 999}`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`{"amt": "999"}`), &fromString))

	assert.True(t, fromNumber.Amount.Equal(decimal.NewFromInt(999)))
	assert.True(t, fromNumber.Amount.Equal(fromString.Amount))
}
