package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"receipts-digest/constants"
)

func TestFromExtractionAppliesDefaults(t *testing.T) {
	r := FromExtraction("id-1", "file.pdf", ExtractionResult{}, "", "raw")

	assert.Equal(t, "id-1", r.ID)
	assert.Equal(t, "file.pdf", r.FileName)
	assert.Equal(t, DefaultDate, r.TransactionDate)
	assert.Equal(t, DefaultVendor, r.Vendor)
	assert.Zero(t, r.Amount)
	assert.Equal(t, constants.Other, r.Category)
}

func TestFromExtractionKeepsExtractedValues(t *testing.T) {
	amount := 450.0
	r := FromExtraction("id-1", "file.pdf", ExtractionResult{
		TransactionDate: "15/01/2024",
		Vendor:          "Swiggy",
		Amount:          &amount,
		Description:     "Order from Pizza Palace",
		OrderID:         "SWG-123456",
		PaymentMethod:   "Upi",
	}, constants.Food, "raw text")

	assert.Equal(t, "15/01/2024", r.TransactionDate)
	assert.Equal(t, "Swiggy", r.Vendor)
	assert.Equal(t, 450.0, r.Amount)
	assert.Equal(t, constants.Food, r.Category)
	assert.Equal(t, "raw text", r.RawText)
}

func TestFromExtractionTruncatesRawText(t *testing.T) {
	long := strings.Repeat("x", 2000)
	r := FromExtraction("id", "f.pdf", ExtractionResult{}, constants.Other, long)
	assert.Len(t, r.RawText, 500)
}
