// Package extract turns unstructured receipt text into structured fields via
// ordered regex heuristics. Every sub-extractor is pure and total: no input
// ever produces an error, only absent fields. Pattern-family order encodes a
// priority policy (labelled phrasing beats generic, known brands beat
// catch-alls) and must not be reordered.
package extract

import (
	"receipts-digest/internal/entity"
)

// Extract runs all six sub-extractors over the text. Description runs last
// against the already-resolved vendor, the single intra-record dependency.
func Extract(text string) entity.ExtractionResult {
	vendor := extractVendor(text)
	return entity.ExtractionResult{
		TransactionDate: extractDate(text),
		Vendor:          vendor,
		Amount:          extractAmount(text),
		Description:     extractDescription(text, vendor),
		OrderID:         extractOrderID(text),
		PaymentMethod:   extractPaymentMethod(text),
	}
}
