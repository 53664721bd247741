package entity

import (
	"time"

	"receipts-digest/constants"
)

// ExtractionResult holds the best-effort fields pulled out of one receipt's text.
// Every field is independently optional: a zero value means no pattern matched,
// not that the receipt explicitly declared an empty value.
type ExtractionResult struct {
	TransactionDate string   `json:"transaction_date,omitempty"`
	Vendor          string   `json:"vendor,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	Description     string   `json:"description,omitempty"`
	OrderID         string   `json:"order_id,omitempty"`
	PaymentMethod   string   `json:"payment_method,omitempty"`
}

// ProcessedReceipt is the persisted unit the review stage reads and edits.
// The extraction defaults are applied once at assembly; afterwards only explicit
// user edits may change it.
type ProcessedReceipt struct {
	ID              string             `json:"id"`
	FileName        string             `json:"file_name"`
	TransactionDate string             `json:"transaction_date"`
	Vendor          string             `json:"vendor"`
	Amount          float64            `json:"amount"`
	Description     string             `json:"description"`
	Category        constants.Category `json:"category"`
	OrderID         string             `json:"order_id,omitempty"`
	PaymentMethod   string             `json:"payment_method,omitempty"`
	RawText         string             `json:"raw_text,omitempty"`
	CreatedAt       time.Time          `json:"created_at,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at,omitempty"`
}

// Sentinel values applied to absent extraction fields at assembly time.
const (
	DefaultDate   = "N/A"
	DefaultVendor = "Unknown"
)

// FromExtraction assembles a ProcessedReceipt from one document's extraction,
// applying the review-stage defaults for absent fields.
func FromExtraction(id, fileName string, ex ExtractionResult, category constants.Category, rawText string) *ProcessedReceipt {
	r := &ProcessedReceipt{
		ID:              id,
		FileName:        fileName,
		TransactionDate: ex.TransactionDate,
		Vendor:          ex.Vendor,
		Description:     ex.Description,
		Category:        category,
		OrderID:         ex.OrderID,
		PaymentMethod:   ex.PaymentMethod,
		RawText:         truncate(rawText, 500),
	}
	if r.TransactionDate == "" {
		r.TransactionDate = DefaultDate
	}
	if r.Vendor == "" {
		r.Vendor = DefaultVendor
	}
	if ex.Amount != nil {
		r.Amount = *ex.Amount
	}
	if r.Category == "" {
		r.Category = constants.Other
	}
	return r
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
