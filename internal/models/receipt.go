// Package models defines the data structures shared across the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used for every receipt unless a caller overrides it.
const DefaultCurrency = "EUR"

// LineItem represents a single purchased item on a receipt.
// Quantity and UnitPrice are reserved fields: the parser never computes
// them, so they stay nil until an upstream enrichment step fills them in.
type LineItem struct {
	Name      string           `json:"name" yaml:"name"`
	Amount    decimal.Decimal  `json:"amount" yaml:"amount"`
	Quantity  *decimal.Decimal `json:"quantity" yaml:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price" yaml:"unit_price"`
}

// Receipt is the structured record reconstructed from receipt text.
// Items preserve the print order of the source text. Total is nil when no
// total line could be resolved; it is extracted independently of Items and
// the two are never reconciled against each other.
type Receipt struct {
	Merchant string           `json:"merchant" yaml:"merchant"`
	Date     string           `json:"date" yaml:"date"`
	Total    *decimal.Decimal `json:"total" yaml:"total"`
	Currency string           `json:"currency" yaml:"currency"`
	Items    []LineItem       `json:"items" yaml:"items"`
	RawText  string           `json:"raw_text" yaml:"raw_text"`
	Warnings []string         `json:"warnings" yaml:"warnings"`
}

// Source identifies the document a receipt was extracted from.
type Source struct {
	FileID   string `json:"file_id" yaml:"file_id"`
	FileName string `json:"file_name" yaml:"file_name"`
	MimeType string `json:"mime_type" yaml:"mime_type"`
}

// ExtractionResult is the response shape produced by the extraction
// pipeline: the parsed receipt plus source metadata and a timestamp.
// ReceiptID is assigned by upstream systems; extraction leaves it empty.
type ExtractionResult struct {
	ReceiptID   string           `json:"receipt_id" yaml:"receipt_id"`
	Source      Source           `json:"source" yaml:"source"`
	ExtractedAt time.Time        `json:"extracted_at" yaml:"extracted_at"`
	Merchant    string           `json:"merchant" yaml:"merchant"`
	Date        string           `json:"date" yaml:"date"`
	Total       *decimal.Decimal `json:"total" yaml:"total"`
	Currency    string           `json:"currency" yaml:"currency"`
	Items       []LineItem       `json:"items" yaml:"items"`
	RawText     string           `json:"raw_text" yaml:"raw_text"`
	Warnings    []string         `json:"warnings" yaml:"warnings"`
}

// NewResult shapes a parsed receipt into an ExtractionResult.
func NewResult(source Source, receipt Receipt, extractedAt time.Time) ExtractionResult {
	return ExtractionResult{
		Source:      source,
		ExtractedAt: extractedAt.UTC(),
		Merchant:    receipt.Merchant,
		Date:        receipt.Date,
		Total:       receipt.Total,
		Currency:    receipt.Currency,
		Items:       receipt.Items,
		RawText:     receipt.RawText,
		Warnings:    receipt.Warnings,
	}
}
