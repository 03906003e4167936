// Package receiptparser reconstructs a structured receipt from noisy,
// line-oriented text produced by a PDF text layer or OCR transcription.
//
// The parser is a deterministic, rule-based line classifier: it never fails
// on malformed input, every extractor has an explicit fallback (empty
// string, nil total, no items), and a parse is a pure function of its input
// text with no shared state, so concurrent calls need no coordination.
package receiptparser

import (
	"jlehtis/kuitti-csv/internal/models"
	"jlehtis/kuitti-csv/internal/textutils"
)

// Parse extracts merchant, date, total and line items from raw receipt
// text. The currency defaults to EUR; use ParseWithCurrency to override.
func Parse(rawText string) models.Receipt {
	return ParseWithCurrency(rawText, models.DefaultCurrency)
}

// ParseWithCurrency parses raw receipt text and stamps the result with the
// given currency. The extractors run independently over the same normalized
// line sequence; none depends on another's output, and the total is never
// reconciled against the sum of the items.
func ParseWithCurrency(rawText, currency string) models.Receipt {
	if currency == "" {
		currency = models.DefaultCurrency
	}

	lines := textutils.NormalizeLines(rawText)

	return models.Receipt{
		Merchant: extractMerchant(lines),
		Date:     extractDate(lines),
		Total:    extractTotal(lines),
		Currency: currency,
		Items:    extractItems(lines),
		RawText:  rawText,
	}
}
