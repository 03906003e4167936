package receiptparser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// merchantScanWindow is how many leading lines are considered for the
// merchant name. Receipts print the store name in the header.
const merchantScanWindow = 10

var (
	// Trailing phone-number fragments after a "Puh." or "Tel." label.
	phonePuhRe = regexp.MustCompile(`(?i)\s*Puh\.?\s*\(?\d+\)?[\s\d\-]+`)
	phoneTelRe = regexp.MustCompile(`(?i)\s*Tel\.?\s*\(?\d+\)?[\s\d\-]+`)

	// A Finnish postal code (5 digits) followed by a city name at line end.
	postalCityRe = regexp.MustCompile(`,?\s*\d{5}\s+[A-ZÅÄÖa-zåäö\s]+$`)
)

// extractMerchant picks the merchant name line from the first lines.
// A line wins if it contains "market" (case-insensitive) or is entirely
// upper-case and longer than 5 characters; the first match wins with no
// backtracking. When nothing matches, the first line of the sequence is
// used. The chosen line is cleaned of phone-number fragments and a trailing
// postal code + city suffix.
func extractMerchant(lines []string) string {
	for i, l := range lines {
		if i >= merchantScanWindow {
			break
		}
		if strings.Contains(strings.ToLower(l), "market") {
			return cleanMerchant(l)
		}
		if isUpper(l) && utf8.RuneCountInString(l) > 5 {
			return cleanMerchant(l)
		}
	}

	if len(lines) > 0 {
		return cleanMerchant(lines[0])
	}
	return ""
}

// cleanMerchant strips known noise from a merchant line. This is textual
// substitution, not validation: matched suffixes are removed wherever the
// pattern occurs.
func cleanMerchant(line string) string {
	merchant := phonePuhRe.ReplaceAllString(line, "")
	merchant = phoneTelRe.ReplaceAllString(merchant, "")
	merchant = postalCityRe.ReplaceAllString(merchant, "")
	return strings.TrimSpace(merchant)
}

// isUpper reports whether the line contains at least one cased character
// and none of them is lower-case.
func isUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	return hasCased
}
