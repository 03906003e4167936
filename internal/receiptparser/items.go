package receiptparser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"jlehtis/kuitti-csv/internal/models"
)

var (
	// A line that is exactly a standalone 2-decimal amount.
	standaloneAmountRe = regexp.MustCompile(`^(\d+[.,]\d{2})$`)

	// An item name followed by a trailing 2-decimal amount on one line.
	itemPriceRe = regexp.MustCompile(`^(.*?)(\d+[.,]\d{2})$`)

	// Register/transaction codes, e.g. "K021 M026356/0554". These resemble
	// item lines but are bookkeeping noise.
	transactionCodeRe = regexp.MustCompile(`[A-Z]\d{3,}|M\d{6}`)

	// Volume/size OCR artifacts like "0,35L-1L" trailing an item name.
	volumeArtifactRe = regexp.MustCompile(`(?i)\s+\d+[.,]\d+L[^\s]*`)

	// A trailing bare decimal, typically a bottle volume ("0,5l") misread
	// as "0,51" at line end.
	trailingDecimalRe = regexp.MustCompile(`\s+\d+[.,]\d{1,2}$`)
)

// nonItemPrefixes start lines that are structural receipt rows (VAT
// summary, card info, loyalty points, bottle deposit), never purchasable
// items. Compared case-insensitively.
var nonItemPrefixes = []string{"ALV", "KORTTI", "PLUSSA", "BONUS", "PANTTI"}

// cardTransactionMarker terminates the item scan. Matched case-sensitively:
// the card terminal prints it verbatim, and a lower-case occurrence is OCR
// noise rather than the section boundary.
const cardTransactionMarker = "CARD TRANSACTION"

// minItemNameLen rejects fragments too short to be a product name.
const minItemNameLen = 3

// extractItems walks the line sequence with a cursor and one line of
// lookahead, reconstructing item/price pairs.
//
// OCR output usually splits an item's name and price onto consecutive
// lines while a machine-rendered PDF text layer keeps them on one line, so
// the two-line heuristic is checked before the same-line pattern on every
// step. That order is load-bearing: reversing it would attribute a price
// line to the wrong name or count an item twice.
func extractItems(lines []string) []models.LineItem {
	var items []models.LineItem

	i := 0
	for i < len(lines) {
		l := lines[i]

		// The total line and the card-payment section end the listing.
		if strings.HasPrefix(l, "YHTEENSÄ") {
			break
		}
		if isSeparator(l) {
			i++
			continue
		}
		if strings.Contains(l, cardTransactionMarker) {
			break
		}

		// Two-line heuristic: next line is exactly a standalone amount.
		if i+1 < len(lines) {
			if m := standaloneAmountRe.FindStringSubmatch(lines[i+1]); m != nil {
				if item, ok := buildTwoLineItem(l, m[1]); ok {
					items = append(items, item)
				}
				i += 2
				continue
			}
		}

		// Same-line fallback: name and trailing amount on one line.
		if item, ok := buildSameLineItem(l); ok {
			items = append(items, item)
		}
		i++
	}

	return items
}

// buildTwoLineItem treats name as an item-name line whose price arrived on
// the following line. It rejects transaction codes and structural rows and
// strips volume OCR artifacts from the name.
func buildTwoLineItem(name, amountStr string) (models.LineItem, bool) {
	if transactionCodeRe.MatchString(name) {
		return models.LineItem{}, false
	}

	name = volumeArtifactRe.ReplaceAllString(name, "")
	name = trailingDecimalRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)

	if hasNonItemPrefix(name) {
		return models.LineItem{}, false
	}

	amount, err := models.ParseAmount(amountStr)
	if err != nil {
		return models.LineItem{}, false
	}

	if utf8.RuneCountInString(name) < minItemNameLen || !amount.IsPositive() {
		return models.LineItem{}, false
	}

	return models.LineItem{Name: name, Amount: amount}, true
}

// buildSameLineItem matches a line holding both the item name and a
// trailing 2-decimal amount. No volume-artifact cleanup here: text-layer
// lines do not carry the misread-volume noise OCR produces.
func buildSameLineItem(l string) (models.LineItem, bool) {
	m := itemPriceRe.FindStringSubmatch(l)
	if m == nil {
		return models.LineItem{}, false
	}

	name := strings.TrimSpace(m[1])
	if transactionCodeRe.MatchString(name) {
		return models.LineItem{}, false
	}
	if hasNonItemPrefix(name) {
		return models.LineItem{}, false
	}

	amount, err := models.ParseAmount(m[2])
	if err != nil {
		return models.LineItem{}, false
	}

	if utf8.RuneCountInString(name) < minItemNameLen || !amount.IsPositive() {
		return models.LineItem{}, false
	}

	return models.LineItem{Name: name, Amount: amount}, true
}

func hasNonItemPrefix(name string) bool {
	upper := strings.ToUpper(name)
	for _, prefix := range nonItemPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// isSeparator reports whether the line consists solely of '-' characters.
// Such ruler lines are skipped, not treated as terminators.
func isSeparator(l string) bool {
	return l != "" && strings.Trim(l, "-") == ""
}
