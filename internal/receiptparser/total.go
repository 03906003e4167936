package receiptparser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"jlehtis/kuitti-csv/internal/models"
)

// totalLookahead is how many lines past a marker line are searched for a
// standalone amount. OCR frequently splits "YHTEENSÄ" and the sum onto
// separate lines.
const totalLookahead = 4

var (
	// A total amount on the marker line itself, e.g. "YHTEENSÄ 11,62".
	totalSameLineRe = regexp.MustCompile(`(?i)^YHTEENSÄ\s+(\d+[.,]\d{2})`)

	// A line that is nothing but a 2-decimal amount.
	standaloneTotalRe = regexp.MustCompile(`^(\d+[.,]\d{2})\s*$`)
)

// totalMarkers signal the receipt's total line. Matched as case-insensitive
// substrings anywhere in a line.
var totalMarkers = []string{"YHTEENSÄ", "TOTAL", "SUMMA"}

// extractTotal scans the whole line sequence for a total marker. On a
// marker line it first tries the amount on the same line, then looks ahead
// up to totalLookahead lines for a standalone amount. When a marker line
// resolves neither, scanning continues to the next marker line. Returns nil
// when no total can be resolved anywhere.
func extractTotal(lines []string) *decimal.Decimal {
	for i, l := range lines {
		if !containsTotalMarker(l) {
			continue
		}

		if m := totalSameLineRe.FindStringSubmatch(l); m != nil {
			if amount, err := models.ParseAmount(m[1]); err == nil {
				return &amount
			}
		}

		for j := i + 1; j < len(lines) && j <= i+totalLookahead; j++ {
			if m := standaloneTotalRe.FindStringSubmatch(lines[j]); m != nil {
				if amount, err := models.ParseAmount(m[1]); err == nil {
					return &amount
				}
			}
		}
	}
	return nil
}

func containsTotalMarker(line string) bool {
	upper := strings.ToUpper(line)
	for _, marker := range totalMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}
