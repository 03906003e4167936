package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a receipt amount string to a decimal value.
// Finnish receipts use a comma as the decimal separator; it is normalized
// to a dot before conversion so both "2,19" and "2.19" parse.
func ParseAmount(s string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	dec, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", s, err)
	}
	return dec, nil
}
