package receiptparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMerchant(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "market substring wins",
			lines:    []string{"K-market Töölöntori", "Runeberginkatu 56"},
			expected: "K-market Töölöntori",
		},
		{
			name:     "upper-case line wins over earlier mixed-case line",
			lines:    []string{"Receipt Co", "something", "STORENAME"},
			expected: "STORENAME",
		},
		{
			name:     "first match wins with no backtracking",
			lines:    []string{"S-MARKET SOKOS HELSINKI", "K-market Töölöntori"},
			expected: "S-MARKET SOKOS HELSINKI",
		},
		{
			name:     "short upper-case line does not match",
			lines:    []string{"KPL", "Kiosk Oy"},
			expected: "KPL", // falls back to the first line
		},
		{
			name: "match outside the first 10 lines is ignored",
			lines: []string{
				"a", "b", "c", "d", "e2", "f2", "g2", "h2", "i2", "j2",
				"K-market Töölöntori",
			},
			expected: "a",
		},
		{
			name:     "phone number fragment is stripped",
			lines:    []string{"K-market Töölöntori Puh. 09 4540240"},
			expected: "K-market Töölöntori",
		},
		{
			name:     "tel label is stripped",
			lines:    []string{"K-market Töölöntori Tel. (09) 4540-240"},
			expected: "K-market Töölöntori",
		},
		{
			name:     "postal code and city suffix is stripped",
			lines:    []string{"K-market Töölöntori, 00260 Helsinki"},
			expected: "K-market Töölöntori",
		},
		{
			name:     "fallback to first line when nothing matches",
			lines:    []string{"Receipt Co", "Thanks for visiting"},
			expected: "Receipt Co",
		},
		{
			name:     "empty sequence yields empty string",
			lines:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractMerchant(tt.lines))
		})
	}
}

func TestIsUpper(t *testing.T) {
	tests := []struct {
		in       string
		expected bool
	}{
		{"S-MARKET SOKOS", true},
		{"STORENAME", true},
		{"K-market", false},
		{"12345", false},
		{"", false},
		{"ÄÄKKÖNEN OY", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, isUpper(tt.in), "isUpper(%q)", tt.in)
	}
}
