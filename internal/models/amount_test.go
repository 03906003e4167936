package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2,19", "2.19"},
		{"2.19", "2.19"},
		{"0,20", "0.2"},
		{"1234,56", "1234.56"},
		{"0,00", "0"},
	}

	for _, tt := range tests {
		amount, err := ParseAmount(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, amount.String(), "input %q", tt.input)
	}
}

func TestParseAmountInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "1,2,3"} {
		_, err := ParseAmount(input)
		assert.Error(t, err, "input %q", input)
	}
}
