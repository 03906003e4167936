package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnvKeys = []string{
	"KUITTI_LOG_LEVEL",
	"KUITTI_LOG_FORMAT",
	"KUITTI_RECEIPT_CURRENCY",
	"KUITTI_CSV_DELIMITER",
	"KUITTI_OCR_MAX_PAGES",
	"GEMINI_API_KEY",
}

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range testEnvKeys {
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "EUR", config.Receipt.Currency)
	assert.Equal(t, "", config.Receipt.AliasFile)
	assert.Equal(t, "gemini-2.0-flash", config.OCR.Model)
	assert.Equal(t, 3, config.OCR.MaxPages)
	assert.Equal(t, 200, config.OCR.DPI)
	assert.Equal(t, 200, config.OCR.MinTextChars)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.True(t, config.CSV.IncludeHeaders)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	t.Setenv("KUITTI_LOG_LEVEL", "debug")
	t.Setenv("KUITTI_RECEIPT_CURRENCY", "SEK")
	t.Setenv("KUITTI_CSV_DELIMITER", ";")
	t.Setenv("GEMINI_API_KEY", "test-key")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "SEK", config.Receipt.Currency)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, "test-key", config.OCR.APIKey)
}

func TestInitializeConfig_Validation(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		value  string
	}{
		{"invalid log level", "KUITTI_LOG_LEVEL", "verbose"},
		{"multi-char delimiter", "KUITTI_CSV_DELIMITER", ";;"},
		{"zero max pages", "KUITTI_OCR_MAX_PAGES", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTestEnvVars(t)
			t.Setenv(tt.envKey, tt.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("KUITTI_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("KUITTI_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("KUITTI_TEST_KEY_MISSING", "fallback"))
}
