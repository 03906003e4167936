package common_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlehtis/kuitti-csv/cmd/common"
	"jlehtis/kuitti-csv/internal/logging"
	"jlehtis/kuitti-csv/internal/models"
)

func sampleResult() models.ExtractionResult {
	total := decimal.RequireFromString("2.39")
	receipt := models.Receipt{
		Merchant: "K-market Töölöntori",
		Date:     "2026-01-01",
		Total:    &total,
		Currency: "EUR",
		Items: []models.LineItem{
			{Name: "Fanta Sitruuna Zero", Amount: decimal.RequireFromString("2.19")},
		},
	}
	source := models.Source{FileName: "kuitti.txt", MimeType: "text/plain"}
	return models.NewResult(source, receipt, time.Now())
}

func TestWriteResultsCSV(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "out.csv")

	err := common.WriteResults([]models.ExtractionResult{sampleResult()}, outputFile, false, &logging.MockLogger{})
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "K-market Töölöntori")
	assert.Contains(t, string(data), "merchant")
}

func TestWriteResultsJSON(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "out.json")

	err := common.WriteResults([]models.ExtractionResult{sampleResult()}, outputFile, true, &logging.MockLogger{})
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var decoded []models.ExtractionResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "K-market Töölöntori", decoded[0].Merchant)
	assert.Equal(t, "2026-01-01", decoded[0].Date)
}

func TestWriteResultsEmptyOutputPath(t *testing.T) {
	err := common.WriteResults(nil, "", false, &logging.MockLogger{})
	assert.Error(t, err)
}

func TestDefaultOutputFile(t *testing.T) {
	assert.Equal(t, "kuitti.csv", common.DefaultOutputFile("kuitti.pdf", false))
	assert.Equal(t, "kuitti.json", common.DefaultOutputFile("kuitti.pdf", true))
	assert.Equal(t, filepath.Join("dir", "a.csv"), common.DefaultOutputFile(filepath.Join("dir", "a.txt"), false))
}

func TestLogResultRecordsWarnings(t *testing.T) {
	log := &logging.MockLogger{}
	result := sampleResult()
	result.Warnings = []string{"PDF text layer empty/short; treating as scanned and OCRing pages."}

	common.LogResult(result, log)

	assert.True(t, log.HasEntry("INFO", "Extracted receipt"))
	assert.True(t, log.HasEntry("WARN", "Extraction warning"))
}
