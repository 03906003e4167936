package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlehtis/kuitti-csv/internal/logging"
	"jlehtis/kuitti-csv/internal/models"
)

func sampleResult() models.ExtractionResult {
	total := decimal.RequireFromString("12.34")
	receipt := models.Receipt{
		Merchant: "K-market Töölöntori",
		Date:     "2026-01-15",
		Total:    &total,
		Currency: "EUR",
		Items: []models.LineItem{
			{Name: "Fanta Sitruuna Zero", Amount: decimal.RequireFromString("2.19")},
			{Name: "Ruisleipä", Amount: decimal.RequireFromString("1.85")},
		},
	}
	source := models.Source{FileID: "f1", FileName: "kuitti.pdf", MimeType: "application/pdf"}
	return models.NewResult(source, receipt, time.Now())
}

func TestFlattenResultOneRowPerItem(t *testing.T) {
	rows := FlattenResult(sampleResult())

	require.Len(t, rows, 2)
	assert.Equal(t, "Fanta Sitruuna Zero", rows[0].ItemName)
	assert.Equal(t, "2.19", rows[0].ItemAmount)
	assert.Equal(t, "Ruisleipä", rows[1].ItemName)
	assert.Equal(t, "1.85", rows[1].ItemAmount)

	for _, row := range rows {
		assert.Equal(t, "K-market Töölöntori", row.Merchant)
		assert.Equal(t, "2026-01-15", row.Date)
		assert.Equal(t, "12.34", row.Total)
		assert.Equal(t, "EUR", row.Currency)
		assert.Equal(t, "f1", row.FileID)
		assert.Equal(t, "kuitti.pdf", row.FileName)
	}
}

func TestFlattenResultNoItemsStillExportsReceipt(t *testing.T) {
	result := sampleResult()
	result.Items = nil

	rows := FlattenResult(result)
	require.Len(t, rows, 1)
	assert.Equal(t, "K-market Töölöntori", rows[0].Merchant)
	assert.Empty(t, rows[0].ItemName)
	assert.Empty(t, rows[0].ItemAmount)
}

func TestFlattenResultNilTotal(t *testing.T) {
	result := sampleResult()
	result.Total = nil

	rows := FlattenResult(result)
	require.NotEmpty(t, rows)
	assert.Empty(t, rows[0].Total)
}

func TestWriteResultsToCSV(t *testing.T) {
	dir := t.TempDir()
	csvFile := filepath.Join(dir, "out", "receipts.csv")

	err := WriteResultsToCSV([]models.ExtractionResult{sampleResult()}, csvFile, &logging.MockLogger{})
	require.NoError(t, err)

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "file_id,file_name,merchant,date,total,currency,item_name,item_amount")
	assert.Contains(t, content, "Fanta Sitruuna Zero")
	assert.Contains(t, content, "Ruisleipä")
	assert.Contains(t, content, "2026-01-15")
}

func TestWriteResultsToCSVNilResults(t *testing.T) {
	err := WriteResultsToCSV(nil, filepath.Join(t.TempDir(), "out.csv"), &logging.MockLogger{})
	assert.Error(t, err)
}

func TestWriteResultsToCSVEmptyResults(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "empty.csv")
	err := WriteResultsToCSV([]models.ExtractionResult{}, csvFile, &logging.MockLogger{})
	require.NoError(t, err)

	_, err = os.Stat(csvFile)
	assert.NoError(t, err)
}

func TestSetDelimiter(t *testing.T) {
	orig := Delimiter
	defer SetDelimiter(orig)

	SetDelimiter(';')
	assert.Equal(t, ';', Delimiter)

	csvFile := filepath.Join(t.TempDir(), "semi.csv")
	require.NoError(t, WriteResultsToCSV([]models.ExtractionResult{sampleResult()}, csvFile, &logging.MockLogger{}))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file_id;file_name;merchant")
}
