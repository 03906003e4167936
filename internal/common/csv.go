// Package common provides the shared CSV export used by the CLI commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"jlehtis/kuitti-csv/internal/logging"
	"jlehtis/kuitti-csv/internal/models"
)

// Delimiter is the global CSV delimiter, configurable via the config
// system or the CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter used for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// ReceiptRow is one exported CSV row: a single line item together with its
// receipt-level context. A receipt with no items still exports one row so
// the merchant, date and total are not lost.
type ReceiptRow struct {
	FileID     string `csv:"file_id"`
	FileName   string `csv:"file_name"`
	Merchant   string `csv:"merchant"`
	Date       string `csv:"date"`
	Total      string `csv:"total"`
	Currency   string `csv:"currency"`
	ItemName   string `csv:"item_name"`
	ItemAmount string `csv:"item_amount"`
}

// FlattenResult converts an extraction result into CSV rows, one per line
// item, preserving the receipt's print order.
func FlattenResult(result models.ExtractionResult) []ReceiptRow {
	base := ReceiptRow{
		FileID:   result.Source.FileID,
		FileName: result.Source.FileName,
		Merchant: result.Merchant,
		Date:     result.Date,
		Currency: result.Currency,
	}
	if result.Total != nil {
		base.Total = result.Total.StringFixed(2)
	}

	if len(result.Items) == 0 {
		return []ReceiptRow{base}
	}

	rows := make([]ReceiptRow, 0, len(result.Items))
	for _, item := range result.Items {
		row := base
		row.ItemName = item.Name
		row.ItemAmount = item.Amount.StringFixed(2)
		rows = append(rows, row)
	}
	return rows
}

// WriteResultsToCSV writes extraction results to a CSV file, flattening
// each receipt into per-item rows.
func WriteResultsToCSV(results []models.ExtractionResult, csvFile string, logger logging.Logger) error {
	if results == nil {
		return fmt.Errorf("cannot write nil results to CSV")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	logger.Info("Writing extraction results to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(results)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(Delimiter)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []ReceiptRow
	for _, result := range results {
		rows = append(rows, FlattenResult(result)...)
	}
	if rows == nil {
		rows = []ReceiptRow{}
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Info("Successfully wrote extraction results to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	return nil
}
