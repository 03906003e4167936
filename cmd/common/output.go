// Package common contains shared functionality for command handlers
package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	internalcommon "jlehtis/kuitti-csv/internal/common"
	"jlehtis/kuitti-csv/internal/logging"
	"jlehtis/kuitti-csv/internal/models"
)

// WriteResults writes extraction results to outputFile, as indented JSON
// when asJSON is set and flattened CSV otherwise.
func WriteResults(results []models.ExtractionResult, outputFile string, asJSON bool, log logging.Logger) error {
	if outputFile == "" {
		return fmt.Errorf("output file must be specified")
	}

	if asJSON {
		return writeJSON(results, outputFile, log)
	}
	return internalcommon.WriteResultsToCSV(results, outputFile, log)
}

func writeJSON(results []models.ExtractionResult, outputFile string, log logging.Logger) error {
	if err := os.MkdirAll(filepath.Dir(outputFile), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing results: %w", err)
	}

	if err := os.WriteFile(outputFile, data, 0600); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}

	log.Info("Wrote extraction results to JSON file",
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldCount, Value: len(results)})
	return nil
}

// DefaultOutputFile derives an output path from the input path when the
// user did not specify one: the input name with a .csv or .json extension.
func DefaultOutputFile(inputFile string, asJSON bool) string {
	ext := ".csv"
	if asJSON {
		ext = ".json"
	}
	base := strings.TrimSuffix(inputFile, filepath.Ext(inputFile))
	return base + ext
}

// LogResult emits a one-line summary of an extraction for the user.
func LogResult(result models.ExtractionResult, log logging.Logger) {
	fields := []logging.Field{
		{Key: logging.FieldFileName, Value: result.Source.FileName},
		{Key: logging.FieldMerchant, Value: result.Merchant},
		{Key: "date", Value: result.Date},
		{Key: logging.FieldItemCount, Value: len(result.Items)},
	}
	if result.Total != nil {
		fields = append(fields, logging.Field{Key: "total", Value: result.Total.StringFixed(2)})
	}
	log.Info("Extracted receipt", fields...)

	for _, warning := range result.Warnings {
		log.Warn("Extraction warning",
			logging.Field{Key: logging.FieldFileName, Value: result.Source.FileName},
			logging.Field{Key: logging.FieldWarning, Value: warning})
	}
}
