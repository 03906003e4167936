// Package batch handles batch processing of receipt files
package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"jlehtis/kuitti-csv/cmd/common"
	"jlehtis/kuitti-csv/cmd/root"
	"jlehtis/kuitti-csv/internal/extraction"
	"jlehtis/kuitti-csv/internal/logging"
	"jlehtis/kuitti-csv/internal/models"
)

// supportedExtensions lists the file types picked up during a directory scan.
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".txt":  true,
}

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process receipt files from a directory",
	Long: `Batch process all receipt files from an input directory into a single
consolidated output file. Files that fail to extract are logged and
skipped; the remaining receipts are still exported.

Example:
  kuitti-csv batch -i receipts/ -o receipts.csv`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	inputDir := root.SharedFlags.Input
	outputFile := root.SharedFlags.Output
	if inputDir == "" || outputFile == "" {
		root.Log.Fatal("Input directory and output file must be specified")
	}

	extractor, cleanup, err := root.BuildExtractor(cmd.Context())
	if err != nil {
		root.Log.Fatalf("Failed to build extractor: %v", err)
	}
	defer cleanup()

	results, failed, err := extractDirectory(cmd.Context(), extractor, inputDir, root.Log)
	if err != nil {
		root.Log.Fatalf("Error during batch extraction: %v", err)
	}
	if len(results) == 0 {
		root.Log.Fatal("No receipts could be extracted from the input directory")
	}

	if err := common.WriteResults(results, outputFile, root.SharedFlags.JSON, root.Log); err != nil {
		root.Log.Fatalf("Error writing output: %v", err)
	}

	root.Log.Info("Batch processing completed",
		logging.Field{Key: logging.FieldCount, Value: len(results)},
		logging.Field{Key: "failed", Value: failed},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})
}

// extractDirectory runs the extractor over every supported file in inputDir,
// in name order. Per-file failures are logged and counted, not fatal.
func extractDirectory(ctx context.Context, extractor *extraction.Extractor, inputDir string, logger logging.Logger) ([]models.ExtractionResult, int, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, 0, err
	}

	var inputFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if supportedExtensions[ext] {
			inputFiles = append(inputFiles, filepath.Join(inputDir, entry.Name()))
		}
	}

	if len(inputFiles) == 0 {
		logger.Warn("No supported files found in input directory")
		return nil, 0, nil
	}
	logger.Info("Found files for processing",
		logging.Field{Key: logging.FieldCount, Value: len(inputFiles)})

	var results []models.ExtractionResult
	failed := 0
	for _, path := range inputFiles {
		result, err := extractor.ExtractFile(ctx, path)
		if err != nil {
			logger.WithError(err).Error("Failed to extract receipt",
				logging.Field{Key: logging.FieldFile, Value: filepath.Base(path)})
			failed++
			continue
		}
		common.LogResult(result, logger)
		results = append(results, result)
	}
	return results, failed, nil
}
