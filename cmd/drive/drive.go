// Package drive handles extraction of receipts stored in Google Drive
package drive

import (
	"github.com/spf13/cobra"

	"jlehtis/kuitti-csv/cmd/common"
	"jlehtis/kuitti-csv/cmd/root"
	"jlehtis/kuitti-csv/internal/extraction"
	"jlehtis/kuitti-csv/internal/logging"
	"jlehtis/kuitti-csv/internal/models"
)

// Cmd represents the drive command
var Cmd = &cobra.Command{
	Use:   "drive [file-id...]",
	Short: "Extract receipts from Google Drive files",
	Long: `Download one or more files from Google Drive by file ID and extract
receipt data from them. Authentication uses Application Default
Credentials.

Example:
  kuitti-csv drive 1AbCdEfGhIjKl -o receipts.csv`,
	Args: cobra.MinimumNArgs(1),
	Run:  driveFunc,
}

func driveFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Drive command called")

	outputFile := root.SharedFlags.Output
	if outputFile == "" {
		root.Log.Fatal("Output file must be specified")
	}

	ctx := cmd.Context()
	fetcher, err := extraction.NewDriveFetcher(ctx)
	if err != nil {
		root.Log.Fatalf("Failed to create Drive client: %v", err)
	}

	extractor, cleanup, err := root.BuildExtractor(ctx)
	if err != nil {
		root.Log.Fatalf("Failed to build extractor: %v", err)
	}
	defer cleanup()

	var results []models.ExtractionResult
	for _, fileID := range args {
		source, data, err := fetcher.Fetch(ctx, fileID)
		if err != nil {
			root.Log.WithError(err).Error("Failed to download file",
				logging.Field{Key: logging.FieldFileID, Value: fileID})
			continue
		}

		result, err := extractor.Extract(ctx, source, data)
		if err != nil {
			root.Log.WithError(err).Error("Failed to extract receipt",
				logging.Field{Key: logging.FieldFileID, Value: fileID},
				logging.Field{Key: logging.FieldFileName, Value: source.FileName})
			continue
		}
		common.LogResult(result, root.Log)
		results = append(results, result)
	}

	if len(results) == 0 {
		root.Log.Fatal("No receipts could be extracted")
	}

	if err := common.WriteResults(results, outputFile, root.SharedFlags.JSON, root.Log); err != nil {
		root.Log.Fatalf("Error writing output: %v", err)
	}
	root.Log.Info("Drive extraction completed successfully!",
		logging.Field{Key: logging.FieldCount, Value: len(results)})
}
