// Package parse handles extraction of a single local receipt file
package parse

import (
	"github.com/spf13/cobra"

	"jlehtis/kuitti-csv/cmd/common"
	"jlehtis/kuitti-csv/cmd/root"
	"jlehtis/kuitti-csv/internal/logging"
	"jlehtis/kuitti-csv/internal/models"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract a receipt from a local file",
	Long: `Extract merchant, date, total and line items from a local receipt file.

PDF files use the embedded text layer when present; scanned PDFs and
images are transcribed with Gemini (requires GEMINI_API_KEY).

Example:
  kuitti-csv parse -i kuitti.pdf -o kuitti.csv`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Parse command called")

	inputFile := root.SharedFlags.Input
	if inputFile == "" {
		root.Log.Fatal("Input file must be specified")
	}

	outputFile := root.SharedFlags.Output
	if outputFile == "" {
		outputFile = common.DefaultOutputFile(inputFile, root.SharedFlags.JSON)
	}

	root.Log.Info("Extracting receipt",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})

	extractor, cleanup, err := root.BuildExtractor(cmd.Context())
	if err != nil {
		root.Log.Fatalf("Failed to build extractor: %v", err)
	}
	defer cleanup()

	result, err := extractor.ExtractFile(cmd.Context(), inputFile)
	if err != nil {
		root.Log.Fatalf("Error extracting receipt: %v", err)
	}
	common.LogResult(result, root.Log)

	if err := common.WriteResults([]models.ExtractionResult{result}, outputFile, root.SharedFlags.JSON, root.Log); err != nil {
		root.Log.Fatalf("Error writing output: %v", err)
	}
	root.Log.Info("Receipt extraction completed successfully!")
}
