// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jlehtis/kuitti-csv/internal/common"
	"jlehtis/kuitti-csv/internal/config"
	"jlehtis/kuitti-csv/internal/extraction"
	"jlehtis/kuitti-csv/internal/logging"
	"jlehtis/kuitti-csv/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	JSON   bool
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg holds the resolved application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "kuitti-csv",
		Short: "A CLI tool to extract structured data from Finnish receipts.",
		Long: `kuitti-csv extracts merchant, date, total and line items from receipt
files (PDF, image or plain text) and exports them as CSV or JSON.
Scanned PDFs and images are transcribed with Gemini before parsing.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to kuitti-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLogging())

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Invalid configuration: %v", err)
			}
			Cfg = cfg

			if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.JSON, "json", false, "Write JSON instead of CSV")
}

// BuildExtractor assembles an extractor from the resolved configuration.
// The returned cleanup function releases the OCR client, if one was built.
func BuildExtractor(ctx context.Context) (*extraction.Extractor, func(), error) {
	cfg := Cfg
	if cfg == nil {
		var err error
		cfg, err = config.InitializeConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize configuration: %w", err)
		}
	}

	var ocr extraction.OCRClient
	cleanup := func() {}
	if cfg.OCR.APIKey != "" {
		client, err := extraction.NewGeminiOCR(ctx, cfg.OCR.APIKey, cfg.OCR.Model)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create OCR client: %w", err)
		}
		ocr = client
		cleanup = func() {
			if err := client.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close OCR client")
			}
		}
	} else {
		Log.Debug("GEMINI_API_KEY not set, OCR is unavailable")
	}

	aliases := store.NewAliasStore(cfg.Receipt.AliasFile, Log)
	if err := aliases.Load(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load merchant aliases: %w", err)
	}

	opts := extraction.Options{
		Currency:     cfg.Receipt.Currency,
		MaxOCRPages:  cfg.OCR.MaxPages,
		DPI:          cfg.OCR.DPI,
		MinTextChars: cfg.OCR.MinTextChars,
	}
	return extraction.New(ocr, aliases, Log, opts), cleanup, nil
}
