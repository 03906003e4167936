// Package extraction orchestrates the receipt pipeline: obtain document
// bytes, get text out of them (PDF text layer or OCR), run the rule-based
// parser, and shape the response. All collaborators are injected.
package extraction

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jlehtis/kuitti-csv/internal/logging"
	"jlehtis/kuitti-csv/internal/models"
	"jlehtis/kuitti-csv/internal/parsererror"
	"jlehtis/kuitti-csv/internal/receiptparser"
)

// AliasResolver maps a raw merchant string to a canonical name. The core
// parser never consults it; alias mapping is a pipeline concern.
type AliasResolver interface {
	Resolve(raw string) (string, bool)
}

// Options tune the text-acquisition step of the pipeline.
type Options struct {
	// Currency stamps every parsed receipt. Empty means EUR.
	Currency string
	// MaxOCRPages caps how many pages of a scanned PDF are OCRed.
	MaxOCRPages int
	// DPI is the rasterization resolution for scanned pages.
	DPI int
	// MinTextChars is the text-layer length below which a PDF is treated
	// as scanned. Receipts with a real text layer exceed this easily.
	MinTextChars int
}

// DefaultOptions match single-page grocery receipts.
func DefaultOptions() Options {
	return Options{
		Currency:     models.DefaultCurrency,
		MaxOCRPages:  3,
		DPI:          200,
		MinTextChars: 200,
	}
}

// Extractor runs the document-to-receipt pipeline.
type Extractor struct {
	ocr     OCRClient
	aliases AliasResolver
	logger  logging.Logger
	opts    Options
}

// New creates an Extractor. ocr may be nil for text-layer-only operation;
// aliases may be nil when no merchant alias store is configured.
func New(ocr OCRClient, aliases AliasResolver, logger logging.Logger, opts Options) *Extractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if opts.MaxOCRPages < 1 {
		opts.MaxOCRPages = DefaultOptions().MaxOCRPages
	}
	if opts.DPI < 1 {
		opts.DPI = DefaultOptions().DPI
	}
	if opts.MinTextChars < 1 {
		opts.MinTextChars = DefaultOptions().MinTextChars
	}
	return &Extractor{
		ocr:     ocr,
		aliases: aliases,
		logger:  logger,
		opts:    opts,
	}
}

// Extract turns document bytes into a structured extraction result.
// Collaborator failures (unsupported type, invalid PDF, OCR errors) are
// returned as typed errors; they are never recovered into a partial parse.
func (e *Extractor) Extract(ctx context.Context, source models.Source, data []byte) (models.ExtractionResult, error) {
	e.logger.Info("Extracting receipt",
		logging.Field{Key: logging.FieldFileID, Value: source.FileID},
		logging.Field{Key: logging.FieldFileName, Value: source.FileName},
		logging.Field{Key: logging.FieldMimeType, Value: source.MimeType})

	var warnings []string
	var rawText string
	var err error

	switch {
	case source.MimeType == "application/pdf":
		rawText, warnings, err = e.textFromPDF(ctx, source, data)
	case strings.HasPrefix(source.MimeType, "image/"):
		rawText, err = e.textFromImage(ctx, source.MimeType, data)
	case source.MimeType == "text/plain":
		rawText = string(data)
	default:
		err = &parsererror.UnsupportedTypeError{MimeType: source.MimeType, FileName: source.FileName}
	}
	if err != nil {
		return models.ExtractionResult{}, err
	}

	receipt := receiptparser.ParseWithCurrency(rawText, e.opts.Currency)
	receipt.Warnings = warnings

	if e.aliases != nil && receipt.Merchant != "" {
		if canonical, ok := e.aliases.Resolve(receipt.Merchant); ok {
			receipt.Merchant = canonical
		}
	}

	e.logger.Info("Parsed receipt",
		logging.Field{Key: logging.FieldMerchant, Value: receipt.Merchant},
		logging.Field{Key: logging.FieldItemCount, Value: len(receipt.Items)})

	return models.NewResult(source, receipt, time.Now()), nil
}

// ExtractFile runs the pipeline on a local file, deriving the MIME type
// from the file extension.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (models.ExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ExtractionResult{}, fmt.Errorf("reading input file: %w", err)
	}

	source := models.Source{
		FileName: filepath.Base(path),
		MimeType: mimeTypeForPath(path),
	}
	return e.Extract(ctx, source, data)
}

// textFromPDF prefers the embedded text layer and falls back to OCR when
// the layer is empty or too short to be a real receipt.
func (e *Extractor) textFromPDF(ctx context.Context, source models.Source, data []byte) (string, []string, error) {
	text, err := pdfTextLayer(source.FileName, data)
	if err != nil {
		return "", nil, err
	}

	if len(strings.TrimSpace(text)) >= e.opts.MinTextChars {
		return text, nil, nil
	}

	warnings := []string{"PDF text layer empty/short; treating as scanned and OCRing pages."}
	e.logger.Warn("Short PDF text layer, falling back to OCR",
		logging.Field{Key: logging.FieldFileName, Value: source.FileName})

	if e.ocr == nil {
		return "", nil, &parsererror.OCRError{Page: -1, Err: fmt.Errorf("no OCR client configured")}
	}

	images, pageCount, err := renderPDFPages(source.FileName, data, e.opts.MaxOCRPages, e.opts.DPI)
	if err != nil {
		return "", nil, err
	}
	if pageCount > e.opts.MaxOCRPages {
		warnings = append(warnings,
			fmt.Sprintf("PDF has %d pages; OCR limited to first %d.", pageCount, e.opts.MaxOCRPages))
	}

	var parts []string
	for i, img := range images {
		pageText, err := e.ocr.Transcribe(ctx, img, "png")
		if err != nil {
			return "", nil, &parsererror.OCRError{Page: i, Err: err}
		}
		parts = append(parts, pageText)
	}

	return strings.Join(parts, "\n"), warnings, nil
}

// textFromImage OCRs a standalone image document.
func (e *Extractor) textFromImage(ctx context.Context, mimeType string, data []byte) (string, error) {
	if e.ocr == nil {
		return "", &parsererror.OCRError{Page: -1, Err: fmt.Errorf("no OCR client configured")}
	}
	return e.ocr.Transcribe(ctx, data, strings.TrimPrefix(mimeType, "image/"))
}

// mimeTypeForPath maps a file extension to the pipeline's MIME types.
// Unknown extensions fall through as-is so Extract reports them.
func mimeTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	default:
		if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
			// Strip any charset parameter.
			if i := strings.Index(t, ";"); i > 0 {
				return t[:i]
			}
			return t
		}
		return "application/octet-stream"
	}
}
