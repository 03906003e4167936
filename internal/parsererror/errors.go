// Package parsererror defines the typed errors reported at the extraction
// pipeline boundary. The text parser itself never fails (every extractor
// falls back to an empty value), so these errors only describe collaborator
// failures: unsupported documents, download problems, OCR problems.
package parsererror

import "fmt"

// UnsupportedTypeError is returned when a document's MIME type is neither
// PDF nor an image and no text can be obtained from it.
type UnsupportedTypeError struct {
	MimeType string
	FileName string
}

func (e *UnsupportedTypeError) Error() string {
	if e.FileName != "" {
		return fmt.Sprintf("unsupported mimeType '%s' for file '%s'", e.MimeType, e.FileName)
	}
	return fmt.Sprintf("unsupported mimeType '%s'", e.MimeType)
}

// DownloadError is returned when document bytes or metadata could not be
// fetched from the storage provider.
type DownloadError struct {
	FileID string
	Stage  string // "metadata" or "content"
	Err    error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download failed for file '%s' during %s: %v", e.FileID, e.Stage, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// OCRError is returned when the OCR service could not transcribe an image.
type OCRError struct {
	Page int // zero-based page index, -1 for standalone images
	Err  error
}

func (e *OCRError) Error() string {
	if e.Page >= 0 {
		return fmt.Sprintf("ocr failed on page %d: %v", e.Page, e.Err)
	}
	return fmt.Sprintf("ocr failed: %v", e.Err)
}

func (e *OCRError) Unwrap() error {
	return e.Err
}

// InvalidFormatError is returned when a document claims a supported MIME
// type but its content cannot be opened as that format.
type InvalidFormatError struct {
	FileName       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FileName, e.Msg, e.ExpectedFormat)
}

// ParseError wraps a failure while shaping extracted text into a result.
type ParseError struct {
	Stage string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("extraction: failed at %s='%s': %v", e.Stage, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
