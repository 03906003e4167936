package extraction

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"

	"jlehtis/kuitti-csv/internal/parsererror"
)

// pdfTextLayer extracts the embedded text layer of a PDF, page by page.
// A machine-rendered receipt PDF carries its text here, so no OCR is
// needed for it.
func pdfTextLayer(fileName string, data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", &parsererror.InvalidFormatError{
			FileName:       fileName,
			ExpectedFormat: "PDF",
			Msg:            "file is not a valid PDF",
		}
	}
	defer doc.Close()

	var parts []string
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d: %w", i, err)
		}
		parts = append(parts, text)
	}

	return strings.Join(parts, "\n"), nil
}

// renderPDFPages rasterizes up to maxPages pages of a PDF to PNG at the
// given DPI, for feeding to OCR when the text layer is empty or too short.
// The second return value is the document's total page count.
func renderPDFPages(fileName string, data []byte, maxPages, dpi int) ([][]byte, int, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, 0, &parsererror.InvalidFormatError{
			FileName:       fileName,
			ExpectedFormat: "PDF",
			Msg:            "file is not a valid PDF",
		}
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	pages := pageCount
	if pages > maxPages {
		pages = maxPages
	}

	var images [][]byte
	for i := 0; i < pages; i++ {
		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, pageCount, fmt.Errorf("rendering page %d: %w", i, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, pageCount, fmt.Errorf("encoding page %d as PNG: %w", i, err)
		}
		images = append(images, buf.Bytes())
	}

	return images, pageCount, nil
}
