package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsupportedTypeError(t *testing.T) {
	tests := []struct {
		name     string
		err      *UnsupportedTypeError
		expected string
	}{
		{
			name:     "with file name",
			err:      &UnsupportedTypeError{MimeType: "text/html", FileName: "page.html"},
			expected: "unsupported mimeType 'text/html' for file 'page.html'",
		},
		{
			name:     "without file name",
			err:      &UnsupportedTypeError{MimeType: "application/zip"},
			expected: "unsupported mimeType 'application/zip'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDownloadErrorUnwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := &DownloadError{FileID: "abc123", Stage: "content", Err: inner}

	assert.Equal(t, "download failed for file 'abc123' during content: connection reset", err.Error())
	assert.True(t, errors.Is(err, inner))
}

func TestOCRError(t *testing.T) {
	inner := errors.New("quota exceeded")

	pageErr := &OCRError{Page: 1, Err: inner}
	assert.Equal(t, "ocr failed on page 1: quota exceeded", pageErr.Error())

	imgErr := &OCRError{Page: -1, Err: inner}
	assert.Equal(t, "ocr failed: quota exceeded", imgErr.Error())
	assert.True(t, errors.Is(imgErr, inner))
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := errors.New("invalid decimal")
	err := &ParseError{Stage: "total", Value: "1,2,3", Err: inner}

	assert.Equal(t, "extraction: failed at total='1,2,3': invalid decimal", err.Error())

	var target *ParseError
	require.True(t, errors.As(error(err), &target))
	assert.True(t, errors.Is(err, inner))
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FileName:       "kuitti.pdf",
		ExpectedFormat: "PDF",
		Msg:            "file is not a valid PDF",
	}
	assert.Equal(t, "invalid format in file 'kuitti.pdf': file is not a valid PDF. Expected: PDF", err.Error())
}
