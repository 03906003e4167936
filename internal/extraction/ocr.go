package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"jlehtis/kuitti-csv/internal/parsererror"
)

// transcriptionPrompt asks for a verbatim transcription. Interpretation of
// the text stays in the rule-based parser, not in the model.
const transcriptionPrompt = `Transcribe ALL text visible in this receipt image, line by line, exactly as printed. Preserve the reading order from top to bottom. Output plain text only: no commentary, no markdown, no translation, no corrections of apparent typos.`

// OCRClient transcribes a document image to plain text. Implementations
// are injected into the Extractor by the caller; there is no lazily
// initialized package-level client.
type OCRClient interface {
	// Transcribe returns the plain-text transcription of an image.
	// Format tells the service how the bytes are encoded ("png", "jpeg").
	Transcribe(ctx context.Context, image []byte, format string) (string, error)
	// Close releases the underlying service connection.
	Close() error
}

// GeminiOCR implements OCRClient using the Gemini vision API.
type GeminiOCR struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiOCR creates a Gemini-backed OCR client.
func NewGeminiOCR(ctx context.Context, apiKey, modelName string) (*GeminiOCR, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiOCR{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Transcribe sends the image with a transcription prompt and returns the
// plain text the model read from it.
func (g *GeminiOCR) Transcribe(ctx context.Context, image []byte, format string) (string, error) {
	parts := []genai.Part{
		genai.ImageData(format, image),
		genai.Text(transcriptionPrompt),
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", &parsererror.OCRError{Page: -1, Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &parsererror.OCRError{Page: -1, Err: fmt.Errorf("empty response from gemini")}
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	return text.String(), nil
}

// Close closes the underlying Gemini client.
func (g *GeminiOCR) Close() error {
	return g.client.Close()
}
