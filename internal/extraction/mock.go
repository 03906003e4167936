package extraction

import (
	"context"

	"jlehtis/kuitti-csv/internal/models"
)

// MockOCRClient implements OCRClient for testing. It returns predefined
// text instead of calling a vision service.
type MockOCRClient struct {
	Text    string
	Err     error
	Calls   int
	Formats []string
}

// Transcribe returns the predefined text or error and records the call.
func (m *MockOCRClient) Transcribe(_ context.Context, _ []byte, format string) (string, error) {
	m.Calls++
	m.Formats = append(m.Formats, format)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// Close is a no-op for the mock.
func (m *MockOCRClient) Close() error {
	return nil
}

// MockFetcher implements Fetcher for testing.
type MockFetcher struct {
	Source models.Source
	Data   []byte
	Err    error
}

// Fetch returns the predefined source, data, or error.
func (m *MockFetcher) Fetch(_ context.Context, fileID string) (models.Source, []byte, error) {
	if m.Err != nil {
		return models.Source{}, nil, m.Err
	}
	source := m.Source
	if source.FileID == "" {
		source.FileID = fileID
	}
	return source, m.Data, nil
}

// aliasMap is a map-backed AliasResolver for tests and simple callers.
type aliasMap map[string]string

func (a aliasMap) Resolve(raw string) (string, bool) {
	canonical, ok := a[raw]
	return canonical, ok
}
