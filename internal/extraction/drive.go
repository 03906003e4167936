package extraction

import (
	"context"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"jlehtis/kuitti-csv/internal/models"
	"jlehtis/kuitti-csv/internal/parsererror"
)

// Fetcher obtains a document's metadata and bytes from a storage provider.
type Fetcher interface {
	Fetch(ctx context.Context, fileID string) (models.Source, []byte, error)
}

// DriveFetcher implements Fetcher against the Google Drive API.
type DriveFetcher struct {
	service *drive.Service
}

// NewDriveFetcher creates a Drive-backed fetcher. Credentials resolve
// through Application Default Credentials unless overridden with opts.
func NewDriveFetcher(ctx context.Context, opts ...option.ClientOption) (*DriveFetcher, error) {
	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &DriveFetcher{service: service}, nil
}

// Fetch reads the file's metadata and downloads its content.
func (f *DriveFetcher) Fetch(ctx context.Context, fileID string) (models.Source, []byte, error) {
	meta, err := f.service.Files.Get(fileID).
		Fields("id", "name", "mimeType").
		Context(ctx).
		Do()
	if err != nil {
		return models.Source{}, nil, &parsererror.DownloadError{FileID: fileID, Stage: "metadata", Err: err}
	}

	source := models.Source{
		FileID:   meta.Id,
		FileName: meta.Name,
		MimeType: meta.MimeType,
	}

	resp, err := f.service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return source, nil, &parsererror.DownloadError{FileID: fileID, Stage: "content", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return source, nil, &parsererror.DownloadError{FileID: fileID, Stage: "content", Err: err}
	}

	return source, data, nil
}
