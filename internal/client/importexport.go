package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/url"

	"github.com/gridbase-io/gridbase-go/internal/http"
	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// ImportExportClient implements the gridbase.ImportExportClient interface.
type ImportExportClient struct {
	httpClient *http.Client
}

// NewImportExportClient creates a new ImportExportClient.
func NewImportExportClient(httpClient *http.Client) *ImportExportClient {
	return &ImportExportClient{
		httpClient: httpClient,
	}
}

// ImportCSV uploads CSV data into a table as a multipart form. Options become
// additional form fields next to the file part.
func (c *ImportExportClient) ImportCSV(ctx context.Context, tableID string, csv []byte, opts *gridbase.ImportOptions) (*gridbase.ImportResult, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "import.csv")
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}

	_, err = part.Write(csv)
	if err != nil {
		return nil, fmt.Errorf("writing file to form: %w", err)
	}

	for field, value := range opts.ToFormFields() {
		err = writer.WriteField(field, value)
		if err != nil {
			return nil, fmt.Errorf("writing form field: %w", err)
		}
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	resp, err := c.httpClient.PostRaw(ctx, "/import/csv/"+tableID, buf.Bytes(), writer.FormDataContentType())
	if err != nil {
		return nil, fmt.Errorf("importing CSV: %w", err)
	}

	return decodeEnvelope[gridbase.ImportResult](resp.Body, "import")
}

// ExportCSV downloads a table as CSV. The payload is returned exactly as the
// service produced it, with no decoding.
func (c *ImportExportClient) ExportCSV(ctx context.Context, tableID string, opts *gridbase.ExportOptions) ([]byte, error) {
	var query url.Values
	if opts != nil {
		query = opts.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/export/csv/"+tableID, query)
	if err != nil {
		return nil, fmt.Errorf("exporting CSV: %w", err)
	}

	return resp.Body, nil
}
