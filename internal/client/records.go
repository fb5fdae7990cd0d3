package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gridbase-io/gridbase-go/internal/http"
	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// RecordsClient implements the gridbase.RecordsClient interface.
type RecordsClient struct {
	httpClient *http.Client
}

// NewRecordsClient creates a new RecordsClient.
func NewRecordsClient(httpClient *http.Client) *RecordsClient {
	return &RecordsClient{
		httpClient: httpClient,
	}
}

func recordsPath(tableID string) string {
	return "/tables/" + tableID + "/records"
}

// Create creates a new record in a table.
func (c *RecordsClient) Create(ctx context.Context, tableID string, request *gridbase.RecordCreateRequest) (*gridbase.Record, error) {
	resp, err := c.httpClient.Post(ctx, recordsPath(tableID), request)
	if err != nil {
		return nil, fmt.Errorf("creating record: %w", err)
	}

	return decodeEnvelope[gridbase.Record](resp.Body, "record")
}

// List lists records of a table.
func (c *RecordsClient) List(ctx context.Context, tableID string, opts *gridbase.RecordListOptions) ([]gridbase.Record, error) {
	var query url.Values
	if opts != nil {
		query = opts.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, recordsPath(tableID), query)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	records, err := decodeEnvelope[[]gridbase.Record](resp.Body, "records")
	if err != nil {
		return nil, err
	}

	return *records, nil
}

// Get retrieves a specific record.
func (c *RecordsClient) Get(ctx context.Context, tableID, recordID string) (*gridbase.Record, error) {
	resp, err := c.httpClient.Get(ctx, recordsPath(tableID)+"/"+recordID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}

	return decodeEnvelope[gridbase.Record](resp.Body, "record")
}

// Update updates a record's field values.
func (c *RecordsClient) Update(ctx context.Context, tableID, recordID string, request *gridbase.RecordUpdateRequest) (*gridbase.Record, error) {
	resp, err := c.httpClient.Patch(ctx, recordsPath(tableID)+"/"+recordID, request)
	if err != nil {
		return nil, fmt.Errorf("updating record: %w", err)
	}

	return decodeEnvelope[gridbase.Record](resp.Body, "record")
}

// Delete deletes a record.
func (c *RecordsClient) Delete(ctx context.Context, tableID, recordID string) error {
	_, err := c.httpClient.Delete(ctx, recordsPath(tableID)+"/"+recordID)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	return nil
}

type bulkRecordsRequest struct {
	Records []gridbase.RecordCreateRequest `json:"records"`
}

type bulkUpdateRequest struct {
	Records []gridbase.RecordBulkUpdate `json:"records"`
}

type bulkDeleteRequest struct {
	RecordIDs []string `json:"recordIds"`
}

// BulkCreate creates records in one request.
func (c *RecordsClient) BulkCreate(ctx context.Context, tableID string, records []gridbase.RecordCreateRequest) ([]gridbase.Record, error) {
	resp, err := c.httpClient.Post(ctx, recordsPath(tableID)+"/bulk", &bulkRecordsRequest{Records: records})
	if err != nil {
		return nil, fmt.Errorf("bulk creating records: %w", err)
	}

	created, err := decodeEnvelope[[]gridbase.Record](resp.Body, "records")
	if err != nil {
		return nil, err
	}

	return *created, nil
}

// BulkUpdate updates records in one request.
func (c *RecordsClient) BulkUpdate(ctx context.Context, tableID string, records []gridbase.RecordBulkUpdate) ([]gridbase.Record, error) {
	resp, err := c.httpClient.Patch(ctx, recordsPath(tableID)+"/bulk", &bulkUpdateRequest{Records: records})
	if err != nil {
		return nil, fmt.Errorf("bulk updating records: %w", err)
	}

	updated, err := decodeEnvelope[[]gridbase.Record](resp.Body, "records")
	if err != nil {
		return nil, err
	}

	return *updated, nil
}

// BulkDelete deletes records in one request. The IDs travel in the DELETE
// body, which is the contract the service itself defines for this endpoint.
func (c *RecordsClient) BulkDelete(ctx context.Context, tableID string, recordIDs []string) (*gridbase.BulkDeleteResult, error) {
	resp, err := c.httpClient.DeleteWithBody(ctx, recordsPath(tableID)+"/bulk", &bulkDeleteRequest{RecordIDs: recordIDs})
	if err != nil {
		return nil, fmt.Errorf("bulk deleting records: %w", err)
	}

	return decodeEnvelope[gridbase.BulkDeleteResult](resp.Body, "bulk delete")
}
