package client

import (
	"context"
	"fmt"

	"github.com/gridbase-io/gridbase-go/internal/http"
	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// TablesClient implements the gridbase.TablesClient interface.
type TablesClient struct {
	httpClient *http.Client
}

// NewTablesClient creates a new TablesClient.
func NewTablesClient(httpClient *http.Client) *TablesClient {
	return &TablesClient{
		httpClient: httpClient,
	}
}

// Create creates a new table. The owning base is named in the request body.
func (c *TablesClient) Create(ctx context.Context, request *gridbase.TableCreateRequest) (*gridbase.Table, error) {
	resp, err := c.httpClient.Post(ctx, "/tables", request)
	if err != nil {
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return decodeEnvelope[gridbase.Table](resp.Body, "table")
}

// List lists the tables of a base.
func (c *TablesClient) List(ctx context.Context, baseID string) ([]gridbase.Table, error) {
	resp, err := c.httpClient.Get(ctx, "/bases/"+baseID+"/tables", nil)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}

	tables, err := decodeEnvelope[[]gridbase.Table](resp.Body, "tables")
	if err != nil {
		return nil, err
	}

	return *tables, nil
}

// Get retrieves a specific table.
func (c *TablesClient) Get(ctx context.Context, tableID string) (*gridbase.Table, error) {
	resp, err := c.httpClient.Get(ctx, "/tables/"+tableID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting table: %w", err)
	}

	return decodeEnvelope[gridbase.Table](resp.Body, "table")
}

// Update updates a table.
func (c *TablesClient) Update(ctx context.Context, tableID string, request *gridbase.TableUpdateRequest) (*gridbase.Table, error) {
	resp, err := c.httpClient.Patch(ctx, "/tables/"+tableID, request)
	if err != nil {
		return nil, fmt.Errorf("updating table: %w", err)
	}

	return decodeEnvelope[gridbase.Table](resp.Body, "table")
}

// Delete deletes a table.
func (c *TablesClient) Delete(ctx context.Context, tableID string) error {
	_, err := c.httpClient.Delete(ctx, "/tables/"+tableID)
	if err != nil {
		return fmt.Errorf("deleting table: %w", err)
	}

	return nil
}
