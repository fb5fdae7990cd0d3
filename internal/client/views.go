package client

import (
	"context"
	"fmt"

	"github.com/gridbase-io/gridbase-go/internal/http"
	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// ViewsClient implements the gridbase.ViewsClient interface.
type ViewsClient struct {
	httpClient *http.Client
}

// NewViewsClient creates a new ViewsClient.
func NewViewsClient(httpClient *http.Client) *ViewsClient {
	return &ViewsClient{
		httpClient: httpClient,
	}
}

func viewsPath(tableID string) string {
	return "/tables/" + tableID + "/views"
}

// Create creates a new view on a table.
func (c *ViewsClient) Create(ctx context.Context, tableID string, request *gridbase.ViewCreateRequest) (*gridbase.View, error) {
	resp, err := c.httpClient.Post(ctx, viewsPath(tableID), request)
	if err != nil {
		return nil, fmt.Errorf("creating view: %w", err)
	}

	return decodeEnvelope[gridbase.View](resp.Body, "view")
}

// List lists the views of a table.
func (c *ViewsClient) List(ctx context.Context, tableID string) ([]gridbase.View, error) {
	resp, err := c.httpClient.Get(ctx, viewsPath(tableID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing views: %w", err)
	}

	views, err := decodeEnvelope[[]gridbase.View](resp.Body, "views")
	if err != nil {
		return nil, err
	}

	return *views, nil
}

// Get retrieves a specific view.
func (c *ViewsClient) Get(ctx context.Context, tableID, viewID string) (*gridbase.View, error) {
	resp, err := c.httpClient.Get(ctx, viewsPath(tableID)+"/"+viewID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting view: %w", err)
	}

	return decodeEnvelope[gridbase.View](resp.Body, "view")
}

// Update updates a view's configuration.
func (c *ViewsClient) Update(ctx context.Context, tableID, viewID string, request *gridbase.ViewUpdateRequest) (*gridbase.View, error) {
	resp, err := c.httpClient.Patch(ctx, viewsPath(tableID)+"/"+viewID, request)
	if err != nil {
		return nil, fmt.Errorf("updating view: %w", err)
	}

	return decodeEnvelope[gridbase.View](resp.Body, "view")
}

// Delete deletes a view.
func (c *ViewsClient) Delete(ctx context.Context, tableID, viewID string) error {
	_, err := c.httpClient.Delete(ctx, viewsPath(tableID)+"/"+viewID)
	if err != nil {
		return fmt.Errorf("deleting view: %w", err)
	}

	return nil
}
