package client

import (
	"context"
	"fmt"

	"github.com/gridbase-io/gridbase-go/internal/http"
	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// BasesClient implements the gridbase.BasesClient interface.
type BasesClient struct {
	httpClient *http.Client
}

// NewBasesClient creates a new BasesClient.
func NewBasesClient(httpClient *http.Client) *BasesClient {
	return &BasesClient{
		httpClient: httpClient,
	}
}

// Create creates a new base.
func (c *BasesClient) Create(ctx context.Context, request *gridbase.BaseCreateRequest) (*gridbase.Base, error) {
	resp, err := c.httpClient.Post(ctx, "/bases", request)
	if err != nil {
		return nil, fmt.Errorf("creating base: %w", err)
	}

	return decodeEnvelope[gridbase.Base](resp.Body, "base")
}

// List lists all bases the caller can access.
func (c *BasesClient) List(ctx context.Context) ([]gridbase.Base, error) {
	resp, err := c.httpClient.Get(ctx, "/bases", nil)
	if err != nil {
		return nil, fmt.Errorf("listing bases: %w", err)
	}

	bases, err := decodeEnvelope[[]gridbase.Base](resp.Body, "bases")
	if err != nil {
		return nil, err
	}

	return *bases, nil
}

// Get retrieves a specific base.
func (c *BasesClient) Get(ctx context.Context, baseID string) (*gridbase.Base, error) {
	resp, err := c.httpClient.Get(ctx, "/bases/"+baseID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting base: %w", err)
	}

	return decodeEnvelope[gridbase.Base](resp.Body, "base")
}

// Update updates a base.
func (c *BasesClient) Update(ctx context.Context, baseID string, request *gridbase.BaseUpdateRequest) (*gridbase.Base, error) {
	resp, err := c.httpClient.Patch(ctx, "/bases/"+baseID, request)
	if err != nil {
		return nil, fmt.Errorf("updating base: %w", err)
	}

	return decodeEnvelope[gridbase.Base](resp.Body, "base")
}

// Delete deletes a base.
func (c *BasesClient) Delete(ctx context.Context, baseID string) error {
	_, err := c.httpClient.Delete(ctx, "/bases/"+baseID)
	if err != nil {
		return fmt.Errorf("deleting base: %w", err)
	}

	return nil
}

// Share shares a base with another user.
func (c *BasesClient) Share(ctx context.Context, baseID string, request *gridbase.BaseShareRequest) error {
	_, err := c.httpClient.Post(ctx, "/bases/"+baseID+"/share", request)
	if err != nil {
		return fmt.Errorf("sharing base: %w", err)
	}

	return nil
}
