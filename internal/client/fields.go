package client

import (
	"context"
	"fmt"

	"github.com/gridbase-io/gridbase-go/internal/http"
	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// FieldsClient implements the gridbase.FieldsClient interface.
type FieldsClient struct {
	httpClient *http.Client
}

// NewFieldsClient creates a new FieldsClient.
func NewFieldsClient(httpClient *http.Client) *FieldsClient {
	return &FieldsClient{
		httpClient: httpClient,
	}
}

func fieldsPath(tableID string) string {
	return "/tables/" + tableID + "/fields"
}

// Create creates a new field on a table.
func (c *FieldsClient) Create(ctx context.Context, tableID string, request *gridbase.FieldCreateRequest) (*gridbase.Field, error) {
	resp, err := c.httpClient.Post(ctx, fieldsPath(tableID), request)
	if err != nil {
		return nil, fmt.Errorf("creating field: %w", err)
	}

	return decodeEnvelope[gridbase.Field](resp.Body, "field")
}

// List lists the fields of a table.
func (c *FieldsClient) List(ctx context.Context, tableID string) ([]gridbase.Field, error) {
	resp, err := c.httpClient.Get(ctx, fieldsPath(tableID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	fields, err := decodeEnvelope[[]gridbase.Field](resp.Body, "fields")
	if err != nil {
		return nil, err
	}

	return *fields, nil
}

// Get retrieves a specific field.
func (c *FieldsClient) Get(ctx context.Context, tableID, fieldID string) (*gridbase.Field, error) {
	resp, err := c.httpClient.Get(ctx, fieldsPath(tableID)+"/"+fieldID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting field: %w", err)
	}

	return decodeEnvelope[gridbase.Field](resp.Body, "field")
}

// Update updates a field definition.
func (c *FieldsClient) Update(ctx context.Context, tableID, fieldID string, request *gridbase.FieldUpdateRequest) (*gridbase.Field, error) {
	resp, err := c.httpClient.Patch(ctx, fieldsPath(tableID)+"/"+fieldID, request)
	if err != nil {
		return nil, fmt.Errorf("updating field: %w", err)
	}

	return decodeEnvelope[gridbase.Field](resp.Body, "field")
}

// Delete deletes a field and its cell data.
func (c *FieldsClient) Delete(ctx context.Context, tableID, fieldID string) error {
	_, err := c.httpClient.Delete(ctx, fieldsPath(tableID)+"/"+fieldID)
	if err != nil {
		return fmt.Errorf("deleting field: %w", err)
	}

	return nil
}
