package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gridbase-io/gridbase-go/internal/constants"
	"github.com/gridbase-io/gridbase-go/internal/http"
	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// WebhooksClient implements the gridbase.WebhooksClient interface.
type WebhooksClient struct {
	httpClient *http.Client
}

// NewWebhooksClient creates a new WebhooksClient.
func NewWebhooksClient(httpClient *http.Client) *WebhooksClient {
	return &WebhooksClient{
		httpClient: httpClient,
	}
}

// Create registers a new webhook.
func (c *WebhooksClient) Create(ctx context.Context, request *gridbase.WebhookCreateRequest) (*gridbase.Webhook, error) {
	resp, err := c.httpClient.Post(ctx, "/webhooks", request)
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	return decodeEnvelope[gridbase.Webhook](resp.Body, "webhook")
}

// ListForBase lists the webhooks registered for a base.
func (c *WebhooksClient) ListForBase(ctx context.Context, baseID string) ([]gridbase.Webhook, error) {
	resp, err := c.httpClient.Get(ctx, "/webhooks/base/"+baseID, nil)
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	webhooks, err := decodeEnvelope[[]gridbase.Webhook](resp.Body, "webhooks")
	if err != nil {
		return nil, err
	}

	return *webhooks, nil
}

// Get retrieves a specific webhook.
func (c *WebhooksClient) Get(ctx context.Context, webhookID string) (*gridbase.Webhook, error) {
	resp, err := c.httpClient.Get(ctx, "/webhooks/"+webhookID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting webhook: %w", err)
	}

	return decodeEnvelope[gridbase.Webhook](resp.Body, "webhook")
}

// Update updates a webhook's registration.
func (c *WebhooksClient) Update(ctx context.Context, webhookID string, request *gridbase.WebhookUpdateRequest) (*gridbase.Webhook, error) {
	resp, err := c.httpClient.Patch(ctx, "/webhooks/"+webhookID, request)
	if err != nil {
		return nil, fmt.Errorf("updating webhook: %w", err)
	}

	return decodeEnvelope[gridbase.Webhook](resp.Body, "webhook")
}

// Delete removes a webhook registration.
func (c *WebhooksClient) Delete(ctx context.Context, webhookID string) error {
	_, err := c.httpClient.Delete(ctx, "/webhooks/"+webhookID)
	if err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}

	return nil
}

type webhookActiveRequest struct {
	Active bool `json:"active"`
}

// SetActive toggles a webhook's active flag.
func (c *WebhooksClient) SetActive(ctx context.Context, webhookID string, active bool) (*gridbase.Webhook, error) {
	resp, err := c.httpClient.Patch(ctx, "/webhooks/"+webhookID+"/active", &webhookActiveRequest{Active: active})
	if err != nil {
		return nil, fmt.Errorf("toggling webhook: %w", err)
	}

	return decodeEnvelope[gridbase.Webhook](resp.Body, "webhook")
}

// ListDeliveries returns recent delivery attempts, newest first.
func (c *WebhooksClient) ListDeliveries(ctx context.Context, webhookID string, limit int) ([]gridbase.WebhookDelivery, error) {
	if limit <= 0 {
		limit = constants.DefaultDeliveryLimit
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	resp, err := c.httpClient.Get(ctx, "/webhooks/"+webhookID+"/deliveries", query)
	if err != nil {
		return nil, fmt.Errorf("listing webhook deliveries: %w", err)
	}

	deliveries, err := decodeEnvelope[[]gridbase.WebhookDelivery](resp.Body, "webhook deliveries")
	if err != nil {
		return nil, err
	}

	return *deliveries, nil
}
