package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

func TestWebhooksClient_Create(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/webhooks", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]any

		decodeRequestJSON(t, request, &body)
		assert.Equal(t, "base-1", body["baseId"])
		assert.Equal(t, "https://example.com/hook", body["url"])
		assert.Equal(t, []any{"record.created", "record.deleted"}, body["events"])

		writer.WriteHeader(http.StatusCreated)
		writeEnvelope(t, writer, gridbase.Webhook{
			ID:     "wh-1",
			BaseID: "base-1",
			Active: true,
			Secret: "whsec_abc",
		})
	})

	webhook, err := client.Webhooks().Create(context.Background(), &gridbase.WebhookCreateRequest{
		BaseID: "base-1",
		URL:    "https://example.com/hook",
		Events: []string{"record.created", "record.deleted"},
	})
	require.NoError(t, err)
	assert.Equal(t, "wh-1", webhook.ID)
	assert.True(t, webhook.Active)
	assert.Equal(t, "whsec_abc", webhook.Secret)
}

func TestWebhooksClient_ListForBase(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/webhooks/base/base-1", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writeEnvelope(t, writer, []gridbase.Webhook{
			{ID: "wh-1"},
			{ID: "wh-2"},
		})
	})

	webhooks, err := client.Webhooks().ListForBase(context.Background(), "base-1")
	require.NoError(t, err)
	require.Len(t, webhooks, 2)
	assert.Equal(t, "wh-2", webhooks[1].ID)
}

func TestWebhooksClient_GetUpdateDelete(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/webhooks/wh-1", request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			writeEnvelope(t, writer, gridbase.Webhook{ID: "wh-1", URL: "https://example.com/hook"})
		})

		webhook, err := client.Webhooks().Get(context.Background(), "wh-1")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/hook", webhook.URL)
	})

	t.Run("update", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/webhooks/wh-1", request.URL.Path)
			assert.Equal(t, "PATCH", request.Method)

			var body map[string]any

			decodeRequestJSON(t, request, &body)
			assert.Equal(t, "https://example.com/v2", body["url"])

			writeEnvelope(t, writer, gridbase.Webhook{ID: "wh-1", URL: "https://example.com/v2"})
		})

		url := "https://example.com/v2"
		webhook, err := client.Webhooks().Update(context.Background(), "wh-1", &gridbase.WebhookUpdateRequest{URL: &url})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/v2", webhook.URL)
	})

	t.Run("delete", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/webhooks/wh-1", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)

			writeEnvelope(t, writer, nil)
		})

		err := client.Webhooks().Delete(context.Background(), "wh-1")
		require.NoError(t, err)
	})
}

func TestWebhooksClient_SetActive(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/webhooks/wh-1/active", request.URL.Path)
		assert.Equal(t, "PATCH", request.Method)

		var body map[string]any

		decodeRequestJSON(t, request, &body)
		assert.Equal(t, false, body["active"])

		writeEnvelope(t, writer, gridbase.Webhook{ID: "wh-1", Active: false})
	})

	webhook, err := client.Webhooks().SetActive(context.Background(), "wh-1", false)
	require.NoError(t, err)
	assert.False(t, webhook.Active)
}

func TestWebhooksClient_ListDeliveries(t *testing.T) {
	t.Run("explicit limit", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/webhooks/wh-1/deliveries", request.URL.Path)
			assert.Equal(t, "10", request.URL.Query().Get("limit"))

			writeEnvelope(t, writer, []gridbase.WebhookDelivery{
				{ID: "dlv-1", StatusCode: 200, Success: true},
			})
		})

		deliveries, err := client.Webhooks().ListDeliveries(context.Background(), "wh-1", 10)
		require.NoError(t, err)
		require.Len(t, deliveries, 1)
		assert.True(t, deliveries[0].Success)
	})

	t.Run("default limit", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "50", request.URL.Query().Get("limit"))

			writeEnvelope(t, writer, []gridbase.WebhookDelivery{})
		})

		deliveries, err := client.Webhooks().ListDeliveries(context.Background(), "wh-1", 0)
		require.NoError(t, err)
		assert.Empty(t, deliveries)
	})
}
