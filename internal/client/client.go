// Package client implements the gridbase.Client interface and the resource
// clients built on the shared HTTP transport.
package client

import (
	"encoding/json"
	"fmt"

	"github.com/gridbase-io/gridbase-go/internal/auth"
	"github.com/gridbase-io/gridbase-go/internal/http"
	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// Client implements the gridbase.Client interface.
type Client struct {
	httpClient  *http.Client
	credentials *auth.Credentials
	baseURL     string
	logger      gridbase.Logger

	// Resource clients
	auth         gridbase.AuthClient
	bases        gridbase.BasesClient
	tables       gridbase.TablesClient
	records      gridbase.RecordsClient
	fields       gridbase.FieldsClient
	views        gridbase.ViewsClient
	webhooks     gridbase.WebhooksClient
	search       gridbase.SearchClient
	importExport gridbase.ImportExportClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *gridbase.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// New creates a new Gridbase API client. The endpoint must already be
// normalized; gridbaseclient.New is the usual entry point.
func New(config *gridbase.Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, gridbase.ErrEndpointRequired
	}

	credentials := auth.NewCredentials(config.APIKey, config.Token)
	httpClient := http.NewClient(config.Endpoint, credentials, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:  httpClient,
		credentials: credentials,
		baseURL:     config.Endpoint,
		logger:      config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.auth = NewAuthClient(c.httpClient, c.credentials)
	c.bases = NewBasesClient(c.httpClient)
	c.tables = NewTablesClient(c.httpClient)
	c.records = NewRecordsClient(c.httpClient)
	c.fields = NewFieldsClient(c.httpClient)
	c.views = NewViewsClient(c.httpClient)
	c.webhooks = NewWebhooksClient(c.httpClient)
	c.search = NewSearchClient(c.httpClient)
	c.importExport = NewImportExportClient(c.httpClient)
}

// Resource client accessors

// Auth implements gridbase.Client.Auth.
func (c *Client) Auth() gridbase.AuthClient {
	return c.auth
}

// Bases implements gridbase.Client.Bases.
func (c *Client) Bases() gridbase.BasesClient {
	return c.bases
}

// Tables implements gridbase.Client.Tables.
func (c *Client) Tables() gridbase.TablesClient {
	return c.tables
}

// Records implements gridbase.Client.Records.
func (c *Client) Records() gridbase.RecordsClient {
	return c.records
}

// Fields implements gridbase.Client.Fields.
func (c *Client) Fields() gridbase.FieldsClient {
	return c.fields
}

// Views implements gridbase.Client.Views.
func (c *Client) Views() gridbase.ViewsClient {
	return c.views
}

// Webhooks implements gridbase.Client.Webhooks.
func (c *Client) Webhooks() gridbase.WebhooksClient {
	return c.webhooks
}

// Search implements gridbase.Client.Search.
func (c *Client) Search() gridbase.SearchClient {
	return c.search
}

// ImportExport implements gridbase.Client.ImportExport.
func (c *Client) ImportExport() gridbase.ImportExportClient {
	return c.importExport
}

// Token returns the client's current bearer token. After a successful login
// this is the token issued by the service.
func (c *Client) Token() string {
	return c.credentials.Token()
}

// decodeEnvelope unwraps the service's success envelope around a typed
// payload. what names the resource for error context.
func decodeEnvelope[T any](body []byte, what string) (*T, error) {
	var envelope gridbase.Envelope[T]

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return &envelope.Data, nil
}

// loggerAdapter adapts gridbase.Logger to http.Logger.
type loggerAdapter struct {
	logger gridbase.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
