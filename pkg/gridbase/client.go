package gridbase

import (
	"context"
	"time"
)

// AuthClient manages accounts, sessions, and API keys.
type AuthClient interface {
	// Login authenticates with email and password. On success the returned
	// token is stored on the client's shared credentials, so every subsequent
	// request from any resource client is sent as the logged-in user. This is
	// the only resource method that mutates client state.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, request *RegisterRequest) (*User, error)
	GetProfile(ctx context.Context) (*User, error)
	CreateAPIKey(ctx context.Context, request *APIKeyCreateRequest) (*APIKey, error)
	ListAPIKeys(ctx context.Context) ([]APIKey, error)
	DeleteAPIKey(ctx context.Context, apiKeyID string) error
}

// BasesClient manages bases.
type BasesClient interface {
	Create(ctx context.Context, request *BaseCreateRequest) (*Base, error)
	List(ctx context.Context) ([]Base, error)
	Get(ctx context.Context, baseID string) (*Base, error)
	Update(ctx context.Context, baseID string, request *BaseUpdateRequest) (*Base, error)
	Delete(ctx context.Context, baseID string) error
	Share(ctx context.Context, baseID string, request *BaseShareRequest) error
}

// TablesClient manages tables.
type TablesClient interface {
	Create(ctx context.Context, request *TableCreateRequest) (*Table, error)
	List(ctx context.Context, baseID string) ([]Table, error)
	Get(ctx context.Context, tableID string) (*Table, error)
	Update(ctx context.Context, tableID string, request *TableUpdateRequest) (*Table, error)
	Delete(ctx context.Context, tableID string) error
}

// RecordsClient manages records within a table.
type RecordsClient interface {
	Create(ctx context.Context, tableID string, request *RecordCreateRequest) (*Record, error)
	List(ctx context.Context, tableID string, opts *RecordListOptions) ([]Record, error)
	Get(ctx context.Context, tableID, recordID string) (*Record, error)
	Update(ctx context.Context, tableID, recordID string, request *RecordUpdateRequest) (*Record, error)
	Delete(ctx context.Context, tableID, recordID string) error
	// BulkCreate creates the given records in one request. The batch outcome
	// is reported by the service; no client-side reconciliation happens.
	BulkCreate(ctx context.Context, tableID string, records []RecordCreateRequest) ([]Record, error)
	BulkUpdate(ctx context.Context, tableID string, records []RecordBulkUpdate) ([]Record, error)
	// BulkDelete removes the given records in one request. The record IDs are
	// carried in the DELETE body, matching the service's own contract.
	BulkDelete(ctx context.Context, tableID string, recordIDs []string) (*BulkDeleteResult, error)
}

// FieldsClient manages field definitions within a table.
type FieldsClient interface {
	Create(ctx context.Context, tableID string, request *FieldCreateRequest) (*Field, error)
	List(ctx context.Context, tableID string) ([]Field, error)
	Get(ctx context.Context, tableID, fieldID string) (*Field, error)
	Update(ctx context.Context, tableID, fieldID string, request *FieldUpdateRequest) (*Field, error)
	Delete(ctx context.Context, tableID, fieldID string) error
}

// ViewsClient manages views within a table.
type ViewsClient interface {
	Create(ctx context.Context, tableID string, request *ViewCreateRequest) (*View, error)
	List(ctx context.Context, tableID string) ([]View, error)
	Get(ctx context.Context, tableID, viewID string) (*View, error)
	Update(ctx context.Context, tableID, viewID string, request *ViewUpdateRequest) (*View, error)
	Delete(ctx context.Context, tableID, viewID string) error
}

// WebhooksClient manages webhooks and their delivery history.
type WebhooksClient interface {
	Create(ctx context.Context, request *WebhookCreateRequest) (*Webhook, error)
	ListForBase(ctx context.Context, baseID string) ([]Webhook, error)
	Get(ctx context.Context, webhookID string) (*Webhook, error)
	Update(ctx context.Context, webhookID string, request *WebhookUpdateRequest) (*Webhook, error)
	Delete(ctx context.Context, webhookID string) error
	SetActive(ctx context.Context, webhookID string, active bool) (*Webhook, error)
	// ListDeliveries returns up to limit recent deliveries; limit <= 0 applies
	// the service default of 50.
	ListDeliveries(ctx context.Context, webhookID string, limit int) ([]WebhookDelivery, error)
}

// SearchClient searches across bases, tables, and records.
type SearchClient interface {
	Global(ctx context.Context, query string, opts *SearchOptions) (*SearchResults, error)
	InBase(ctx context.Context, baseID, query string, opts *SearchOptions) (*SearchResults, error)
	InTable(ctx context.Context, tableID, query string, opts *SearchOptions) (*SearchResults, error)
}

// ImportExportClient moves table data in and out as CSV.
type ImportExportClient interface {
	ImportCSV(ctx context.Context, tableID string, csv []byte, opts *ImportOptions) (*ImportResult, error)
	// ExportCSV returns the exact byte payload produced by the service,
	// unparsed.
	ExportCSV(ctx context.Context, tableID string, opts *ExportOptions) ([]byte, error)
}

// Client is the root Gridbase API client.
type Client interface {
	Auth() AuthClient
	Bases() BasesClient
	Tables() TablesClient
	Records() RecordsClient
	Fields() FieldsClient
	Views() ViewsClient
	Webhooks() WebhooksClient
	Search() SearchClient
	ImportExport() ImportExportClient

	// Token returns the client's current bearer token, which may have been
	// set by configuration or by a successful Login.
	Token() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a gridbase.Client.
//
// # Authentication precedence
//
// At most one authentication header is attached per request:
//  1. APIKey: sent as X-API-Key. Takes precedence when both are set.
//  2. Token: sent as Authorization: Bearer <token>. A successful
//     Auth().Login overwrites this value on the live client.
//  3. Neither: requests are sent unauthenticated and the service rejects
//     protected endpoints.
//
// # Timeouts and retries
//
// Per-request deadlines should be controlled via the context passed to client
// methods. RetryMax enables transport-level retries for transient failures;
// it defaults to zero, meaning every call is a single round trip.
type Config struct {
	// Endpoint: base URL for the Gridbase API, including the version prefix
	// (e.g., "https://grid.example.com/api/v1"). gridbaseclient.New trims a
	// trailing slash and adds "https://" if no scheme is present.
	Endpoint string

	// APIKey: API key credential, sent as X-API-Key.
	APIKey string
	// Token: JWT credential, sent as a Bearer Authorization header. Ignored
	// while APIKey is set.
	Token string

	// HTTPTimeout: overall per-attempt timeout applied by the transport.
	// Zero selects the default.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of transport retries for transient failures
	// (>=500, 429, connection errors). Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
