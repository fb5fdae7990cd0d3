package gridbase

import (
	"time"
)

// Envelope is the standard success wrapper returned by every JSON endpoint.
// The Data schema is owned by the service; typed aliases below name the
// common shapes.
type Envelope[T any] struct {
	Success bool   `json:"success"           yaml:"success"`
	Data    T      `json:"data"              yaml:"data"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// User represents an account on the service.
type User struct {
	ID        string    `json:"id"        yaml:"id"`
	Email     string    `json:"email"     yaml:"email"`
	Name      string    `json:"name"      yaml:"name"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Token string `json:"token" yaml:"token"`
	User  User   `json:"user"  yaml:"user"`
}

// APIKey represents a provisioned API key. The Key value is only populated in
// the response to the create call.
type APIKey struct {
	ID         string     `json:"id"                   yaml:"id"`
	Name       string     `json:"name"                 yaml:"name"`
	Key        string     `json:"key,omitempty"        yaml:"key,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"            yaml:"createdAt"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty" yaml:"lastUsedAt,omitempty"`
}

// Base is a top-level container of tables.
type Base struct {
	ID          string    `json:"id"                    yaml:"id"`
	Name        string    `json:"name"                  yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	OwnerID     string    `json:"ownerId"               yaml:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"             yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"             yaml:"updatedAt"`
}

// Table is one table within a base.
type Table struct {
	ID          string    `json:"id"                    yaml:"id"`
	BaseID      string    `json:"baseId"                yaml:"baseId"`
	Name        string    `json:"name"                  yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"             yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"             yaml:"updatedAt"`
}

// Field is a column definition within a table. Options carry type-specific
// configuration (select choices, number precision, ...) whose schema the
// service owns.
type Field struct {
	ID        string         `json:"id"                yaml:"id"`
	TableID   string         `json:"tableId"           yaml:"tableId"`
	Name      string         `json:"name"              yaml:"name"`
	Type      string         `json:"type"              yaml:"type"`
	Options   map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
	Required  bool           `json:"required"          yaml:"required"`
	Position  int            `json:"position"          yaml:"position"`
	CreatedAt time.Time      `json:"createdAt"         yaml:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"         yaml:"updatedAt"`
}

// Record is one row within a table. Field values are caller-defined and kept
// as an open map keyed by field name.
type Record struct {
	ID        string         `json:"id"        yaml:"id"`
	TableID   string         `json:"tableId"   yaml:"tableId"`
	Fields    map[string]any `json:"fields"    yaml:"fields"`
	CreatedAt time.Time      `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" yaml:"updatedAt"`
}

// View is a saved filter/sort/display configuration over a table.
type View struct {
	ID            string         `json:"id"                      yaml:"id"`
	TableID       string         `json:"tableId"                 yaml:"tableId"`
	Name          string         `json:"name"                    yaml:"name"`
	Type          string         `json:"type"                    yaml:"type"`
	Configuration map[string]any `json:"configuration,omitempty" yaml:"configuration,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"               yaml:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"               yaml:"updatedAt"`
}

// Webhook is a registered callback notified on data-change events.
type Webhook struct {
	ID        string    `json:"id"               yaml:"id"`
	BaseID    string    `json:"baseId"           yaml:"baseId"`
	URL       string    `json:"url"              yaml:"url"`
	Events    []string  `json:"events"           yaml:"events"`
	Active    bool      `json:"active"           yaml:"active"`
	Secret    string    `json:"secret,omitempty" yaml:"secret,omitempty"`
	CreatedAt time.Time `json:"createdAt"        yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"        yaml:"updatedAt"`
}

// WebhookDelivery is one attempted webhook callback.
type WebhookDelivery struct {
	ID          string    `json:"id"                 yaml:"id"`
	WebhookID   string    `json:"webhookId"          yaml:"webhookId"`
	Event       string    `json:"event"              yaml:"event"`
	StatusCode  int       `json:"statusCode"         yaml:"statusCode"`
	Success     bool      `json:"success"            yaml:"success"`
	DeliveredAt time.Time `json:"deliveredAt"        yaml:"deliveredAt"`
	Response    string    `json:"response,omitempty" yaml:"response,omitempty"`
}

// SearchResults is the payload of the search endpoints. Sections the search
// scope excludes are empty.
type SearchResults struct {
	Bases   []Base   `json:"bases,omitempty"   yaml:"bases,omitempty"`
	Tables  []Table  `json:"tables,omitempty"  yaml:"tables,omitempty"`
	Records []Record `json:"records,omitempty" yaml:"records,omitempty"`
}

// ImportResult describes the outcome of a CSV import.
type ImportResult struct {
	RecordsCreated int      `json:"recordsCreated"   yaml:"recordsCreated"`
	RecordsFailed  int      `json:"recordsFailed"    yaml:"recordsFailed"`
	Errors         []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// BulkDeleteResult describes the outcome of a bulk record delete.
type BulkDeleteResult struct {
	DeletedCount int `json:"deletedCount" yaml:"deletedCount"`
}

// Request payloads.

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Email    string `json:"email"          yaml:"email"`
	Password string `json:"password"       yaml:"password"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
}

// APIKeyCreateRequest provisions a new API key.
type APIKeyCreateRequest struct {
	Name string `json:"name" yaml:"name"`
}

// BaseCreateRequest creates a new base.
type BaseCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// BaseUpdateRequest updates a base. Nil fields are left unchanged.
type BaseUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// BaseShareRequest shares a base with another user.
type BaseShareRequest struct {
	Email string `json:"email" yaml:"email"`
	Role  string `json:"role"  yaml:"role"`
}

// TableCreateRequest creates a new table within a base.
type TableCreateRequest struct {
	BaseID      string `json:"baseId"                yaml:"baseId"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// TableUpdateRequest updates a table. Nil fields are left unchanged.
type TableUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// RecordCreateRequest creates a record. Fields is the caller-defined cell
// data keyed by field name.
type RecordCreateRequest struct {
	Fields map[string]any `json:"fields" yaml:"fields"`
}

// RecordUpdateRequest updates a record's cell data. Only the named fields are
// touched.
type RecordUpdateRequest struct {
	Fields map[string]any `json:"fields" yaml:"fields"`
}

// RecordBulkUpdate addresses one record within a bulk update.
type RecordBulkUpdate struct {
	ID     string         `json:"id"     yaml:"id"`
	Fields map[string]any `json:"fields" yaml:"fields"`
}

// FieldCreateRequest creates a field on a table.
type FieldCreateRequest struct {
	Name     string         `json:"name"               yaml:"name"`
	Type     string         `json:"type"               yaml:"type"`
	Options  map[string]any `json:"options,omitempty"  yaml:"options,omitempty"`
	Required bool           `json:"required,omitempty" yaml:"required,omitempty"`
	Position *int           `json:"position,omitempty" yaml:"position,omitempty"`
}

// FieldUpdateRequest updates a field. Nil fields are left unchanged.
type FieldUpdateRequest struct {
	Name     *string        `json:"name,omitempty"     yaml:"name,omitempty"`
	Type     *string        `json:"type,omitempty"     yaml:"type,omitempty"`
	Options  map[string]any `json:"options,omitempty"  yaml:"options,omitempty"`
	Required *bool          `json:"required,omitempty" yaml:"required,omitempty"`
	Position *int           `json:"position,omitempty" yaml:"position,omitempty"`
}

// ViewCreateRequest creates a view on a table.
type ViewCreateRequest struct {
	Name          string         `json:"name"                    yaml:"name"`
	Type          string         `json:"type"                    yaml:"type"`
	Configuration map[string]any `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// ViewUpdateRequest updates a view. Nil fields are left unchanged.
type ViewUpdateRequest struct {
	Name          *string        `json:"name,omitempty"          yaml:"name,omitempty"`
	Type          *string        `json:"type,omitempty"          yaml:"type,omitempty"`
	Configuration map[string]any `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// WebhookCreateRequest registers a webhook for a base.
type WebhookCreateRequest struct {
	BaseID string   `json:"baseId"           yaml:"baseId"`
	URL    string   `json:"url"              yaml:"url"`
	Events []string `json:"events"           yaml:"events"`
	Secret string   `json:"secret,omitempty" yaml:"secret,omitempty"`
}

// WebhookUpdateRequest updates a webhook. Nil fields are left unchanged.
type WebhookUpdateRequest struct {
	URL    *string  `json:"url,omitempty"    yaml:"url,omitempty"`
	Events []string `json:"events,omitempty" yaml:"events,omitempty"`
	Active *bool    `json:"active,omitempty" yaml:"active,omitempty"`
}
