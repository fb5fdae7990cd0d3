package gridbase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// FallbackErrorMessage is used when an error response body carries no
// readable "message" field.
const FallbackErrorMessage = "API request failed"

// APIError represents a request the Gridbase service answered with a
// non-success status. Raw holds the unparsed response body for caller
// inspection.
type APIError struct {
	Message    string `json:"message"    yaml:"message"`
	StatusCode int    `json:"statusCode" yaml:"statusCode"`
	Raw        []byte `json:"-"          yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// NewAPIError builds an APIError from a response status and body. The body is
// decoded as JSON and its "message" field used when present; otherwise the
// fallback message is applied. The body is retained verbatim in Raw.
func NewAPIError(statusCode int, body []byte) *APIError {
	message := FallbackErrorMessage

	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		message = payload.Message
	}

	return &APIError{
		Message:    message,
		StatusCode: statusCode,
		Raw:        body,
	}
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return IsStatus(err, http.StatusForbidden)
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	return IsStatus(err, http.StatusConflict)
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrEndpointRequired = errors.New("endpoint is required")
	ErrNoCredentials    = errors.New("no credentials configured")
	ErrEmptyQuery       = errors.New("search query is required")
)
