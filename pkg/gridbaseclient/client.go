// Package gridbaseclient provides the main entry point for creating Gridbase API clients
package gridbaseclient

import (
	"strings"

	"github.com/gridbase-io/gridbase-go/internal/client"
	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// New creates a new Gridbase API client from a config.
func New(config *gridbase.Config) (gridbase.Client, error) {
	if config == nil {
		return nil, gridbase.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, gridbase.ErrEndpointRequired
	}

	// Normalize endpoint
	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	return client.New(config)
}

// NewWithAPIKey creates a client that authenticates every request with an API
// key.
func NewWithAPIKey(endpoint, apiKey string) (gridbase.Client, error) {
	return New(&gridbase.Config{
		Endpoint: endpoint,
		APIKey:   apiKey,
	})
}

// NewWithToken creates a client that authenticates with a session token
// obtained elsewhere, for example a previous Login.
func NewWithToken(endpoint, token string) (gridbase.Client, error) {
	return New(&gridbase.Config{
		Endpoint: endpoint,
		Token:    token,
	})
}
