// Package auth holds the client's shared credential state and decides which
// authentication header a request carries.
package auth

import "sync"

// Header names understood by the Gridbase API.
const (
	APIKeyHeader = "X-API-Key"
	BearerHeader = "Authorization"
	bearerPrefix = "Bearer "
)

// Credentials is the single credential handle shared by reference between the
// transport and the auth resource client. Reads and writes are synchronized
// so a login on one goroutine is safe against in-flight requests; each
// dispatch reads the credential exactly once.
type Credentials struct {
	mu     sync.RWMutex
	apiKey string
	token  string
}

// NewCredentials creates a credential store with the given initial values.
// Either or both may be empty.
func NewCredentials(apiKey, token string) *Credentials {
	return &Credentials{
		apiKey: apiKey,
		token:  token,
	}
}

// Header returns the authentication header to attach, or ok=false when no
// credential is configured. An API key takes precedence over a token.
func (c *Credentials) Header() (name, value string, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.apiKey != "" {
		return APIKeyHeader, c.apiKey, true
	}

	if c.token != "" {
		return BearerHeader, bearerPrefix + c.token, true
	}

	return "", "", false
}

// SetToken replaces the stored token. Called by the auth client after a
// successful login.
func (c *Credentials) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
}

// SetAPIKey replaces the stored API key.
func (c *Credentials) SetAPIKey(apiKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.apiKey = apiKey
}

// Token returns the stored token.
func (c *Credentials) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

// APIKey returns the stored API key.
func (c *Credentials) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.apiKey
}
