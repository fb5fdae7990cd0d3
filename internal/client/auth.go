package client

import (
	"context"
	"fmt"

	"github.com/gridbase-io/gridbase-go/internal/auth"
	"github.com/gridbase-io/gridbase-go/internal/http"
	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// AuthClient implements the gridbase.AuthClient interface.
type AuthClient struct {
	httpClient  *http.Client
	credentials *auth.Credentials
}

// NewAuthClient creates a new AuthClient. credentials is the client's shared
// handle; Login writes the issued token into it.
func NewAuthClient(httpClient *http.Client, credentials *auth.Credentials) *AuthClient {
	return &AuthClient{
		httpClient:  httpClient,
		credentials: credentials,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with email and password and stores the issued token on
// the shared credentials.
func (c *AuthClient) Login(ctx context.Context, email, password string) (*gridbase.LoginResult, error) {
	resp, err := c.httpClient.Post(ctx, "/auth/login", &loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	result, err := decodeEnvelope[gridbase.LoginResult](resp.Body, "login")
	if err != nil {
		return nil, err
	}

	c.credentials.SetToken(result.Token)

	return result, nil
}

// Register creates a new user account.
func (c *AuthClient) Register(ctx context.Context, request *gridbase.RegisterRequest) (*gridbase.User, error) {
	resp, err := c.httpClient.Post(ctx, "/auth/register", request)
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	return decodeEnvelope[gridbase.User](resp.Body, "user")
}

// GetProfile retrieves the authenticated user's profile.
func (c *AuthClient) GetProfile(ctx context.Context) (*gridbase.User, error) {
	resp, err := c.httpClient.Get(ctx, "/auth/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return decodeEnvelope[gridbase.User](resp.Body, "user")
}

// CreateAPIKey provisions a new API key. The key value is only present in
// this response.
func (c *AuthClient) CreateAPIKey(ctx context.Context, request *gridbase.APIKeyCreateRequest) (*gridbase.APIKey, error) {
	resp, err := c.httpClient.Post(ctx, "/auth/api-keys", request)
	if err != nil {
		return nil, fmt.Errorf("creating API key: %w", err)
	}

	return decodeEnvelope[gridbase.APIKey](resp.Body, "API key")
}

// ListAPIKeys lists the account's API keys.
func (c *AuthClient) ListAPIKeys(ctx context.Context) ([]gridbase.APIKey, error) {
	resp, err := c.httpClient.Get(ctx, "/auth/api-keys", nil)
	if err != nil {
		return nil, fmt.Errorf("listing API keys: %w", err)
	}

	keys, err := decodeEnvelope[[]gridbase.APIKey](resp.Body, "API keys")
	if err != nil {
		return nil, err
	}

	return *keys, nil
}

// DeleteAPIKey revokes an API key.
func (c *AuthClient) DeleteAPIKey(ctx context.Context, apiKeyID string) error {
	_, err := c.httpClient.Delete(ctx, "/auth/api-keys/"+apiKeyID)
	if err != nil {
		return fmt.Errorf("deleting API key: %w", err)
	}

	return nil
}
