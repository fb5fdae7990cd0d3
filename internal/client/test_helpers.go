package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// newTestClient builds a client against an httptest server. The cleanup
// closes the server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&gridbase.Config{Endpoint: server.URL})
	require.NoError(t, err)

	return client
}

// newTestClientWithConfig builds a client against an httptest server with
// extra config applied on top of the server endpoint.
func newTestClientWithConfig(t *testing.T, handler http.HandlerFunc, config gridbase.Config) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config.Endpoint = server.URL

	client, err := New(&config)
	require.NoError(t, err)

	return client
}

// writeEnvelope writes the service's standard success envelope.
func writeEnvelope(t *testing.T, writer http.ResponseWriter, data any) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(writer).Encode(map[string]any{
		"success": true,
		"data":    data,
	})
	require.NoError(t, err)
}

// writeError writes the service's error shape with the given status.
func writeError(t *testing.T, writer http.ResponseWriter, status int, message string) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	err := json.NewEncoder(writer).Encode(map[string]any{
		"success": false,
		"message": message,
	})
	require.NoError(t, err)
}

// decodeRequestJSON decodes the request body into out.
func decodeRequestJSON(t *testing.T, request *http.Request, out any) {
	t.Helper()

	err := json.NewDecoder(request.Body).Decode(out)
	require.NoError(t, err)
}
