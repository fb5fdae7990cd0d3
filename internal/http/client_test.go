package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridbase-io/gridbase-go/internal/auth"
	gbhttp "github.com/gridbase-io/gridbase-go/internal/http"
	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request with bearer token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/bases", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Empty(t, request.Header.Get("X-API-Key"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"id": "base-1", "name": "test-base"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := gbhttp.NewClient(server.URL, auth.NewCredentials("", "test-token"))

		resp, err := client.Do(context.Background(), &gbhttp.Request{
			Method: "GET",
			Path:   "/bases",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "base-1", result["id"])
		assert.Equal(t, "test-base", result["name"])
	})

	t.Run("api key wins over bearer token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "key-123", request.Header.Get("X-API-Key"))
			assert.Empty(t, request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := gbhttp.NewClient(server.URL, auth.NewCredentials("key-123", "test-token"))

		resp, err := client.Get(context.Background(), "/bases", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("no credentials means no auth header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Authorization"))
			assert.Empty(t, request.Header.Get("X-API-Key"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := gbhttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/bases", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/search", request.URL.Path)
			assert.Equal(t, "query=invoices", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := gbhttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &gbhttp.Request{
			Method: "GET",
			Path:   "/search",
			Query:  url.Values{"query": []string{"invoices"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "test-base", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := gbhttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "/bases", map[string]string{"name": "test-base"})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response with message", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]any{
				"success": false,
				"message": "not found",
			})
		}))
		defer server.Close()

		client := gbhttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/bases/missing", nil)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		apiErr := &gridbase.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, "not found", apiErr.Message)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.NotEmpty(t, apiErr.Raw)
	})

	t.Run("error response with non-JSON body uses fallback message", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte("<html>oops</html>"))
		}))
		defer server.Close()

		client := gbhttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/bases", nil)
		require.Error(t, err)

		apiErr := &gridbase.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, "API request failed", apiErr.Message)
		assert.Equal(t, 500, apiErr.StatusCode)
		assert.Equal(t, []byte("<html>oops</html>"), apiErr.Raw)
	})

	t.Run("network failure is not an APIError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close() // refuse connections

		client := gbhttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/bases", nil)
		require.Error(t, err)
		assert.Nil(t, resp)

		apiErr := &gridbase.APIError{}
		assert.False(t, errors.As(err, &apiErr))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := gbhttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &gbhttp.Request{
			Method: "GET",
			Path:   "/bases",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := gbhttp.NewClient(server.URL, nil, gbhttp.WithLogger(logger), gbhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/bases", nil)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("raw body passes through unencoded", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "text/csv", request.Header.Get("Content-Type"))

			var buf [16]byte

			n, _ := request.Body.Read(buf[:])
			assert.Equal(t, "a,b\n1,2\n", string(buf[:n]))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := gbhttp.NewClient(server.URL, nil)

		resp, err := client.PostRaw(context.Background(), "/import", []byte("a,b\n1,2\n"), "text/csv")
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*gbhttp.Client, context.Context) (*gbhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *gbhttp.Client, ctx context.Context) (*gbhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *gbhttp.Client, ctx context.Context) (*gbhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *gbhttp.Client, ctx context.Context) (*gbhttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *gbhttp.Client, ctx context.Context) (*gbhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
		{
			name:   "DELETE with body",
			method: "DELETE",
			fn: func(c *gbhttp.Client, ctx context.Context) (*gbhttp.Response, error) {
				return c.DeleteWithBody(ctx, "/test", map[string][]string{"recordIds": {"rec-1"}})
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := gbhttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_DeleteWithBody_CarriesPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

		var body map[string][]string

		err := json.NewDecoder(request.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, []string{"rec-1", "rec-2"}, body["recordIds"])
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := gbhttp.NewClient(server.URL, nil)

	_, err := client.DeleteWithBody(context.Background(), "/tables/tbl-1/records/bulk",
		map[string][]string{"recordIds": {"rec-1", "rec-2"}})
	require.NoError(t, err)
}

func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries on 5xx errors when configured", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := gbhttp.NewClient(server.URL, nil, gbhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry by default", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := gbhttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := gbhttp.NewClient(server.URL, nil, gbhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, 1, attempts) // Should not retry
	})
}
