package client

import (
	"context"
	"fmt"

	"github.com/gridbase-io/gridbase-go/internal/http"
	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// SearchClient implements the gridbase.SearchClient interface.
type SearchClient struct {
	httpClient *http.Client
}

// NewSearchClient creates a new SearchClient.
func NewSearchClient(httpClient *http.Client) *SearchClient {
	return &SearchClient{
		httpClient: httpClient,
	}
}

func (c *SearchClient) search(ctx context.Context, path, query string, opts *gridbase.SearchOptions) (*gridbase.SearchResults, error) {
	if query == "" {
		return nil, gridbase.ErrEmptyQuery
	}

	values := opts.ToValues()
	values.Set("query", query)

	resp, err := c.httpClient.Get(ctx, path, values)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	return decodeEnvelope[gridbase.SearchResults](resp.Body, "search")
}

// Global searches across every base the caller can access.
func (c *SearchClient) Global(ctx context.Context, query string, opts *gridbase.SearchOptions) (*gridbase.SearchResults, error) {
	return c.search(ctx, "/search", query, opts)
}

// InBase searches within one base.
func (c *SearchClient) InBase(ctx context.Context, baseID, query string, opts *gridbase.SearchOptions) (*gridbase.SearchResults, error) {
	return c.search(ctx, "/search/base/"+baseID, query, opts)
}

// InTable searches within one table.
func (c *SearchClient) InTable(ctx context.Context, tableID, query string, opts *gridbase.SearchOptions) (*gridbase.SearchResults, error) {
	return c.search(ctx, "/search/table/"+tableID, query, opts)
}
