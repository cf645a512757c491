package client

import (
	"context"
	"net/http"
	"net/url"

	"radiobeagle/localnews"
)

type newsEnvelope struct {
	Success bool                   `json:"success"`
	Data    []localnews.Article    `json:"data"`
	Count   int                    `json:"count"`
	Error   string                 `json:"error,omitempty"`
	Sources []localnews.FeedSource `json:"sources,omitempty"`
}

// LocalNews fetches the merged snapshot filtered by source, date range and search text
func (c *Client) LocalNews(ctx context.Context, source, dateRange, query string) ([]localnews.Article, error) {
	params := url.Values{}
	if source != "" && source != localnews.SourceAll {
		params.Set("source", source)
	}
	if dateRange != "" && dateRange != localnews.RangeAll {
		params.Set("range", dateRange)
	}
	if query != "" {
		params.Set("q", query)
	}

	path := "/api/news/local"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var env newsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, path, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// RefreshLocalNews runs a full aggregation cycle and returns the fresh snapshot
func (c *Client) RefreshLocalNews(ctx context.Context) ([]localnews.Article, error) {
	var env newsEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/api/news/local/refresh", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Sources returns the configured feed list
func (c *Client) Sources(ctx context.Context) ([]localnews.FeedSource, error) {
	var env newsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/api/news/local/sources", &env); err != nil {
		return nil, err
	}
	return env.Sources, nil
}
