package api

import "radiobeagle/localnews"

// NewsResponse is the envelope for article listings.
type NewsResponse struct {
	Success bool                `json:"success"`
	Data    []localnews.Article `json:"data"`
	Count   int                 `json:"count"`
	Source  string              `json:"source,omitempty"`
}

// SourcesResponse lists the configured feed sources.
type SourcesResponse struct {
	Success bool                   `json:"success"`
	Sources []localnews.FeedSource `json:"sources"`
}

// ErrorResponse is the envelope for request failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
