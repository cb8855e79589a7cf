// Package search provides a pluggable web search layer.
// Each backend implements the Provider interface; the active provider
// is selected at start-up (SEARCH_PROVIDER) and shared read-only by
// every agent handle.
package search

import (
	"context"
)

// Result is a single search result.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

type Provider interface {
	// Name returns the provider identifier (e.g., "serper", "searxng").
	Name() string

	// Search executes a query and returns at most count results.
	Search(ctx context.Context, query string, count int) ([]Result, error)
}
