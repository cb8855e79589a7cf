package rerank

import (
	"context"

	"github.com/povarna/generative-ai-agents/search-agent/internal/search"
)

// Reranker reorders search results by relevance to the query and
// keeps at most topN of them.
type Reranker interface {
	Name() string
	Rerank(ctx context.Context, query string, results []search.Result, topN int) ([]search.Result, error)
}
