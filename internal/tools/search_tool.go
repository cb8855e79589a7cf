package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/search-agent/internal/rerank"
	"github.com/povarna/generative-ai-agents/search-agent/internal/search"
	"github.com/rs/zerolog"
)

// WebSearchTool runs a web search and reranks the hits before handing
// them to an agent as numbered sources.
type WebSearchTool struct {
	provider   search.Provider
	reranker   rerank.Reranker
	maxResults int
	logger     *zerolog.Logger
}

func NewWebSearchTool(provider search.Provider, reranker rerank.Reranker, maxResults int, logger *zerolog.Logger) *WebSearchTool {
	if maxResults <= 0 {
		maxResults = 5
	}

	return &WebSearchTool{
		provider:   provider,
		reranker:   reranker,
		maxResults: maxResults,
		logger:     logger,
	}
}

func (t *WebSearchTool) Name() string {
	return "web_search"
}

func (t *WebSearchTool) Description() string {
	return "Search the web for current information. Input: a search query. Returns numbered sources with title, URL and snippet."
}

func (t *WebSearchTool) Call(ctx context.Context, input string) (string, error) {
	results, err := t.provider.Search(ctx, input, t.maxResults*2)
	if err != nil {
		return "", fmt.Errorf("web search failed: %w", err)
	}

	if len(results) == 0 {
		return "No results found.", nil
	}

	reranked, err := t.reranker.Rerank(ctx, input, results, t.maxResults)
	if err != nil {
		// Keep the provider's own ordering when the reranker is down.
		t.logger.Warn().Err(err).Msg("Rerank failed, using provider order")
		if len(results) > t.maxResults {
			results = results[:t.maxResults]
		}
		reranked = results
	}

	return FormatSources(reranked), nil
}

// FormatSources renders results as a numbered source list for prompts.
func FormatSources(results []search.Result) string {
	var sb strings.Builder
	for i, result := range results {
		fmt.Fprintf(&sb, "[%d] %s (%s)\n", i+1, result.Title, result.URL)
		if result.Snippet != "" {
			fmt.Fprintf(&sb, "    %s\n", result.Snippet)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
