package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/search-agent/internal/search"
	"github.com/rs/zerolog"
)

type fakeProvider struct {
	results   []search.Result
	err       error
	lastCount int
}

func (f *fakeProvider) Name() string {
	return "fake"
}

func (f *fakeProvider) Search(ctx context.Context, query string, count int) ([]search.Result, error) {
	f.lastCount = count
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

type fakeReranker struct {
	reordered []search.Result
	err       error
	called    bool
}

func (f *fakeReranker) Name() string {
	return "fake"
}

func (f *fakeReranker) Rerank(ctx context.Context, query string, results []search.Result, topN int) ([]search.Result, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return f.reordered, nil
}

func sampleResults(n int) []search.Result {
	results := make([]search.Result, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, search.Result{
			Title:   string(rune('A' + i)),
			URL:     "https://example.com/" + string(rune('a'+i)),
			Snippet: "snippet " + string(rune('a'+i)),
		})
	}
	return results
}

func newTestTool(provider *fakeProvider, reranker *fakeReranker, maxResults int) *WebSearchTool {
	logger := zerolog.Nop()
	return NewWebSearchTool(provider, reranker, maxResults, &logger)
}

func TestWebSearchTool_Call_UsesRerankedOrder(t *testing.T) {
	results := sampleResults(4)
	provider := &fakeProvider{results: results}
	reranker := &fakeReranker{reordered: []search.Result{results[2], results[0]}}

	tool := newTestTool(provider, reranker, 2)

	output, err := tool.Call(context.Background(), "query")
	if err != nil {
		t.Fatalf("Call() failed: %v", err)
	}

	if !reranker.called {
		t.Error("Expected reranker to be called")
	}
	// Overfetch so the reranker has more candidates than the final list.
	if provider.lastCount != 4 {
		t.Errorf("Expected provider count 4, got %d", provider.lastCount)
	}
	if !strings.HasPrefix(output, "[1] C") {
		t.Errorf("Expected reranked order, got %q", output)
	}
	if !strings.Contains(output, "[2] A") {
		t.Errorf("Expected second source, got %q", output)
	}
}

func TestWebSearchTool_Call_RerankFailureFallsBack(t *testing.T) {
	results := sampleResults(4)
	provider := &fakeProvider{results: results}
	reranker := &fakeReranker{err: errors.New("jina down")}

	tool := newTestTool(provider, reranker, 2)

	output, err := tool.Call(context.Background(), "query")
	if err != nil {
		t.Fatalf("Expected fallback to provider order, got error: %v", err)
	}

	if !strings.HasPrefix(output, "[1] A") {
		t.Errorf("Expected provider order on fallback, got %q", output)
	}
	if strings.Contains(output, "[3]") {
		t.Errorf("Expected fallback truncated to max results, got %q", output)
	}
}

func TestWebSearchTool_Call_ProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("serper down")}
	reranker := &fakeReranker{}

	tool := newTestTool(provider, reranker, 2)

	_, err := tool.Call(context.Background(), "query")
	if err == nil {
		t.Fatal("Expected error when provider fails")
	}
	if !strings.Contains(err.Error(), "serper down") {
		t.Errorf("Expected wrapped provider error, got %v", err)
	}
	if reranker.called {
		t.Error("Expected reranker NOT to be called when search fails")
	}
}

func TestWebSearchTool_Call_NoResults(t *testing.T) {
	provider := &fakeProvider{results: nil}
	reranker := &fakeReranker{}

	tool := newTestTool(provider, reranker, 2)

	output, err := tool.Call(context.Background(), "query")
	if err != nil {
		t.Fatalf("Call() failed: %v", err)
	}
	if output != "No results found." {
		t.Errorf("Expected no-results message, got %q", output)
	}
	if reranker.called {
		t.Error("Expected reranker NOT to be called without results")
	}
}

func TestFormatSources(t *testing.T) {
	results := []search.Result{
		{Title: "First", URL: "https://example.com/1", Snippet: "one"},
		{Title: "Second", URL: "https://example.com/2"},
	}

	output := FormatSources(results)

	expected := "[1] First (https://example.com/1)\n    one\n[2] Second (https://example.com/2)"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}
